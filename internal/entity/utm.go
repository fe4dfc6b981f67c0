package entity

import (
	"net/url"
	"strings"
)

// UTM holds the campaign tags found on an order's landing URL. Missing tags are empty.
type UTM struct {
	Source   string `json:"source,omitempty" db:"utm_source"`
	Medium   string `json:"medium,omitempty" db:"utm_medium"`
	Campaign string `json:"campaign,omitempty" db:"utm_campaign"`
	Content  string `json:"content,omitempty" db:"utm_content"`
	Term     string `json:"term,omitempty" db:"utm_term"`
}

// IsEmpty reports whether no tag was present.
func (u UTM) IsEmpty() bool {
	return u == UTM{}
}

// ParseUTM extracts the utm_* query parameters from a landing URL.
// A malformed or empty URL yields an empty UTM.
func ParseUTM(landingURL string) UTM {
	landingURL = strings.TrimSpace(landingURL)
	if landingURL == "" {
		return UTM{}
	}
	u, err := url.Parse(landingURL)
	if err != nil {
		return UTM{}
	}
	q := u.Query()
	return UTM{
		Source:   q.Get("utm_source"),
		Medium:   q.Get("utm_medium"),
		Campaign: q.Get("utm_campaign"),
		Content:  q.Get("utm_content"),
		Term:     q.Get("utm_term"),
	}
}
