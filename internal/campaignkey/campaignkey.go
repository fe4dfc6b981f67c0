// Package campaignkey reduces free-text campaign identifiers, as found in UTM
// tags and ad-platform campaign names, to comparable keys.
package campaignkey

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Direct is the key and label of paid orders without a campaign tag.
const Direct = "Direto"

type Policy string

const (
	// PolicyExact keeps case, internal spacing and punctuation.
	PolicyExact Policy = "exact"
	// PolicyFolded lowercases, strips diacritics and removes all whitespace.
	PolicyFolded Policy = "folded"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyFolded, nil
	case PolicyExact, PolicyFolded:
		return p, nil
	default:
		return "", fmt.Errorf("unknown campaign key policy %q", s)
	}
}

// Clean percent-decodes a raw campaign value, drops everything from the first
// pipe (vendor-appended ids) and trims surrounding whitespace. The result is
// the display label. A value that fails to decode is used as is.
func Clean(raw string) string {
	v := raw
	if dec, err := url.PathUnescape(raw); err == nil {
		v = dec
	}
	if i := strings.IndexByte(v, '|'); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// Normalizer maps campaign identifiers to keys under one policy.
type Normalizer struct {
	policy Policy
}

func New(p Policy) Normalizer {
	if p != PolicyExact {
		p = PolicyFolded
	}
	return Normalizer{policy: p}
}

func (n Normalizer) Policy() Policy {
	return n.policy
}

// Key returns the canonical key of a raw campaign identifier.
func (n Normalizer) Key(raw string) string {
	label := Clean(raw)
	if n.policy == PolicyExact {
		return label
	}
	return fold(label)
}

// OrderKey returns the key and display label of a paid order's campaign tag.
// Orders with no usable tag fall under Direct, keyed by the same policy as a
// campaign named Direct.
func (n Normalizer) OrderKey(utmCampaign string) (key, label string) {
	label = Clean(utmCampaign)
	if label == "" {
		label = Direct
	}
	if n.policy == PolicyExact {
		return label, label
	}
	return fold(label), label
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.FieldsFunc(strings.ToLower(stripped), unicode.IsSpace), "")
}
