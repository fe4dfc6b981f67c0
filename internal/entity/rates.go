package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RateSourceStore    = "store"
	RateSourceAPI      = "awesomeapi"
	RateSourceFallback = "fallback"
)

// ExchangeRate is the USD to BRL rate for one calendar date.
type ExchangeRate struct {
	Date      time.Time       `db:"rate_date" json:"date"`
	UsdBrl    decimal.Decimal `db:"usd_brl" json:"usd_brl"`
	Source    string          `db:"source" json:"source"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
