package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
)

type ratesStore struct {
	*MYSQLStore
}

// Rates returns an object implementing Rates interface
func (ms *MYSQLStore) Rates() dependency.Rates {
	return &ratesStore{
		MYSQLStore: ms,
	}
}

// GetRate returns the stored rate for date's calendar day or nil when there is none.
func (ms *MYSQLStore) GetRate(ctx context.Context, date time.Time) (*entity.ExchangeRate, error) {
	var rate entity.ExchangeRate
	query := `SELECT rate_date, usd_brl, source, updated_at FROM exchange_rates WHERE rate_date = ?`
	err := ms.DB().GetContext(ctx, &rate, query, date.Format(time.DateOnly))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return &rate, nil
}

func (ms *MYSQLStore) SaveRate(ctx context.Context, rate *entity.ExchangeRate) error {
	source := rate.Source
	if source == "" {
		source = entity.RateSourceAPI
	}
	err := ExecNamed(ctx, ms.DB(), `
	INSERT INTO exchange_rates (rate_date, usd_brl, source)
	VALUES (:rateDate, :usdBrl, :source)
	ON DUPLICATE KEY UPDATE usd_brl = VALUES(usd_brl), source = VALUES(source)`, map[string]any{
		"rateDate": rate.Date.Format(time.DateOnly),
		"usdBrl":   rate.UsdBrl,
		"source":   source,
	})
	if err != nil {
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}
	return nil
}
