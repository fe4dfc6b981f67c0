package store

import (
	"context"
	"fmt"

	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
)

type retentionStore struct {
	*MYSQLStore
}

// Retention returns an object implementing Retention interface
func (ms *MYSQLStore) Retention() dependency.Retention {
	return &retentionStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetCustomerLifetimeRecords(ctx context.Context) ([]entity.CustomerLifetime, error) {
	query := `
	SELECT customer_name, customer_phone, order_count, lifetime_revenue, first_order_at, last_order_at
	FROM customer_ltv_all`
	records, err := QueryListNamed[entity.CustomerLifetime](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get customer lifetime records: %w", err)
	}
	return records, nil
}
