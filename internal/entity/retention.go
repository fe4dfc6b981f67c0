package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerLifetime aggregates one customer's paid orders. Customers are
// identified upstream by billing name and phone.
type CustomerLifetime struct {
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	CustomerPhone   string          `db:"customer_phone" json:"customer_phone"`
	OrderCount      int             `db:"order_count" json:"order_count"`
	LifetimeRevenue decimal.Decimal `db:"lifetime_revenue" json:"lifetime_revenue"`
	FirstOrderAt    *time.Time      `db:"first_order_at" json:"first_order_at,omitempty"`
	LastOrderAt     *time.Time      `db:"last_order_at" json:"last_order_at,omitempty"`
}

type RetentionMetrics struct {
	TotalCustomers  int             `json:"total_customers"`
	RepeatCustomers int             `json:"repeat_customers"`
	AvgLtv          decimal.Decimal `json:"avg_ltv"`
	RetentionRate   decimal.Decimal `json:"retention_rate"`
	ChurnRate       decimal.Decimal `json:"churn_rate"`
	AvgFrequency    decimal.Decimal `json:"avg_frequency"`
	AvgRecencyDays  decimal.Decimal `json:"avg_recency_days"`
}
