package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/provinciareal/dashboard/internal/timezone"
	"github.com/shopspring/decimal"
)

type ordersStore struct {
	*MYSQLStore
}

// Orders returns an object implementing Orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &ordersStore{
		MYSQLStore: ms,
	}
}

// orderRow is the orders_cache projection of entity.Order.
type orderRow struct {
	Id                int             `db:"id"`
	Total             decimal.Decimal `db:"total"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	ShippingCostOwner decimal.Decimal `db:"shipping_cost_owner"`
	PaymentStatus     string          `db:"payment_status"`
	ShippingStatus    string          `db:"shipping_status"`
	BillingName       string          `db:"billing_name"`
	ContactPhone      string          `db:"contact_phone"`
	BillingPhone      string          `db:"billing_phone"`
	LandingURL        *string         `db:"landing_url"`
	Products          []byte          `db:"products"`
	OrderCreatedAt    time.Time       `db:"order_created_at"`
	entity.UTM
}

func (r *orderRow) toEntity() (entity.Order, error) {
	o := entity.Order{
		Id:                r.Id,
		Total:             r.Total,
		Subtotal:          r.Subtotal,
		ShippingCostOwner: r.ShippingCostOwner,
		PaymentStatus:     entity.PaymentStatus(r.PaymentStatus),
		ShippingStatus:    r.ShippingStatus,
		CreatedAt:         r.OrderCreatedAt.UTC().Format(time.RFC3339),
		BillingName:       r.BillingName,
		ContactPhone:      r.ContactPhone,
		BillingPhone:      r.BillingPhone,
		UTM:               r.UTM,
	}
	if r.LandingURL != nil {
		o.LandingURL = *r.LandingURL
	}
	if len(r.Products) > 0 {
		if err := json.Unmarshal(r.Products, &o.Products); err != nil {
			return o, fmt.Errorf("can't unmarshal products of order %d: %w", r.Id, err)
		}
	}
	return o, nil
}

// createdAtReader parses storefront timestamps; offset-less ones are São Paulo time.
var createdAtReader = timezone.New(timezone.BR)

const upsertOrderQuery = `
	INSERT INTO orders_cache (
		id, total, subtotal, shipping_cost_owner, payment_status, shipping_status,
		billing_name, contact_phone, billing_phone, landing_url,
		utm_source, utm_medium, utm_campaign, utm_content, utm_term,
		products, order_created_at
	) VALUES (
		:id, :total, :subtotal, :shippingCostOwner, :paymentStatus, :shippingStatus,
		:billingName, :contactPhone, :billingPhone, :landingUrl,
		:utmSource, :utmMedium, :utmCampaign, :utmContent, :utmTerm,
		:products, :orderCreatedAt
	)
	ON DUPLICATE KEY UPDATE
		total = VALUES(total),
		subtotal = VALUES(subtotal),
		shipping_cost_owner = VALUES(shipping_cost_owner),
		payment_status = VALUES(payment_status),
		shipping_status = VALUES(shipping_status),
		billing_name = VALUES(billing_name),
		contact_phone = VALUES(contact_phone),
		billing_phone = VALUES(billing_phone),
		landing_url = VALUES(landing_url),
		utm_source = VALUES(utm_source),
		utm_medium = VALUES(utm_medium),
		utm_campaign = VALUES(utm_campaign),
		utm_content = VALUES(utm_content),
		utm_term = VALUES(utm_term),
		products = VALUES(products),
		order_created_at = VALUES(order_created_at)`

// UpsertOrders writes orders in one transaction. Orders with an unreadable
// creation timestamp are skipped and not counted.
func (ms *MYSQLStore) UpsertOrders(ctx context.Context, orders []entity.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}
	written := 0
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		written = 0
		for _, o := range orders {
			createdAt, err := createdAtReader.Parse(o.CreatedAt)
			if err != nil {
				slog.Default().WarnContext(ctx, "skipping order with bad created_at",
					slog.Int("order_id", o.Id),
					slog.String("created_at", o.CreatedAt),
				)
				continue
			}
			products := o.Products
			if products == nil {
				products = []entity.LineItem{}
			}
			pj, err := json.Marshal(products)
			if err != nil {
				return fmt.Errorf("can't marshal products of order %d: %w", o.Id, err)
			}
			err = ExecNamed(ctx, rep.DB(), upsertOrderQuery, map[string]any{
				"id":                o.Id,
				"total":             o.Total,
				"subtotal":          o.Subtotal,
				"shippingCostOwner": o.ShippingCostOwner,
				"paymentStatus":     string(o.PaymentStatus),
				"shippingStatus":    o.ShippingStatus,
				"billingName":       o.BillingName,
				"contactPhone":      o.ContactPhone,
				"billingPhone":      o.BillingPhone,
				"landingUrl":        o.LandingURL,
				"utmSource":         o.UTM.Source,
				"utmMedium":         o.UTM.Medium,
				"utmCampaign":       o.UTM.Campaign,
				"utmContent":        o.UTM.Content,
				"utmTerm":           o.UTM.Term,
				"products":          string(pj),
				"orderCreatedAt":    createdAt.UTC(),
			})
			if err != nil {
				return fmt.Errorf("can't upsert order %d: %w", o.Id, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// GetOrdersByRange returns cached orders created within [from, to], oldest first.
func (ms *MYSQLStore) GetOrdersByRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	query := `
	SELECT
		id, total, subtotal, shipping_cost_owner, payment_status, shipping_status,
		billing_name, contact_phone, billing_phone, landing_url,
		utm_source, utm_medium, utm_campaign, utm_content, utm_term,
		products, order_created_at
	FROM orders_cache
	WHERE order_created_at BETWEEN :from AND :to
	ORDER BY order_created_at ASC, id ASC`

	rows, err := QueryListNamed[orderRow](ctx, ms.DB(), query, map[string]any{
		"from": from.UTC(),
		"to":   to.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders by range: %w", err)
	}

	orders := make([]entity.Order, 0, len(rows))
	for i := range rows {
		o, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
