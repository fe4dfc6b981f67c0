package entity

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusVoided     PaymentStatus = "voided"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusAuthorized PaymentStatus = "authorized"
)

// Order is a storefront transaction as delivered by the order source.
// CreatedAt keeps the source's raw timestamp; it is projected into the
// display timezone only when a period filter is applied.
type Order struct {
	Id                int             `json:"id"`
	Total             decimal.Decimal `json:"total"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ShippingCostOwner decimal.Decimal `json:"shipping_cost_owner"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	ShippingStatus    string          `json:"shipping_status,omitempty"`
	CreatedAt         string          `json:"created_at"`
	LandingURL        string          `json:"landing_url,omitempty"`
	BillingName       string          `json:"billing_name,omitempty"`
	ContactPhone      string          `json:"contact_phone,omitempty"`
	BillingPhone      string          `json:"billing_phone,omitempty"`
	UTM               UTM             `json:"utm"`
	Products          []LineItem      `json:"products"`
}

// IsPaid reports whether the order counts toward revenue, profit and attribution.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

type LineItem struct {
	ProductId int             `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	SKU       string          `json:"sku,omitempty"`
}
