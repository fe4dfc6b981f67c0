// Package nuvemshop fetches orders from the NuvemShop (Tiendanube) REST API.
package nuvemshop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://api.tiendanube.com/v1/"
	DefaultPerPage = 200
	// maxPages bounds a single fetch when the API keeps returning full pages.
	maxPages = 100
)

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	StoreID     string        `mapstructure:"store_id"`
	AccessToken string        `mapstructure:"access_token"`
	UserAgent   string        `mapstructure:"user_agent"`
	PerPage     int           `mapstructure:"per_page"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type Client struct {
	c   *Config
	cli *resty.Client
}

func New(c *Config) *Client {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PerPage <= 0 || c.PerPage > DefaultPerPage {
		c.PerPage = DefaultPerPage
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "Provincia Real Dashboard"
	}

	cli := resty.New()
	cli.SetBaseURL(c.BaseURL)
	cli.SetTimeout(c.Timeout)
	cli.SetHeader("Authentication", "bearer "+c.AccessToken)
	cli.SetHeader("User-Agent", c.UserAgent)

	return &Client{c: c, cli: cli}
}

type product struct {
	ProductId decimal.Decimal `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	SKU       string          `json:"sku"`
}

type order struct {
	Id                int             `json:"id"`
	Total             decimal.Decimal `json:"total"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ShippingCostOwner decimal.Decimal `json:"shipping_cost_owner"`
	PaymentStatus     string          `json:"payment_status"`
	ShippingStatus    string          `json:"shipping_status"`
	CreatedAt         string          `json:"created_at"`
	LandingURL        string          `json:"landing_url"`
	BillingName       string          `json:"billing_name"`
	ContactPhone      string          `json:"contact_phone"`
	BillingPhone      string          `json:"billing_phone"`
	Products          []product       `json:"products"`
}

func (o *order) toEntity() entity.Order {
	items := make([]entity.LineItem, 0, len(o.Products))
	for _, p := range o.Products {
		items = append(items, entity.LineItem{
			ProductId: int(p.ProductId.IntPart()),
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  int(p.Quantity.IntPart()),
			SKU:       p.SKU,
		})
	}
	return entity.Order{
		Id:                o.Id,
		Total:             o.Total,
		Subtotal:          o.Subtotal,
		ShippingCostOwner: o.ShippingCostOwner,
		PaymentStatus:     entity.PaymentStatus(o.PaymentStatus),
		ShippingStatus:    o.ShippingStatus,
		CreatedAt:         o.CreatedAt,
		LandingURL:        o.LandingURL,
		BillingName:       o.BillingName,
		ContactPhone:      o.ContactPhone,
		BillingPhone:      o.BillingPhone,
		UTM:               entity.ParseUTM(o.LandingURL),
		Products:          items,
	}
}

// FetchOrders returns every order created within [from, to], following pages
// until a short or empty page.
func (cli *Client) FetchOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for page := 1; page <= maxPages; page++ {
		batch, err := cli.fetchPage(ctx, from, to, page)
		if err != nil {
			return nil, fmt.Errorf("can't fetch orders page %d: %w", page, err)
		}
		for i := range batch {
			out = append(out, batch[i].toEntity())
		}
		if len(batch) < cli.c.PerPage {
			break
		}
	}
	return out, nil
}

func (cli *Client) fetchPage(ctx context.Context, from, to time.Time, page int) ([]order, error) {
	resp, err := cli.cli.R().
		SetContext(ctx).
		SetPathParam("store", cli.c.StoreID).
		SetQueryParams(map[string]string{
			"created_at_min": from.UTC().Format(time.RFC3339),
			"created_at_max": to.UTC().Format(time.RFC3339),
			"per_page":       strconv.Itoa(cli.c.PerPage),
			"page":           strconv.Itoa(page),
		}).
		Get("{store}/orders")
	if err != nil {
		return nil, err
	}
	// Past the last page the API answers 404 "Last page is N".
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("nuvemshop request failed: %s: %s", resp.Status(), resp.String())
	}

	var orders []order
	if err := json.Unmarshal(resp.Body(), &orders); err != nil {
		return nil, fmt.Errorf("could not unmarshal orders: %w : body: %v", err, resp.String())
	}
	return orders, nil
}
