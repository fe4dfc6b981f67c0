// Package metrics computes the dashboard's consolidated figures from orders,
// ad campaigns and customer lifetime records. Everything here is a pure
// function of its inputs; the only collaborator is the currency converter.
package metrics

import (
	"context"
	"time"

	"github.com/provinciareal/dashboard/internal/campaignkey"
	"github.com/provinciareal/dashboard/internal/costcalc"
	"github.com/provinciareal/dashboard/internal/currency"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/provinciareal/dashboard/internal/timezone"
	"github.com/shopspring/decimal"
)

type Config struct {
	KeyPolicy       string `mapstructure:"key_policy"`
	DefaultTimezone string `mapstructure:"default_timezone"`
}

func DefaultConfig() Config {
	return Config{
		KeyPolicy:       string(campaignkey.PolicyFolded),
		DefaultTimezone: string(timezone.BR),
	}
}

// Converter turns an ad-platform amount into local currency as of a date.
// Implementations must not fail; they fall back to a fixed rate instead.
type Converter interface {
	ConvertToLocal(ctx context.Context, amount decimal.Decimal, asOf time.Time) decimal.Decimal
}

// FixedRate converts every amount at the same rate.
type FixedRate struct {
	Rate decimal.Decimal
}

func (f FixedRate) ConvertToLocal(_ context.Context, amount decimal.Decimal, _ time.Time) decimal.Decimal {
	return amount.Mul(f.Rate)
}

// Input is everything one dashboard computation needs.
type Input struct {
	Orders    []entity.Order
	Campaigns []entity.Campaign
	Customers []entity.CustomerLifetime
	// ExchangeRate is used when Converter is nil.
	ExchangeRate decimal.Decimal
	Converter    Converter
	// Period defaults to today in Timezone.
	Period   *entity.TimeRange
	Timezone timezone.Zone
}

type Engine struct {
	tz      *timezone.Normalizer
	costs   *costcalc.Calculator
	keys    campaignkey.Normalizer
	targets Targets
	zone    timezone.Zone
}

func NewEngine(tz *timezone.Normalizer, costs *costcalc.Calculator, keys campaignkey.Normalizer, targets Targets, defaultZone timezone.Zone) *Engine {
	if !defaultZone.Valid() {
		defaultZone = timezone.BR
	}
	return &Engine{
		tz:      tz,
		costs:   costs,
		keys:    keys,
		targets: targets,
		zone:    defaultZone,
	}
}

// ResolvePeriod returns p, or today in z when p is nil.
func (e *Engine) ResolvePeriod(p *entity.TimeRange, z timezone.Zone) entity.TimeRange {
	if p != nil {
		return *p
	}
	r := e.tz.TodayRange(z)
	return entity.TimeRange{From: r.Start, To: r.End, Label: "Hoje"}
}

// FilterOrders keeps the orders created within period once projected into z.
func (e *Engine) FilterOrders(orders []entity.Order, period entity.TimeRange, z timezone.Zone) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if period.Contains(e.tz.ToZone(o.CreatedAt, z)) {
			out = append(out, o)
		}
	}
	return out
}

// totals are the full-precision sums the sections are derived from.
type totals struct {
	orders      int
	paidOrders  int
	gross       decimal.Decimal
	paid        decimal.Decimal
	productCost decimal.Decimal
	shipping    decimal.Decimal
	adSpend     decimal.Decimal
	grossProfit decimal.Decimal
	netProfit   decimal.Decimal
	roas        decimal.Decimal
	roi         decimal.Decimal
}

func (t totals) totalCosts() decimal.Decimal {
	return t.productCost.Add(t.shipping).Add(t.adSpend)
}

// Compute produces the dashboard figures for one query. It never fails.
func (e *Engine) Compute(ctx context.Context, in Input) *entity.DashboardMetrics {
	zone := in.Timezone
	if !zone.Valid() {
		zone = e.zone
	}
	period := e.ResolvePeriod(in.Period, zone)
	now := e.tz.Now()

	filtered := e.FilterOrders(in.Orders, period, zone)
	paid := make([]entity.Order, 0, len(filtered))
	for _, o := range filtered {
		if o.IsPaid() {
			paid = append(paid, o)
		}
	}

	t := totals{
		orders:      len(filtered),
		paidOrders:  len(paid),
		gross:       decimal.Zero,
		paid:        decimal.Zero,
		productCost: decimal.Zero,
		shipping:    decimal.Zero,
		adSpend:     decimal.Zero,
	}
	for _, o := range filtered {
		t.gross = t.gross.Add(o.Total)
	}

	unclassified := 0
	for _, o := range paid {
		t.paid = t.paid.Add(o.Total)
		cost, unc := e.costs.OrderCost(o.Products)
		t.productCost = t.productCost.Add(cost)
		t.shipping = t.shipping.Add(o.ShippingCostOwner)
		unclassified += unc
	}
	t.grossProfit = t.paid.Sub(t.productCost).Sub(t.shipping)

	conv := in.Converter
	if conv == nil {
		conv = FixedRate{Rate: in.ExchangeRate}
	}
	rates := newRateMemo(conv)
	rate := rates.rate(ctx, period.From)

	spendByKey := make(map[string]decimal.Decimal, len(in.Campaigns))
	for _, c := range in.Campaigns {
		local := c.Spend.Mul(rates.rate(ctx, period.From))
		t.adSpend = t.adSpend.Add(local)
		key := e.keys.Key(c.CampaignName)
		spendByKey[key] = spendByKey[key].Add(local)
	}

	t.netProfit = t.grossProfit.Sub(t.adSpend)
	t.roas = safeDiv(t.paid, t.adSpend)
	t.roi = safeDiv(t.netProfit, t.totalCosts()).Mul(hundred)

	retention := ComputeRetention(in.Customers, now)
	traction := e.traction(t, paid)
	marketing := e.marketing(t, paid, in.Campaigns, in.Customers, period)

	return &entity.DashboardMetrics{
		Period:       period,
		Timezone:     string(zone),
		ExchangeRate: rate.Round(4),
		Orders: entity.OrderCounts{
			Total: t.orders,
			Paid:  t.paidOrders,
		},
		Revenue: entity.Revenue{
			Gross: round(t.gross),
			Paid:  round(t.paid),
		},
		Costs: entity.Costs{
			Products: round(t.productCost),
			Shipping: round(t.shipping),
			AdSpend:  round(t.adSpend),
			Total:    round(t.totalCosts()),
		},
		Profit: entity.Profit{
			Gross: round(t.grossProfit),
			Net:   round(t.netProfit),
		},
		ROAS:                 round(t.roas),
		ROI:                  round(t.roi),
		Campaigns:            e.Attribute(paid, in.Campaigns, spendByKey),
		UnclassifiedProducts: unclassified,
		Traction:             traction,
		Profitability:        profitability(t),
		Marketing:            marketing,
		Retention:            retention,
		Logistics:            e.logistics(t, paid),
		Cockpit:              e.cockpit(t, traction, marketing, retention),
		Targets:              e.targetsProgress(t, period, now),
	}
}

// rateMemo asks the converter once per calendar date.
type rateMemo struct {
	conv  Converter
	rates map[string]decimal.Decimal
}

func newRateMemo(conv Converter) *rateMemo {
	return &rateMemo{conv: conv, rates: map[string]decimal.Decimal{}}
}

func (m *rateMemo) rate(ctx context.Context, asOf time.Time) decimal.Decimal {
	day := asOf.Format(time.DateOnly)
	if r, ok := m.rates[day]; ok {
		return r
	}
	r := m.conv.ConvertToLocal(ctx, decimal.NewFromInt(1), asOf)
	m.rates[day] = r
	return r
}

var hundred = decimal.NewFromInt(100)

// safeDiv returns a / b, or zero when b is zero.
func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

func pct(part, whole int) decimal.Decimal {
	return safeDiv(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole))).Mul(hundred)
}

func round(d decimal.Decimal) decimal.Decimal {
	return currency.Round2(d)
}
