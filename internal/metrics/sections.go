package metrics

import (
	"strings"

	"github.com/provinciareal/dashboard/internal/campaignkey"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

type skuCategory int

const (
	skuOther skuCategory = iota
	skuPot
	skuBar
	skuKit
)

// categorize buckets a line item for the SKU mix. Kits win over the unit
// keywords they usually mention.
func categorize(name string) skuCategory {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "kit"):
		return skuKit
	case strings.Contains(n, "pote"), strings.Contains(n, "680"):
		return skuPot
	case strings.Contains(n, "barra"), strings.Contains(n, "400"):
		return skuBar
	default:
		return skuOther
	}
}

func (e *Engine) traction(t totals, paid []entity.Order) entity.Traction {
	var mix entity.SKUMix
	kitOrders, organic := 0, 0
	for _, o := range paid {
		hasKit := false
		for _, it := range o.Products {
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			switch categorize(it.Name) {
			case skuKit:
				mix.KitUnits += qty
				hasKit = true
			case skuPot:
				mix.PotUnits += qty
			case skuBar:
				mix.BarUnits += qty
			default:
				mix.OtherUnits += qty
			}
		}
		if hasKit {
			kitOrders++
		}
		if campaignkey.Clean(o.UTM.Campaign) == "" {
			organic++
		}
	}
	units := mix.PotUnits + mix.BarUnits + mix.KitUnits + mix.OtherUnits
	mix.PotPct = round(pct(mix.PotUnits, units))
	mix.BarPct = round(pct(mix.BarUnits, units))
	mix.KitPct = round(pct(mix.KitUnits, units))
	mix.OtherPct = round(pct(mix.OtherUnits, units))

	return entity.Traction{
		AOV:            round(aov(t)),
		ConversionRate: round(pct(t.paidOrders, t.orders)),
		SKUMix:         mix,
		KitOrdersPct:   round(pct(kitOrders, t.paidOrders)),
		OrganicPct:     round(pct(organic, t.paidOrders)),
	}
}

func aov(t totals) decimal.Decimal {
	return safeDiv(t.paid, decimal.NewFromInt(int64(t.paidOrders)))
}

func profitability(t totals) entity.Profitability {
	var breakeven int64
	if a := aov(t); a.IsPositive() {
		breakeven = t.totalCosts().Div(a).Ceil().IntPart()
	}
	return entity.Profitability{
		ContributionMargin: round(safeDiv(t.grossProfit, decimal.NewFromInt(int64(t.paidOrders)))),
		NetMarginPct:       round(safeDiv(t.netProfit, t.paid).Mul(hundred)),
		ProductROI:         round(safeDiv(t.grossProfit, t.productCost).Mul(hundred)),
		BreakevenOrders:    breakeven,
	}
}

func (e *Engine) marketing(t totals, paid []entity.Order, campaigns []entity.Campaign, customers []entity.CustomerLifetime, period entity.TimeRange) entity.Marketing {
	var clicks, impressions int64
	for _, c := range campaigns {
		clicks += c.Clicks
		impressions += c.Impressions
	}

	newCustomers := 0
	if len(customers) > 0 {
		for _, c := range customers {
			if c.FirstOrderAt != nil && period.Contains(*c.FirstOrderAt) {
				newCustomers++
			}
		}
	} else {
		// Without lifetime records every distinct paying customer in the
		// period is treated as new.
		seen := map[[2]string]struct{}{}
		for _, o := range paid {
			seen[[2]string{strings.TrimSpace(o.BillingName), strings.TrimSpace(o.ContactPhone)}] = struct{}{}
		}
		newCustomers = len(seen)
	}

	clicksD := decimal.NewFromInt(clicks)
	impressionsD := decimal.NewFromInt(impressions)
	return entity.Marketing{
		NewCustomers:     newCustomers,
		CAC:              round(safeDiv(t.adSpend, decimal.NewFromInt(int64(newCustomers)))),
		CPA:              round(safeDiv(t.adSpend, decimal.NewFromInt(int64(t.paidOrders)))),
		AvgCPC:           round(safeDiv(t.adSpend, clicksD)),
		AvgCPM:           round(safeDiv(t.adSpend.Mul(decimal.NewFromInt(1000)), impressionsD)),
		CTR:              round(safeDiv(clicksD, impressionsD).Mul(hundred)),
		TotalClicks:      clicks,
		TotalImpressions: impressions,
	}
}

func (e *Engine) logistics(t totals, paid []entity.Order) entity.Logistics {
	free := 0
	freeCost := decimal.Zero
	for _, o := range paid {
		if o.ShippingCostOwner.IsPositive() {
			free++
			freeCost = freeCost.Add(o.ShippingCostOwner)
		}
	}
	fee := decimal.NewFromFloat(e.targets.GatewayFeePct).Div(hundred)
	return entity.Logistics{
		FreeShippingOrders: free,
		FreeShippingCost:   round(freeCost),
		FreeShippingPct:    round(pct(free, t.paidOrders)),
		AvgShippingCost:    round(safeDiv(freeCost, decimal.NewFromInt(int64(free)))),
		GatewayFees:        round(t.paid.Mul(fee)),
	}
}

func (e *Engine) cockpit(t totals, tr entity.Traction, m entity.Marketing, r entity.RetentionMetrics) entity.Cockpit {
	ltvCac := safeDiv(r.AvgLtv, m.CAC)
	netMargin := safeDiv(t.netProfit, t.paid).Mul(hundred)

	row := func(metric, label string, value decimal.Decimal, target float64) entity.CockpitRow {
		tgt := decimal.NewFromFloat(target)
		return entity.CockpitRow{
			Metric: metric,
			Label:  label,
			Value:  round(value),
			Target: round(tgt),
			Status: e.status(value, tgt),
		}
	}

	return entity.Cockpit{
		Rows: []entity.CockpitRow{
			row("roas", "ROAS", t.roas, e.targets.ROAS),
			row("aov", "Ticket Médio", aov(t), e.targets.AOV),
			row("net_margin", "Margem Líquida %", netMargin, e.targets.NetMarginPct),
			row("conversion_rate", "Taxa de Conversão %", tr.ConversionRate, e.targets.ConversionRate),
			row("ltv_cac", "LTV:CAC", ltvCac, e.targets.LtvCac),
		},
		LtvCacRatio: round(ltvCac),
	}
}

// status grades a higher-is-better value: green at or above target, amber
// within the amber fraction of it, red below.
func (e *Engine) status(value, target decimal.Decimal) entity.CockpitStatus {
	switch {
	case value.GreaterThanOrEqual(target):
		return entity.CockpitStatusGreen
	case value.GreaterThanOrEqual(target.Mul(decimal.NewFromFloat(e.targets.AmberFraction))):
		return entity.CockpitStatusAmber
	default:
		return entity.CockpitStatusRed
	}
}
