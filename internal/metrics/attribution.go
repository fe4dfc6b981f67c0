package metrics

import (
	"sort"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

type campaignAcc struct {
	key         string
	id          string
	name        string
	orders      int
	sales       decimal.Decimal
	spend       decimal.Decimal
	productCost decimal.Decimal
	shipping    decimal.Decimal
	impressions int64
	clicks      int64
}

// Attribute builds one record per campaign key seen on paid orders or ad
// records. Each key's spend is taken from spendByKey and set once, so keys
// without ad records keep zero spend and ad records without orders still get
// a record. Records are sorted by spend, descending, keeping first-seen order
// on ties.
func (e *Engine) Attribute(paid []entity.Order, campaigns []entity.Campaign, spendByKey map[string]decimal.Decimal) []entity.CampaignMetrics {
	var accs []*campaignAcc
	byKey := map[string]*campaignAcc{}

	get := func(key, name string) *campaignAcc {
		if a, ok := byKey[key]; ok {
			return a
		}
		a := &campaignAcc{
			key:         key,
			name:        name,
			sales:       decimal.Zero,
			spend:       decimal.Zero,
			productCost: decimal.Zero,
			shipping:    decimal.Zero,
		}
		byKey[key] = a
		accs = append(accs, a)
		return a
	}

	for _, o := range paid {
		key, label := e.keys.OrderKey(o.UTM.Campaign)
		a := get(key, label)
		cost, _ := e.costs.OrderCost(o.Products)
		a.orders++
		a.sales = a.sales.Add(o.Total)
		a.productCost = a.productCost.Add(cost)
		a.shipping = a.shipping.Add(o.ShippingCostOwner)
	}

	for _, c := range campaigns {
		key := e.keys.Key(c.CampaignName)
		a := get(key, c.CampaignName)
		if a.id == "" {
			a.id = c.CampaignId
		}
		if spend, ok := spendByKey[key]; ok {
			a.spend = spend
		}
		a.impressions += c.Impressions
		a.clicks += c.Clicks
	}

	sort.SliceStable(accs, func(i, j int) bool {
		return accs[i].spend.GreaterThan(accs[j].spend)
	})

	out := make([]entity.CampaignMetrics, 0, len(accs))
	for _, a := range accs {
		profit := a.sales.Sub(a.productCost).Sub(a.shipping).Sub(a.spend)
		invested := a.spend.Add(a.productCost).Add(a.shipping)
		out = append(out, entity.CampaignMetrics{
			Key:          a.key,
			CampaignId:   a.id,
			CampaignName: a.name,
			Orders:       a.orders,
			Sales:        round(a.sales),
			Spend:        round(a.spend),
			ProductCost:  round(a.productCost),
			ShippingCost: round(a.shipping),
			Profit:       round(profit),
			ROAS:         round(safeDiv(a.sales, a.spend)),
			ROI:          round(safeDiv(profit, invested).Mul(hundred)),
			Impressions:  a.impressions,
			Clicks:       a.clicks,
		})
	}
	return out
}
