package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is an inclusive [From, To] interval of instants.
type TimeRange struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Label string    `json:"label,omitempty"`
}

// Contains reports whether t lies within the range, both bounds included.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && !t.After(tr.To)
}

// DashboardMetrics is the consolidated result of one dashboard query.
type DashboardMetrics struct {
	Period       TimeRange       `json:"period"`
	Timezone     string          `json:"timezone"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`

	Orders  OrderCounts     `json:"orders"`
	Revenue Revenue         `json:"revenue"`
	Costs   Costs           `json:"costs"`
	Profit  Profit          `json:"profit"`
	ROAS    decimal.Decimal `json:"roas"`
	ROI     decimal.Decimal `json:"roi"`

	Campaigns []CampaignMetrics `json:"campaigns"`

	// UnclassifiedProducts counts paid line items whose names matched no cost
	// keyword and therefore contributed zero product cost.
	UnclassifiedProducts int `json:"unclassified_products"`

	Traction      Traction         `json:"traction"`
	Profitability Profitability    `json:"profitability"`
	Marketing     Marketing        `json:"marketing"`
	Retention     RetentionMetrics `json:"retention"`
	Logistics     Logistics        `json:"logistics"`
	Cockpit       Cockpit          `json:"cockpit"`
	Targets       TargetsProgress  `json:"targets"`
}

type OrderCounts struct {
	Total int `json:"total"`
	Paid  int `json:"paid"`
}

type Revenue struct {
	Gross decimal.Decimal `json:"gross"`
	Paid  decimal.Decimal `json:"paid"`
}

type Costs struct {
	Products decimal.Decimal `json:"products"`
	Shipping decimal.Decimal `json:"shipping"`
	AdSpend  decimal.Decimal `json:"ad_spend"`
	Total    decimal.Decimal `json:"total"`
}

type Profit struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

// CampaignMetrics is the attribution record for one canonical campaign key.
type CampaignMetrics struct {
	Key          string          `json:"key"`
	CampaignId   string          `json:"campaign_id,omitempty"`
	CampaignName string          `json:"campaign_name"`
	Orders       int             `json:"orders"`
	Sales        decimal.Decimal `json:"sales"`
	Spend        decimal.Decimal `json:"spend"`
	ProductCost  decimal.Decimal `json:"product_cost"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Profit       decimal.Decimal `json:"profit"`
	ROAS         decimal.Decimal `json:"roas"`
	ROI          decimal.Decimal `json:"roi"`
	Impressions  int64           `json:"impressions"`
	Clicks       int64           `json:"clicks"`
}

type SKUMix struct {
	PotUnits   int             `json:"pot_units"`
	BarUnits   int             `json:"bar_units"`
	KitUnits   int             `json:"kit_units"`
	OtherUnits int             `json:"other_units"`
	PotPct     decimal.Decimal `json:"pot_pct"`
	BarPct     decimal.Decimal `json:"bar_pct"`
	KitPct     decimal.Decimal `json:"kit_pct"`
	OtherPct   decimal.Decimal `json:"other_pct"`
}

type Traction struct {
	AOV            decimal.Decimal `json:"aov"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	SKUMix         SKUMix          `json:"sku_mix"`
	KitOrdersPct   decimal.Decimal `json:"kit_orders_pct"`
	OrganicPct     decimal.Decimal `json:"organic_pct"`
}

type Profitability struct {
	ContributionMargin decimal.Decimal `json:"contribution_margin"`
	NetMarginPct       decimal.Decimal `json:"net_margin_pct"`
	ProductROI         decimal.Decimal `json:"product_roi"`
	BreakevenOrders    int64           `json:"breakeven_orders"`
}

type Marketing struct {
	NewCustomers     int             `json:"new_customers"`
	CAC              decimal.Decimal `json:"cac"`
	CPA              decimal.Decimal `json:"cpa"`
	AvgCPC           decimal.Decimal `json:"avg_cpc"`
	AvgCPM           decimal.Decimal `json:"avg_cpm"`
	CTR              decimal.Decimal `json:"ctr"`
	TotalClicks      int64           `json:"total_clicks"`
	TotalImpressions int64           `json:"total_impressions"`
}

type Logistics struct {
	FreeShippingOrders int             `json:"free_shipping_orders"`
	FreeShippingCost   decimal.Decimal `json:"free_shipping_cost"`
	FreeShippingPct    decimal.Decimal `json:"free_shipping_pct"`
	AvgShippingCost    decimal.Decimal `json:"avg_shipping_cost"`
	GatewayFees        decimal.Decimal `json:"gateway_fees"`
}

type CockpitStatus string

const (
	CockpitStatusGreen CockpitStatus = "green"
	CockpitStatusAmber CockpitStatus = "amber"
	CockpitStatusRed   CockpitStatus = "red"
)

type CockpitRow struct {
	Metric string          `json:"metric"`
	Label  string          `json:"label"`
	Value  decimal.Decimal `json:"value"`
	Target decimal.Decimal `json:"target"`
	Status CockpitStatus   `json:"status"`
}

type Cockpit struct {
	Rows        []CockpitRow    `json:"rows"`
	LtvCacRatio decimal.Decimal `json:"ltv_cac_ratio"`
}

// TargetProgress tracks a value against a goal for the queried period.
type TargetProgress struct {
	Current    decimal.Decimal `json:"current"`
	Target     decimal.Decimal `json:"target"`
	Percentage decimal.Decimal `json:"percentage"`
	Remaining  decimal.Decimal `json:"remaining"`
	Expected   decimal.Decimal `json:"expected"`
	OnPace     bool            `json:"on_pace"`
	Met        bool            `json:"met"`
}

type TargetsProgress struct {
	Revenue TargetProgress `json:"revenue"`
	Profit  TargetProgress `json:"profit"`
}
