package entity

import "github.com/shopspring/decimal"

// DirectLabel groups orders that carried no value for a UTM dimension.
const DirectLabel = "(Direto / Sem UTM)"

type UTMBucket struct {
	Value     string          `json:"value"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	PaidCount int             `json:"paid_count"`
	PaidTotal decimal.Decimal `json:"paid_total"`
}

type UTMAnalysis struct {
	Period    TimeRange   `json:"period"`
	Sources   []UTMBucket `json:"sources"`
	Mediums   []UTMBucket `json:"mediums"`
	Campaigns []UTMBucket `json:"campaigns"`
	Contents  []UTMBucket `json:"contents"`
	Terms     []UTMBucket `json:"terms"`
	Products  []UTMBucket `json:"products"`
}
