package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is one ad campaign's performance over a date range. Money fields are
// in the ad platform's billing currency.
type Campaign struct {
	CampaignId   string          `db:"campaign_id" json:"campaign_id"`
	CampaignName string          `db:"campaign_name" json:"campaign_name"`
	AccountId    string          `db:"account_id" json:"account_id"`
	AccountName  string          `db:"account_name" json:"account_name"`
	Spend        decimal.Decimal `db:"spend" json:"spend"`
	Impressions  int64           `db:"impressions" json:"impressions"`
	Clicks       int64           `db:"clicks" json:"clicks"`
	CPC          decimal.Decimal `db:"cpc" json:"cpc"`
	CTR          decimal.Decimal `db:"ctr" json:"ctr"`
	CPM          decimal.Decimal `db:"cpm" json:"cpm"`
	DateStart    time.Time       `db:"date_start" json:"date_start"`
	DateStop     time.Time       `db:"date_stop" json:"date_stop"`
}
