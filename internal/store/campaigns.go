package store

import (
	"context"
	"fmt"
	"time"

	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
)

type campaignsStore struct {
	*MYSQLStore
}

// Campaigns returns an object implementing Campaigns interface
func (ms *MYSQLStore) Campaigns() dependency.Campaigns {
	return &campaignsStore{
		MYSQLStore: ms,
	}
}

const upsertCampaignQuery = `
	INSERT INTO meta_campaigns_cache (
		campaign_id, date_start, date_stop, campaign_name, account_id, account_name,
		spend, impressions, clicks, cpc, ctr, cpm
	) VALUES (
		:campaignId, :dateStart, :dateStop, :campaignName, :accountId, :accountName,
		:spend, :impressions, :clicks, :cpc, :ctr, :cpm
	)
	ON DUPLICATE KEY UPDATE
		campaign_name = VALUES(campaign_name),
		account_id = VALUES(account_id),
		account_name = VALUES(account_name),
		spend = VALUES(spend),
		impressions = VALUES(impressions),
		clicks = VALUES(clicks),
		cpc = VALUES(cpc),
		ctr = VALUES(ctr),
		cpm = VALUES(cpm)`

// UpsertCampaigns writes insight rows keyed by campaign and reporting window.
func (ms *MYSQLStore) UpsertCampaigns(ctx context.Context, campaigns []entity.Campaign) (int, error) {
	if len(campaigns) == 0 {
		return 0, nil
	}
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		for _, c := range campaigns {
			err := ExecNamed(ctx, rep.DB(), upsertCampaignQuery, map[string]any{
				"campaignId":   c.CampaignId,
				"dateStart":    c.DateStart.Format(time.DateOnly),
				"dateStop":     c.DateStop.Format(time.DateOnly),
				"campaignName": c.CampaignName,
				"accountId":    c.AccountId,
				"accountName":  c.AccountName,
				"spend":        c.Spend,
				"impressions":  c.Impressions,
				"clicks":       c.Clicks,
				"cpc":          c.CPC,
				"ctr":          c.CTR,
				"cpm":          c.CPM,
			})
			if err != nil {
				return fmt.Errorf("can't upsert campaign %s: %w", c.CampaignId, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(campaigns), nil
}

// GetCampaignsByRange returns rows whose reporting window lies within the
// calendar dates of from and to.
func (ms *MYSQLStore) GetCampaignsByRange(ctx context.Context, from, to time.Time) ([]entity.Campaign, error) {
	query := `
	SELECT
		campaign_id, campaign_name, account_id, account_name,
		spend, impressions, clicks, cpc, ctr, cpm, date_start, date_stop
	FROM meta_campaigns_cache
	WHERE date_start >= :from AND date_stop <= :to
	ORDER BY date_start ASC, campaign_id ASC`

	campaigns, err := QueryListNamed[entity.Campaign](ctx, ms.DB(), query, map[string]any{
		"from": from.Format(time.DateOnly),
		"to":   to.Format(time.DateOnly),
	})
	if err != nil {
		return nil, fmt.Errorf("can't get campaigns by range: %w", err)
	}
	return campaigns, nil
}
