// Package meta fetches campaign insights from the Meta Graph (Marketing) API.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://graph.facebook.com/v19.0/"
	insightFields  = "campaign_id,campaign_name,account_id,account_name,spend,impressions,clicks,cpc,ctr,cpm,date_start,date_stop"
	maxPages       = 50
)

type Config struct {
	BaseURL     string        `mapstructure:"base_url"`
	AccessToken string        `mapstructure:"access_token"`
	AccountID   string        `mapstructure:"account_id"`
	NameFilter  string        `mapstructure:"name_filter"`
	Timeout     time.Duration `mapstructure:"timeout"`
	// DailyBreakdown asks for one insight row per campaign and day.
	DailyBreakdown bool `mapstructure:"daily_breakdown"`
}

type Client struct {
	c   *Config
	cli *resty.Client
}

func New(c *Config) *Client {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}

	cli := resty.New()
	cli.SetBaseURL(c.BaseURL)
	cli.SetTimeout(c.Timeout)

	return &Client{c: c, cli: cli}
}

type insight struct {
	CampaignId   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	AccountId    string          `json:"account_id"`
	AccountName  string          `json:"account_name"`
	Spend        decimal.Decimal `json:"spend"`
	Impressions  decimal.Decimal `json:"impressions"`
	Clicks       decimal.Decimal `json:"clicks"`
	CPC          decimal.Decimal `json:"cpc"`
	CTR          decimal.Decimal `json:"ctr"`
	CPM          decimal.Decimal `json:"cpm"`
	DateStart    string          `json:"date_start"`
	DateStop     string          `json:"date_stop"`
}

type apiError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceId string `json:"fbtrace_id"`
}

type insightsResponse struct {
	Data   []insight `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
	Error *apiError `json:"error"`
}

type filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

func (in *insight) toEntity() (entity.Campaign, error) {
	start, err := time.Parse(time.DateOnly, in.DateStart)
	if err != nil {
		return entity.Campaign{}, fmt.Errorf("bad date_start %q: %w", in.DateStart, err)
	}
	stop, err := time.Parse(time.DateOnly, in.DateStop)
	if err != nil {
		return entity.Campaign{}, fmt.Errorf("bad date_stop %q: %w", in.DateStop, err)
	}
	return entity.Campaign{
		CampaignId:   in.CampaignId,
		CampaignName: in.CampaignName,
		AccountId:    in.AccountId,
		AccountName:  in.AccountName,
		Spend:        in.Spend,
		Impressions:  in.Impressions.IntPart(),
		Clicks:       in.Clicks.IntPart(),
		CPC:          in.CPC,
		CTR:          in.CTR,
		CPM:          in.CPM,
		DateStart:    start,
		DateStop:     stop,
	}, nil
}

// FetchCampaigns returns campaign-level insights for the calendar dates of
// from and to, following pagination.
func (cli *Client) FetchCampaigns(ctx context.Context, from, to time.Time) ([]entity.Campaign, error) {
	timeRange, err := json.Marshal(map[string]string{
		"since": from.Format(time.DateOnly),
		"until": to.Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"access_token": cli.c.AccessToken,
		"level":        "campaign",
		"fields":       insightFields,
		"time_range":   string(timeRange),
		"limit":        "500",
	}
	if cli.c.DailyBreakdown {
		params["time_increment"] = "1"
	}
	if cli.c.NameFilter != "" {
		f, err := json.Marshal([]filter{{Field: "campaign.name", Operator: "CONTAIN", Value: cli.c.NameFilter}})
		if err != nil {
			return nil, err
		}
		params["filtering"] = string(f)
	}

	req := cli.cli.R().
		SetContext(ctx).
		SetPathParam("account", cli.c.AccountID).
		SetQueryParams(params)
	url := "act_{account}/insights"

	var out []entity.Campaign
	for page := 0; page < maxPages && url != ""; page++ {
		res, err := cli.get(req, url)
		if err != nil {
			return nil, err
		}
		for i := range res.Data {
			c, err := res.Data[i].toEntity()
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		// The next link carries every parameter, cursor included.
		url = res.Paging.Next
		req = cli.cli.R().SetContext(ctx)
	}
	return out, nil
}

func (cli *Client) get(req *resty.Request, url string) (*insightsResponse, error) {
	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("can't get insights: %w", err)
	}

	var res insightsResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("could not unmarshal insights: %w : body: %v", err, resp.String())
	}
	if res.Error != nil {
		return nil, fmt.Errorf("meta api error %s (code %d): %s", res.Error.Type, res.Error.Code, res.Error.Message)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("meta request failed: %s: %s", resp.Status(), resp.String())
	}
	return &res, nil
}
