package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/provinciareal/dashboard/internal/telemetry"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL      = "https://economia.awesomeapi.com.br/"
	DefaultFallbackRate = 4.97
)

type Config struct {
	BaseURL           string        `mapstructure:"base_url"`
	FallbackRate      float64       `mapstructure:"fallback_rate"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RatesUpdatePeriod time.Duration `mapstructure:"rates_update_period"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		FallbackRate:      DefaultFallbackRate,
		Timeout:           10 * time.Second,
		RatesUpdatePeriod: time.Hour,
	}
}

// Client resolves USD to BRL rates: stored rate for the date first, then the
// latest quote from AwesomeAPI, then the configured fallback. Resolved rates
// are memoized per calendar date; fallbacks are not, so a later call retries.
type Client struct {
	c        *Config
	cli      *resty.Client
	store    dependency.Rates
	fallback decimal.Decimal
	now      func() time.Time

	mu   sync.RWMutex
	memo map[string]decimal.Decimal
	sf   singleflight.Group

	cancel context.CancelFunc
	doneCh chan struct{}
}

func New(c *Config, store dependency.Rates) *Client {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.FallbackRate <= 0 {
		c.FallbackRate = DefaultFallbackRate
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}

	cli := resty.New()
	cli.SetBaseURL(c.BaseURL)
	cli.SetTimeout(c.Timeout)

	return &Client{
		c:        c,
		cli:      cli,
		store:    store,
		fallback: decimal.NewFromFloat(c.FallbackRate),
		now:      time.Now,
		memo:     make(map[string]decimal.Decimal),
	}
}

// Start resolves today's rate and keeps refreshing it every RatesUpdatePeriod
// until Stop is called.
func (cli *Client) Start(ctx context.Context) error {
	if cli.cancel != nil {
		return fmt.Errorf("rates refresher already started")
	}
	ctx, cancel := context.WithCancel(ctx)
	cli.cancel = cancel
	cli.doneCh = make(chan struct{})

	period := cli.c.RatesUpdatePeriod
	if period <= 0 {
		period = time.Hour
	}

	go func() {
		defer close(cli.doneCh)
		cli.refreshToday(ctx)

		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cli.refreshToday(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (cli *Client) Stop() {
	if cli.cancel == nil {
		return
	}
	cli.cancel()
	<-cli.doneCh
	cli.cancel = nil
}

// refreshToday replaces today's rate with the latest quote.
func (cli *Client) refreshToday(ctx context.Context) {
	today := cli.now()
	rate, err := cli.fetchLatest(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't refresh exchange rate",
			slog.String("err", err.Error()),
		)
		return
	}
	cli.save(ctx, today, rate)
	cli.mu.Lock()
	cli.memo[today.Format(time.DateOnly)] = rate
	cli.mu.Unlock()
}

// Rate returns the USD to BRL rate for date's calendar day. It never fails.
func (cli *Client) Rate(ctx context.Context, date time.Time) decimal.Decimal {
	day := date.Format(time.DateOnly)

	cli.mu.RLock()
	r, ok := cli.memo[day]
	cli.mu.RUnlock()
	if ok {
		return r
	}

	v, _, _ := cli.sf.Do(day, func() (any, error) {
		r, err := cli.resolve(ctx, date)
		if err != nil {
			telemetry.RateLookups.WithLabelValues(entity.RateSourceFallback).Inc()
			slog.Default().WarnContext(ctx, "using fallback exchange rate",
				slog.String("date", day),
				slog.String("fallback", cli.fallback.String()),
				slog.String("err", err.Error()),
			)
			return cli.fallback, nil
		}
		cli.mu.Lock()
		cli.memo[day] = r
		cli.mu.Unlock()
		return r, nil
	})
	return v.(decimal.Decimal)
}

// ConvertToLocal converts a USD amount to BRL at asOf's rate.
func (cli *Client) ConvertToLocal(ctx context.Context, amount decimal.Decimal, asOf time.Time) decimal.Decimal {
	return amount.Mul(cli.Rate(ctx, asOf))
}

// RateRange returns one rate per calendar date from from to to, keyed YYYY-MM-DD.
func (cli *Client) RateRange(ctx context.Context, from, to time.Time) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for d := start; !d.After(to); d = d.AddDate(0, 0, 1) {
		out[d.Format(time.DateOnly)] = cli.Rate(ctx, d)
	}
	return out
}

func (cli *Client) resolve(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	if cli.store != nil {
		stored, err := cli.store.GetRate(ctx, date)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't get stored exchange rate",
				slog.String("err", err.Error()),
			)
		}
		if stored != nil && stored.UsdBrl.IsPositive() {
			telemetry.RateLookups.WithLabelValues(entity.RateSourceStore).Inc()
			return stored.UsdBrl, nil
		}
	}

	rate, err := cli.fetchLatest(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	telemetry.RateLookups.WithLabelValues(entity.RateSourceAPI).Inc()
	// the API only serves the latest quote; it is stored for today alone
	if sameDay(date, cli.now()) {
		cli.save(ctx, date, rate)
	}
	return rate, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(time.DateOnly) == b.In(a.Location()).Format(time.DateOnly)
}

func (cli *Client) save(ctx context.Context, date time.Time, rate decimal.Decimal) {
	if cli.store == nil {
		return
	}
	err := cli.store.SaveRate(ctx, &entity.ExchangeRate{
		Date:   date,
		UsdBrl: rate,
		Source: entity.RateSourceAPI,
	})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't save exchange rate",
			slog.String("err", err.Error()),
		)
	}
}

type quote struct {
	Code       string `json:"code"`
	Codein     string `json:"codein"`
	Bid        string `json:"bid"`
	Ask        string `json:"ask"`
	CreateDate string `json:"create_date"`
}

type latestResponse struct {
	USDBRL *quote `json:"USDBRL"`
}

func (cli *Client) fetchLatest(ctx context.Context) (decimal.Decimal, error) {
	resp, err := cli.cli.R().SetContext(ctx).Get("json/last/USD-BRL")
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not get latest rate: %w", err)
	}
	if resp.IsError() {
		return decimal.Zero, fmt.Errorf("rates api request failed: %s: %s", resp.Status(), resp.String())
	}

	var res latestResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return decimal.Zero, fmt.Errorf("could not unmarshal rates response: %w : body: %v", err, resp.String())
	}
	if res.USDBRL == nil {
		return decimal.Zero, fmt.Errorf("rates response has no USDBRL quote: %v", resp.String())
	}

	bid, err := decimal.NewFromString(res.USDBRL.Bid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad USDBRL bid %q: %w", res.USDBRL.Bid, err)
	}
	if !bid.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive USDBRL bid %s", bid)
	}
	return bid, nil
}
