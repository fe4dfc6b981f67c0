// Package dashboard gathers the inputs of a dashboard query from the cache
// and the rates service and hands them to the metrics engine.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/provinciareal/dashboard/internal/alerts"
	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/provinciareal/dashboard/internal/metrics"
	"github.com/provinciareal/dashboard/internal/telemetry"
	"github.com/provinciareal/dashboard/internal/timezone"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// fetchMargin widens the order query on both sides: orders are stored by
// source instant and the engine re-filters them in the display zone.
const fetchMargin = 24 * time.Hour

type Service struct {
	engine *metrics.Engine
	tz     *timezone.Normalizer
	zone   timezone.Zone

	orders    dependency.Orders
	campaigns dependency.Campaigns
	retention dependency.Retention
	rates     dependency.RatesService
	alerts    dependency.Alerts
}

func New(
	engine *metrics.Engine,
	tz *timezone.Normalizer,
	defaultZone timezone.Zone,
	orders dependency.Orders,
	campaigns dependency.Campaigns,
	retention dependency.Retention,
	rates dependency.RatesService,
	alertStore dependency.Alerts,
) *Service {
	if !defaultZone.Valid() {
		defaultZone = timezone.BR
	}
	return &Service{
		engine:    engine,
		tz:        tz,
		zone:      defaultZone,
		orders:    orders,
		campaigns: campaigns,
		retention: retention,
		rates:     rates,
		alerts:    alertStore,
	}
}

// inputs are the collaborator results for one period.
type inputs struct {
	orders    []entity.Order
	campaigns []entity.Campaign
	customers []entity.CustomerLifetime
}

// gather fetches everything concurrently. A failing collaborator is logged,
// counted and replaced by an empty input.
func (s *Service) gather(ctx context.Context, period entity.TimeRange) inputs {
	var in inputs
	var g errgroup.Group

	g.Go(func() error {
		orders, err := s.orders.GetOrdersByRange(ctx, period.From.Add(-fetchMargin), period.To.Add(fetchMargin))
		if err != nil {
			collaboratorFailed(ctx, "orders", err)
			return nil
		}
		in.orders = orders
		return nil
	})

	g.Go(func() error {
		rows, err := s.campaigns.GetCampaignsByRange(ctx, period.From, period.To)
		if err != nil {
			collaboratorFailed(ctx, "campaigns", err)
			return nil
		}
		in.campaigns = AggregateCampaigns(rows)
		return nil
	})

	g.Go(func() error {
		customers, err := s.retention.GetCustomerLifetimeRecords(ctx)
		if err != nil {
			collaboratorFailed(ctx, "retention", err)
			return nil
		}
		in.customers = customers
		return nil
	})

	g.Go(func() error {
		// spend is converted at the period start; resolve it alongside the queries
		s.rates.Rate(ctx, period.From)
		return nil
	})

	_ = g.Wait()
	return in
}

func collaboratorFailed(ctx context.Context, name string, err error) {
	telemetry.CollaboratorErrors.WithLabelValues(name).Inc()
	slog.Default().ErrorContext(ctx, "dashboard collaborator failed, using empty input",
		slog.String("collaborator", name),
		slog.String("err", err.Error()),
	)
}

// Metrics computes the dashboard for q. It fails only on an invalid query.
func (s *Service) Metrics(ctx context.Context, q Query) (*entity.DashboardMetrics, error) {
	return s.compute(ctx, q, "metrics")
}

// Realtime computes the dashboard for today in tz.
func (s *Service) Realtime(ctx context.Context, tz string) (*entity.DashboardMetrics, error) {
	return s.compute(ctx, Query{Preset: PresetToday, Timezone: tz}, "realtime")
}

func (s *Service) compute(ctx context.Context, q Query, kind string) (*entity.DashboardMetrics, error) {
	start := time.Now()
	period, zone, err := s.resolve(q)
	if err != nil {
		return nil, err
	}

	in := s.gather(ctx, period)
	m := s.engine.Compute(ctx, metrics.Input{
		Orders:    in.orders,
		Campaigns: in.campaigns,
		Customers: in.customers,
		Converter: s.rates,
		Period:    &period,
		Timezone:  zone,
	})

	telemetry.Computations.WithLabelValues(kind).Inc()
	telemetry.ComputeDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if m.UnclassifiedProducts > 0 {
		telemetry.UnclassifiedProducts.Add(float64(m.UnclassifiedProducts))
		slog.Default().WarnContext(ctx, "products without cost classification",
			slog.Int("count", m.UnclassifiedProducts),
		)
	}
	return m, nil
}

// UTM groups the period's orders by UTM dimension and product.
func (s *Service) UTM(ctx context.Context, q Query) (*entity.UTMAnalysis, error) {
	start := time.Now()
	period, zone, err := s.resolve(q)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.GetOrdersByRange(ctx, period.From.Add(-fetchMargin), period.To.Add(fetchMargin))
	if err != nil {
		collaboratorFailed(ctx, "orders", err)
		orders = nil
	}
	ua := metrics.UTMAnalysis(s.engine.FilterOrders(orders, period, zone), period)

	telemetry.Computations.WithLabelValues("utm").Inc()
	telemetry.ComputeDuration.WithLabelValues("utm").Observe(time.Since(start).Seconds())
	return &ua, nil
}

// ActiveAlerts evaluates the enabled alert configs against today's figures.
func (s *Service) ActiveAlerts(ctx context.Context, tz string) (*alerts.Report, error) {
	m, err := s.Realtime(ctx, tz)
	if err != nil {
		return nil, err
	}
	configs, err := s.alerts.ListAlertConfigs(ctx, true)
	if err != nil {
		collaboratorFailed(ctx, "alerts", err)
		configs = nil
	}
	r := alerts.Evaluate(configs, m)
	return &r, nil
}

// AggregateCampaigns folds daily insight rows into one row per campaign,
// summing spend, impressions and clicks and recomputing the ratios. The name
// of the latest row wins. Output is ordered by first appearance.
func AggregateCampaigns(rows []entity.Campaign) []entity.Campaign {
	idx := map[string]int{}
	out := make([]entity.Campaign, 0, len(rows))
	for _, r := range rows {
		id := r.CampaignId
		if id == "" {
			id = "name:" + r.CampaignName
		}
		i, ok := idx[id]
		if !ok {
			idx[id] = len(out)
			out = append(out, r)
			continue
		}
		c := &out[i]
		c.Spend = c.Spend.Add(r.Spend)
		c.Impressions += r.Impressions
		c.Clicks += r.Clicks
		if r.DateStart.Before(c.DateStart) {
			c.DateStart = r.DateStart
		}
		if !r.DateStop.Before(c.DateStop) {
			c.DateStop = r.DateStop
			c.CampaignName = r.CampaignName
		}
	}

	for i := range out {
		c := &out[i]
		clicks := decimal.NewFromInt(c.Clicks)
		impressions := decimal.NewFromInt(c.Impressions)
		if c.Clicks > 0 {
			c.CPC = c.Spend.Div(clicks)
		}
		if c.Impressions > 0 {
			c.CTR = clicks.Div(impressions).Mul(decimal.NewFromInt(100))
			c.CPM = c.Spend.Div(impressions).Mul(decimal.NewFromInt(1000))
		}
	}
	return out
}
