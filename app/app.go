package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/provinciareal/dashboard/config"
	httpapi "github.com/provinciareal/dashboard/internal/api/http"
	"github.com/provinciareal/dashboard/internal/campaignkey"
	"github.com/provinciareal/dashboard/internal/costcalc"
	"github.com/provinciareal/dashboard/internal/dashboard"
	"github.com/provinciareal/dashboard/internal/datasync"
	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/meta"
	"github.com/provinciareal/dashboard/internal/metrics"
	"github.com/provinciareal/dashboard/internal/nuvemshop"
	"github.com/provinciareal/dashboard/internal/rates"
	"github.com/provinciareal/dashboard/internal/store"
	"github.com/provinciareal/dashboard/internal/timezone"
)

// App is the main application
type App struct {
	c     *config.Config
	db    dependency.Repository
	rates *rates.Client
	sync  *datasync.Worker
	hs    *httpapi.Server
	done  chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start connects to mysql, starts the background workers and the http server.
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting provincia dashboard")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	a.rates = rates.New(&a.c.Rates, a.db.Rates())
	if err = a.rates.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed to start rates refresher", slog.String("err", err.Error()))
		return err
	}

	dash, err := NewDashboard(a.c, a.db, a.rates)
	if err != nil {
		return err
	}

	orders, campaigns := Sources(a.c)
	a.sync = datasync.New(&a.c.Sync, orders, campaigns, a.db.Orders(), a.db.Campaigns(), a.db.SyncLog())
	if err = a.sync.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "failed to start sync worker", slog.String("err", err.Error()))
		return err
	}

	a.hs = httpapi.New(&a.c.HTTP, dash, a.db.Alerts(), a.sync, a.rates)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		close(a.done)
	}()

	return nil
}

// NewDashboard builds the metrics engine and the dashboard service from c.
func NewDashboard(c *config.Config, rep dependency.Repository, rs dependency.RatesService) (*dashboard.Service, error) {
	policy, err := campaignkey.ParsePolicy(c.Metrics.KeyPolicy)
	if err != nil {
		return nil, fmt.Errorf("bad metrics.key_policy: %w", err)
	}
	zone, err := timezone.ParseZone(c.Metrics.DefaultTimezone, timezone.BR)
	if err != nil {
		return nil, fmt.Errorf("bad metrics.default_timezone: %w", err)
	}

	tz := timezone.New(timezone.BR)
	engine := metrics.NewEngine(tz, costcalc.New(c.Costs), campaignkey.New(policy), c.Targets, zone)

	return dashboard.New(engine, tz, zone,
		rep.Orders(), rep.Campaigns(), rep.Retention(), rs, rep.Alerts()), nil
}

// Sources returns the configured upstream clients. An unconfigured source is
// returned as a nil interface so the sync worker skips it.
func Sources(c *config.Config) (dependency.OrderSource, dependency.CampaignSource) {
	var (
		orders    dependency.OrderSource
		campaigns dependency.CampaignSource
	)
	if c.NuvemShop.StoreID != "" && c.NuvemShop.AccessToken != "" {
		orders = nuvemshop.New(&c.NuvemShop)
	} else {
		slog.Default().Warn("nuvemshop credentials missing, order sync disabled")
	}
	if c.Meta.AccountID != "" && c.Meta.AccessToken != "" {
		campaigns = meta.New(&c.Meta)
	} else {
		slog.Default().Warn("meta credentials missing, campaign sync disabled")
	}
	return orders, campaigns
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed", slog.String("err", err.Error()))
		}
	}
	if a.sync != nil {
		if err := a.sync.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "sync worker stop failed", slog.String("err", err.Error()))
		}
	}
	if a.rates != nil {
		a.rates.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed when the http server exits
func (a *App) Done() <-chan struct{} {
	return a.done
}
