// Package datasync copies orders and campaign insights from the upstream
// sources into the local cache on a fixed interval.
package datasync

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
)

// Config holds configuration for the sync worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	LookbackDays   int           `mapstructure:"lookback_days"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 15 * time.Minute,
		LookbackDays:   2,
	}
}

// KindResult is the outcome of syncing one source.
type KindResult struct {
	RunId    string            `json:"run_id"`
	Kind     entity.SyncKind   `json:"kind"`
	Status   entity.SyncStatus `json:"status"`
	Fetched  int               `json:"fetched"`
	Upserted int               `json:"upserted"`
	Error    string            `json:"error,omitempty"`
}

// Result is the outcome of one RunOnce call. A nil entry means the source is
// not configured.
type Result struct {
	From      time.Time   `json:"from"`
	To        time.Time   `json:"to"`
	Orders    *KindResult `json:"orders,omitempty"`
	Campaigns *KindResult `json:"campaigns,omitempty"`
}

// Worker fetches orders and campaign insights and upserts them into the
// cache, recording a sync_log entry per source and run.
type Worker struct {
	c             *Config
	orders        dependency.OrderSource
	campaigns     dependency.CampaignSource
	orderStore    dependency.Orders
	campaignStore dependency.Campaigns
	syncLog       dependency.SyncLog

	now     func() time.Time
	newId   func() string
	running atomic.Bool

	ctx  context.Context
	stop context.CancelFunc
	done chan struct{}
}

// New creates a new sync worker. Either source may be nil when it is not configured.
func New(
	c *Config,
	orders dependency.OrderSource,
	campaigns dependency.CampaignSource,
	orderStore dependency.Orders,
	campaignStore dependency.Campaigns,
	syncLog dependency.SyncLog,
) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = 15 * time.Minute
	}
	if c.LookbackDays <= 0 {
		c.LookbackDays = 2
	}
	return &Worker{
		c:             c,
		orders:        orders,
		campaigns:     campaigns,
		orderStore:    orderStore,
		campaignStore: campaignStore,
		syncLog:       syncLog,
		now:           time.Now,
		newId:         func() string { return uuid.New().String() },
	}
}

// Start starts the worker. The first run happens immediately.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("sync worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	w.done = make(chan struct{})
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker and waits for a run in flight to finish.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("sync worker already stopped or not started")
	}
	w.stop()
	<-w.done
	w.stop = nil
	w.ctx = nil
	return nil
}

// Window returns the default sync range ending now.
func (w *Worker) Window() (time.Time, time.Time) {
	to := w.now()
	return to.AddDate(0, 0, -w.c.LookbackDays), to
}

// RunOnce syncs both sources for [from, to]. Source failures are recorded in
// the result and the sync log, never returned. It fails only when another run
// is in progress.
func (w *Worker) RunOnce(ctx context.Context, from, to time.Time) (*Result, error) {
	if !w.running.CompareAndSwap(false, true) {
		return nil, gerr.ErrSyncInProgress
	}
	defer w.running.Store(false)

	res := &Result{From: from, To: to}
	if w.orders != nil {
		res.Orders = w.run(ctx, entity.SyncKindOrders, from, to, w.syncOrders)
	}
	if w.campaigns != nil {
		res.Campaigns = w.run(ctx, entity.SyncKindCampaigns, from, to, w.syncCampaigns)
	}
	return res, nil
}
