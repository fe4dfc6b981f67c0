package datasync

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"log/slog"

	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/provinciareal/dashboard/internal/telemetry"
)

func (w *Worker) worker(ctx context.Context) {
	defer close(w.done)
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	from, to := w.Window()
	if _, err := w.RunOnce(ctx, from, to); err != nil {
		slog.Default().WarnContext(ctx, "skipping scheduled sync",
			slog.String("err", err.Error()),
		)
	}
}

// syncFunc fetches one source and upserts it, returning fetched and upserted counts.
type syncFunc func(ctx context.Context, from, to time.Time) (int, int, error)

func (w *Worker) run(ctx context.Context, kind entity.SyncKind, from, to time.Time, f syncFunc) *KindResult {
	sl := &entity.SyncLog{
		Id:        w.newId(),
		Kind:      kind,
		Status:    entity.SyncStatusRunning,
		RangeFrom: from,
		RangeTo:   to,
		StartedAt: w.now(),
	}
	if err := w.syncLog.AddSyncLog(ctx, sl); err != nil {
		slog.Default().ErrorContext(ctx, "can't add sync log",
			slog.String("kind", string(kind)),
			slog.String("err", err.Error()),
		)
	}

	fetched, upserted, err := f(ctx, from, to)
	sl.Fetched, sl.Upserted = fetched, upserted
	sl.FinishedAt = sql.NullTime{Time: w.now(), Valid: true}
	sl.Status = entity.SyncStatusSuccess
	if err != nil {
		sl.Status = entity.SyncStatusFailed
		sl.Error = sql.NullString{String: err.Error(), Valid: true}
		slog.Default().ErrorContext(ctx, "sync failed",
			slog.String("kind", string(kind)),
			slog.String("run_id", sl.Id),
			slog.String("err", err.Error()),
		)
	} else {
		slog.Default().InfoContext(ctx, "sync finished",
			slog.String("kind", string(kind)),
			slog.String("run_id", sl.Id),
			slog.Int("fetched", fetched),
			slog.Int("upserted", upserted),
		)
	}
	telemetry.SyncRuns.WithLabelValues(string(kind), string(sl.Status)).Inc()
	telemetry.SyncRecords.WithLabelValues(string(kind)).Add(float64(upserted))

	// the run's outcome is recorded even when the caller has gone away
	if err := w.syncLog.FinishSyncLog(context.WithoutCancel(ctx), sl); err != nil {
		slog.Default().ErrorContext(ctx, "can't finish sync log",
			slog.String("kind", string(kind)),
			slog.String("err", err.Error()),
		)
	}

	kr := &KindResult{
		RunId:    sl.Id,
		Kind:     kind,
		Status:   sl.Status,
		Fetched:  fetched,
		Upserted: upserted,
	}
	if sl.Error.Valid {
		kr.Error = sl.Error.String
	}
	return kr
}

func (w *Worker) syncOrders(ctx context.Context, from, to time.Time) (int, int, error) {
	orders, err := w.orders.FetchOrders(ctx, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("can't fetch orders: %w", err)
	}
	n, err := w.orderStore.UpsertOrders(ctx, orders)
	if err != nil {
		return len(orders), 0, fmt.Errorf("can't upsert orders: %w", err)
	}
	return len(orders), n, nil
}

func (w *Worker) syncCampaigns(ctx context.Context, from, to time.Time) (int, int, error) {
	campaigns, err := w.campaigns.FetchCampaigns(ctx, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("can't fetch campaigns: %w", err)
	}
	n, err := w.campaignStore.UpsertCampaigns(ctx, campaigns)
	if err != nil {
		return len(campaigns), 0, fmt.Errorf("can't upsert campaigns: %w", err)
	}
	return len(campaigns), n, nil
}
