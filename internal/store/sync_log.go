package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
)

type syncLogStore struct {
	*MYSQLStore
}

// SyncLog returns an object implementing SyncLog interface
func (ms *MYSQLStore) SyncLog() dependency.SyncLog {
	return &syncLogStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddSyncLog(ctx context.Context, sl *entity.SyncLog) error {
	err := ExecNamed(ctx, ms.DB(), `
	INSERT INTO sync_log (id, kind, status, range_from, range_to, started_at)
	VALUES (:id, :kind, :status, :rangeFrom, :rangeTo, :startedAt)`, map[string]any{
		"id":        sl.Id,
		"kind":      string(sl.Kind),
		"status":    string(sl.Status),
		"rangeFrom": sl.RangeFrom.UTC(),
		"rangeTo":   sl.RangeTo.UTC(),
		"startedAt": sl.StartedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("can't add sync log: %w", err)
	}
	return nil
}

// FinishSyncLog records the outcome of a run started with AddSyncLog.
func (ms *MYSQLStore) FinishSyncLog(ctx context.Context, sl *entity.SyncLog) error {
	err := ExecNamed(ctx, ms.DB(), `
	UPDATE sync_log SET
		status = :status,
		finished_at = :finishedAt,
		fetched = :fetched,
		upserted = :upserted,
		error_message = :errorMessage
	WHERE id = :id`, map[string]any{
		"id":           sl.Id,
		"status":       string(sl.Status),
		"finishedAt":   sl.FinishedAt,
		"fetched":      sl.Fetched,
		"upserted":     sl.Upserted,
		"errorMessage": sl.Error,
	})
	if err != nil {
		return fmt.Errorf("can't finish sync log: %w", err)
	}
	return nil
}

// GetLastSyncLog returns the most recently started run of kind, or nil.
func (ms *MYSQLStore) GetLastSyncLog(ctx context.Context, kind entity.SyncKind) (*entity.SyncLog, error) {
	sl, err := QueryNamedOne[entity.SyncLog](ctx, ms.DB(), `
	SELECT id, kind, status, range_from, range_to, started_at, finished_at, fetched, upserted, error_message
	FROM sync_log
	WHERE kind = :kind
	ORDER BY started_at DESC
	LIMIT 1`, map[string]any{
		"kind": string(kind),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't get last sync log: %w", err)
	}
	return &sl, nil
}
