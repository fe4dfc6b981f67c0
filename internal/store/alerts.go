package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/provinciareal/dashboard/internal/dependency"
	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
)

type alertsStore struct {
	*MYSQLStore
}

// Alerts returns an object implementing Alerts interface
func (ms *MYSQLStore) Alerts() dependency.Alerts {
	return &alertsStore{
		MYSQLStore: ms,
	}
}

const alertColumns = `id, name, metric, alert_condition, threshold, severity, enabled, message_template, created_at, updated_at`

func (ms *MYSQLStore) ListAlertConfigs(ctx context.Context, enabledOnly bool) ([]entity.AlertConfig, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts_config`
	if enabledOnly {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY id ASC`

	acs, err := QueryListNamed[entity.AlertConfig](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't list alert configs: %w", err)
	}
	return acs, nil
}

func (ms *MYSQLStore) GetAlertConfig(ctx context.Context, id int) (*entity.AlertConfig, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts_config WHERE id = :id`
	ac, err := QueryNamedOne[entity.AlertConfig](ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", gerr.ErrAlertNotFound, id)
		}
		return nil, fmt.Errorf("can't get alert config: %w", err)
	}
	return &ac, nil
}

func alertParams(ac *entity.AlertConfigInsert) map[string]any {
	return map[string]any{
		"name":            ac.Name,
		"metric":          ac.Metric,
		"condition":       string(ac.Condition),
		"threshold":       ac.Threshold,
		"severity":        string(ac.Severity),
		"enabled":         ac.Enabled,
		"messageTemplate": ac.MessageTemplate,
	}
}

func (ms *MYSQLStore) AddAlertConfig(ctx context.Context, ac *entity.AlertConfigInsert) (int, error) {
	id, err := ExecNamedLastId(ctx, ms.DB(), `
	INSERT INTO alerts_config (name, metric, alert_condition, threshold, severity, enabled, message_template)
	VALUES (:name, :metric, :condition, :threshold, :severity, :enabled, :messageTemplate)`, alertParams(ac))
	if err != nil {
		if ms.IsErrUniqueViolation(err) {
			return 0, fmt.Errorf("%w: name %q already exists", gerr.ErrInvalidAlert, ac.Name)
		}
		return 0, fmt.Errorf("can't add alert config: %w", err)
	}
	return id, nil
}

// UpdateAlertConfig replaces every editable field of the config.
func (ms *MYSQLStore) UpdateAlertConfig(ctx context.Context, id int, ac *entity.AlertConfigInsert) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		if _, err := rep.Alerts().GetAlertConfig(ctx, id); err != nil {
			return err
		}
		params := alertParams(ac)
		params["id"] = id
		err := ExecNamed(ctx, rep.DB(), `
		UPDATE alerts_config SET
			name = :name,
			metric = :metric,
			alert_condition = :condition,
			threshold = :threshold,
			severity = :severity,
			enabled = :enabled,
			message_template = :messageTemplate
		WHERE id = :id`, params)
		if err != nil {
			if rep.IsErrUniqueViolation(err) {
				return fmt.Errorf("%w: name %q already exists", gerr.ErrInvalidAlert, ac.Name)
			}
			return fmt.Errorf("can't update alert config: %w", err)
		}
		return nil
	})
}

func (ms *MYSQLStore) DeleteAlertConfig(ctx context.Context, id int) error {
	n, err := ExecNamedAffected(ctx, ms.DB(), `DELETE FROM alerts_config WHERE id = :id`, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("can't delete alert config: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", gerr.ErrAlertNotFound, id)
	}
	return nil
}
