package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/provinciareal/dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Orders interface {
		// UpsertOrders inserts or refreshes cached orders and returns the number of rows written.
		UpsertOrders(ctx context.Context, orders []entity.Order) (int, error)
		// GetOrdersByRange returns cached orders created within [from, to].
		GetOrdersByRange(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	}

	Campaigns interface {
		// UpsertCampaigns inserts or refreshes daily campaign insight rows.
		UpsertCampaigns(ctx context.Context, campaigns []entity.Campaign) (int, error)
		// GetCampaignsByRange returns insight rows whose day lies within [from, to].
		GetCampaignsByRange(ctx context.Context, from, to time.Time) ([]entity.Campaign, error)
	}

	Rates interface {
		// GetRate returns the stored rate for a calendar date, or nil when missing.
		GetRate(ctx context.Context, date time.Time) (*entity.ExchangeRate, error)
		SaveRate(ctx context.Context, rate *entity.ExchangeRate) error
	}

	Retention interface {
		// GetCustomerLifetimeRecords returns one aggregate per paying customer.
		GetCustomerLifetimeRecords(ctx context.Context) ([]entity.CustomerLifetime, error)
	}

	Alerts interface {
		ListAlertConfigs(ctx context.Context, enabledOnly bool) ([]entity.AlertConfig, error)
		GetAlertConfig(ctx context.Context, id int) (*entity.AlertConfig, error)
		AddAlertConfig(ctx context.Context, ac *entity.AlertConfigInsert) (int, error)
		UpdateAlertConfig(ctx context.Context, id int, ac *entity.AlertConfigInsert) error
		DeleteAlertConfig(ctx context.Context, id int) error
	}

	SyncLog interface {
		AddSyncLog(ctx context.Context, sl *entity.SyncLog) error
		FinishSyncLog(ctx context.Context, sl *entity.SyncLog) error
		GetLastSyncLog(ctx context.Context, kind entity.SyncKind) (*entity.SyncLog, error)
	}

	Repository interface {
		Orders() Orders
		Campaigns() Campaigns
		Rates() Rates
		Retention() Retention
		Alerts() Alerts
		SyncLog() SyncLog
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		NamedQuery(query string, arg interface{}) (*sqlx.Rows, error)
		PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// OrderSource fetches orders from the storefront.
	OrderSource interface {
		FetchOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	}

	// CampaignSource fetches campaign insights from the ad platform.
	CampaignSource interface {
		FetchCampaigns(ctx context.Context, from, to time.Time) ([]entity.Campaign, error)
	}

	// RatesService converts ad-platform amounts to local currency. It never fails.
	RatesService interface {
		Rate(ctx context.Context, date time.Time) decimal.Decimal
		ConvertToLocal(ctx context.Context, amount decimal.Decimal, asOf time.Time) decimal.Decimal
		RateRange(ctx context.Context, from, to time.Time) map[string]decimal.Decimal
	}
)
