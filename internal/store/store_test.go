package store

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	ms := NewWithDB(context.Background(), sqlx.NewDb(db, "mysql"))
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		ms.Close()
	})
	return ms, mock
}

// timeArg matches a time argument by instant, ignoring location.
type timeArg time.Time

func (a timeArg) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && t.Equal(time.Time(a))
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func TestIsErrorRepeat(t *testing.T) {
	ms := &MYSQLStore{}
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: errDeadlock}))
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: errLockWaitTimeout}))
	assert.False(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: errDupEntry}))
	assert.False(t, ms.IsErrorRepeat(assert.AnError))

	assert.True(t, ms.IsErrUniqueViolation(&mysql.MySQLError{Number: errDupEntry}))
	assert.False(t, ms.IsErrUniqueViolation(assert.AnError))
}

func TestUpsertOrders(t *testing.T) {
	ms, mock := newMockStore(t)

	orders := []entity.Order{
		{
			Id:            1001,
			Total:         decimal.NewFromInt(80),
			Subtotal:      decimal.NewFromInt(75),
			PaymentStatus: entity.PaymentStatusPaid,
			CreatedAt:     "2026-02-20T10:00:00-0300",
			LandingURL:    "https://provinciareal.com.br/?utm_campaign=verao",
			BillingName:   "Ana",
			UTM:           entity.UTM{Campaign: "verao"},
			Products: []entity.LineItem{
				{Name: "Pote 680g", Price: decimal.NewFromInt(80), Quantity: 1},
			},
		},
		{
			Id:            1002,
			PaymentStatus: entity.PaymentStatusPending,
			CreatedAt:     "not a date",
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO orders_cache")).
		WithArgs(
			int64(1001), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "paid", "",
			"Ana", "", "", "https://provinciareal.com.br/?utm_campaign=verao",
			"", "", "verao", "", "",
			`[{"name":"Pote 680g","price":"80","quantity":1}]`,
			timeArg(time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC)),
		).
		WillReturnResult(sqlmock.NewResult(1001, 1))
	mock.ExpectCommit()

	n, err := ms.Orders().UpsertOrders(context.Background(), orders)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpsertOrdersRollsBackOnError(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO orders_cache")).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := ms.Orders().UpsertOrders(context.Background(), []entity.Order{
		{Id: 1, CreatedAt: "2026-02-20 10:00:00"},
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetOrdersByRange(t *testing.T) {
	ms, mock := newMockStore(t)

	from := time.Date(2026, 2, 20, 0, 0, 0, 0, time.FixedZone("UTC-3", -3*3600))
	to := from.Add(24*time.Hour - time.Millisecond)

	cols := []string{
		"id", "total", "subtotal", "shipping_cost_owner", "payment_status", "shipping_status",
		"billing_name", "contact_phone", "billing_phone", "landing_url",
		"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
		"products", "order_created_at",
	}
	mock.ExpectQuery(q("FROM orders_cache")).
		WithArgs(timeArg(from), timeArg(to)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			1001, "80.00", "75.00", "0.00", "paid", "shipped",
			"Ana", "11999990000", "", nil,
			"facebook", "cpc", "verao|123", "", "",
			[]byte(`[{"name":"Kit 2 Potes","price":"150","quantity":2}]`),
			time.Date(2026, 2, 20, 13, 0, 0, 0, time.UTC),
		))

	orders, err := ms.Orders().GetOrdersByRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, 1001, o.Id)
	assert.True(t, o.IsPaid())
	assert.Equal(t, "2026-02-20T13:00:00Z", o.CreatedAt)
	assert.Equal(t, "verao|123", o.UTM.Campaign)
	assert.Equal(t, "facebook", o.UTM.Source)
	assert.Empty(t, o.LandingURL)
	require.Len(t, o.Products, 1)
	assert.Equal(t, 2, o.Products[0].Quantity)
	assert.True(t, decimal.NewFromInt(80).Equal(o.Total))
}

func TestUpsertCampaignsRetriesDeadlock(t *testing.T) {
	ms, mock := newMockStore(t)

	c := entity.Campaign{
		CampaignId:   "c1",
		CampaignName: "Verão",
		Spend:        decimal.RequireFromString("12.50"),
		DateStart:    time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		DateStop:     time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO meta_campaigns_cache")).
		WillReturnError(&mysql.MySQLError{Number: errDeadlock, Message: "Deadlock found"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO meta_campaigns_cache")).
		WithArgs("c1", "2026-02-20", "2026-02-20", "Verão", "", "",
			sqlmock.AnyArg(), int64(0), int64(0), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := ms.Campaigns().UpsertCampaigns(context.Background(), []entity.Campaign{c})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGetCampaignsByRange(t *testing.T) {
	ms, mock := newMockStore(t)

	day := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	cols := []string{
		"campaign_id", "campaign_name", "account_id", "account_name",
		"spend", "impressions", "clicks", "cpc", "ctr", "cpm", "date_start", "date_stop",
	}
	mock.ExpectQuery(q("FROM meta_campaigns_cache")).
		WithArgs("2026-02-20", "2026-02-21").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("c1", "Verão", "act", "Provincia", "10.00", 1000, 20, "0.50", "2.00", "10.00", day, day).
			AddRow("c1", "Verão", "act", "Provincia", "5.00", 500, 10, "0.50", "2.00", "10.00", day.AddDate(0, 0, 1), day.AddDate(0, 0, 1)))

	got, err := ms.Campaigns().GetCampaignsByRange(context.Background(), day.Add(3*time.Hour), day.AddDate(0, 0, 1).Add(3*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Verão", got[0].CampaignName)
	assert.Equal(t, int64(1000), got[0].Impressions)
	assert.True(t, decimal.NewFromInt(5).Equal(got[1].Spend))
}

func TestGetRate(t *testing.T) {
	ms, mock := newMockStore(t)
	day := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("FROM exchange_rates WHERE rate_date = ?")).
		WithArgs("2026-02-20").
		WillReturnRows(sqlmock.NewRows([]string{"rate_date", "usd_brl", "source", "updated_at"}))

	r, err := ms.Rates().GetRate(context.Background(), day)
	require.NoError(t, err)
	assert.Nil(t, r)

	mock.ExpectQuery(q("FROM exchange_rates WHERE rate_date = ?")).
		WithArgs("2026-02-20").
		WillReturnRows(sqlmock.NewRows([]string{"rate_date", "usd_brl", "source", "updated_at"}).
			AddRow(day, "5.2510", "awesomeapi", day))

	r, err = ms.Rates().GetRate(context.Background(), day)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "5.251", r.UsdBrl.String())
	assert.Equal(t, entity.RateSourceAPI, r.Source)
}

func TestSaveRate(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(q("INSERT INTO exchange_rates")).
		WithArgs("2026-02-20", sqlmock.AnyArg(), entity.RateSourceAPI).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ms.Rates().SaveRate(context.Background(), &entity.ExchangeRate{
		Date:   time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		UsdBrl: decimal.RequireFromString("5.25"),
	})
	assert.NoError(t, err)
}

func TestGetCustomerLifetimeRecords(t *testing.T) {
	ms, mock := newMockStore(t)
	first := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	last := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("FROM customer_ltv_all")).
		WillReturnRows(sqlmock.NewRows([]string{
			"customer_name", "customer_phone", "order_count", "lifetime_revenue", "first_order_at", "last_order_at",
		}).
			AddRow("Ana", "11999990000", 3, "240.00", first, last).
			AddRow("Bia", "", 1, "80.00", first, first))

	recs, err := ms.Retention().GetCustomerLifetimeRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 3, recs[0].OrderCount)
	assert.True(t, decimal.NewFromInt(240).Equal(recs[0].LifetimeRevenue))
	require.NotNil(t, recs[0].LastOrderAt)
	assert.True(t, last.Equal(*recs[0].LastOrderAt))
}

var alertCols = []string{
	"id", "name", "metric", "alert_condition", "threshold", "severity", "enabled", "message_template", "created_at", "updated_at",
}

func TestAlertConfigCRUD(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	ins := &entity.AlertConfigInsert{
		Name:            "ROAS baixo",
		Metric:          "roas",
		Condition:       entity.AlertConditionLessThan,
		Threshold:       decimal.NewFromInt(2),
		Severity:        entity.AlertSeverityWarning,
		Enabled:         true,
		MessageTemplate: "ROAS {value} abaixo de {threshold}",
	}

	mock.ExpectExec(q("INSERT INTO alerts_config")).
		WithArgs("ROAS baixo", "roas", "less_than", sqlmock.AnyArg(), "warning", true, "ROAS {value} abaixo de {threshold}").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := ms.Alerts().AddAlertConfig(ctx, ins)
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	mock.ExpectQuery(q("FROM alerts_config WHERE enabled = TRUE")).
		WillReturnRows(sqlmock.NewRows(alertCols).
			AddRow(7, "ROAS baixo", "roas", "less_than", "2.0000", "warning", true, "", now, now))

	acs, err := ms.Alerts().ListAlertConfigs(ctx, true)
	require.NoError(t, err)
	require.Len(t, acs, 1)
	assert.Equal(t, entity.AlertConditionLessThan, acs[0].Condition)
	assert.True(t, decimal.NewFromInt(2).Equal(acs[0].Threshold))

	mock.ExpectBegin()
	mock.ExpectQuery(q("FROM alerts_config WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(alertCols).
			AddRow(7, "ROAS baixo", "roas", "less_than", "2.0000", "warning", true, "", now, now))
	mock.ExpectExec(q("UPDATE alerts_config SET")).
		WithArgs("ROAS baixo", "roas", "less_than", sqlmock.AnyArg(), "warning", true, "ROAS {value} abaixo de {threshold}", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, ms.Alerts().UpdateAlertConfig(ctx, 7, ins))

	mock.ExpectExec(q("DELETE FROM alerts_config WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ms.Alerts().DeleteAlertConfig(ctx, 7))
}

func TestAlertConfigNotFound(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(q("FROM alerts_config WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(alertCols))

	_, err := ms.Alerts().GetAlertConfig(ctx, 9)
	assert.ErrorIs(t, err, gerr.ErrAlertNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(q("FROM alerts_config WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(alertCols))
	mock.ExpectRollback()

	err = ms.Alerts().UpdateAlertConfig(ctx, 9, &entity.AlertConfigInsert{Name: "x"})
	assert.ErrorIs(t, err, gerr.ErrAlertNotFound)

	mock.ExpectExec(q("DELETE FROM alerts_config WHERE id = ?")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = ms.Alerts().DeleteAlertConfig(ctx, 9)
	assert.ErrorIs(t, err, gerr.ErrAlertNotFound)
}

func TestAlertConfigDuplicateName(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	dup := &mysql.MySQLError{Number: errDupEntry, Message: "Duplicate entry 'ROAS baixo' for key 'uq_alerts_config_name'"}
	ins := &entity.AlertConfigInsert{
		Name:      "ROAS baixo",
		Metric:    "roas",
		Condition: entity.AlertConditionLessThan,
		Threshold: decimal.NewFromInt(2),
		Severity:  entity.AlertSeverityWarning,
		Enabled:   true,
	}

	mock.ExpectExec(q("INSERT INTO alerts_config")).WillReturnError(dup)

	_, err := ms.Alerts().AddAlertConfig(ctx, ins)
	assert.ErrorIs(t, err, gerr.ErrInvalidAlert)

	mock.ExpectBegin()
	mock.ExpectQuery(q("FROM alerts_config WHERE id = ?")).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(alertCols).
			AddRow(8, "CPA alto", "cpa", "greater_than", "50.0000", "warning", true, "", now, now))
	mock.ExpectExec(q("UPDATE alerts_config SET")).WillReturnError(dup)
	mock.ExpectRollback()

	err = ms.Alerts().UpdateAlertConfig(ctx, 8, ins)
	assert.ErrorIs(t, err, gerr.ErrInvalidAlert)
}

func TestSyncLog(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()
	start := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	sl := &entity.SyncLog{
		Id:        "0b5a3c4e-8f51-4bb0-9a53-6d1b1c7b2d11",
		Kind:      entity.SyncKindOrders,
		Status:    entity.SyncStatusRunning,
		RangeFrom: start.AddDate(0, 0, -2),
		RangeTo:   start,
		StartedAt: start,
	}

	mock.ExpectExec(q("INSERT INTO sync_log")).
		WithArgs(sl.Id, "orders", "running", timeArg(sl.RangeFrom), timeArg(sl.RangeTo), timeArg(start)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, ms.SyncLog().AddSyncLog(ctx, sl))

	sl.Status = entity.SyncStatusSuccess
	sl.FinishedAt.Time, sl.FinishedAt.Valid = start.Add(time.Second), true
	sl.Fetched, sl.Upserted = 4, 4

	mock.ExpectExec(q("UPDATE sync_log SET")).
		WithArgs("success", timeArg(start.Add(time.Second)), int64(4), int64(4), nil, sl.Id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, ms.SyncLog().FinishSyncLog(ctx, sl))

	mock.ExpectQuery(q("FROM sync_log")).
		WithArgs("campaigns").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "kind", "status", "range_from", "range_to", "started_at", "finished_at", "fetched", "upserted", "error_message",
		}))
	last, err := ms.SyncLog().GetLastSyncLog(ctx, entity.SyncKindCampaigns)
	require.NoError(t, err)
	assert.Nil(t, last)
}
