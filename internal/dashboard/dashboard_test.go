package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/provinciareal/dashboard/internal/campaignkey"
	"github.com/provinciareal/dashboard/internal/costcalc"
	"github.com/provinciareal/dashboard/internal/dependency/mocks"
	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/provinciareal/dashboard/internal/metrics"
	"github.com/provinciareal/dashboard/internal/timezone"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 18:00 in São Paulo.
var testNow = time.Date(2026, 2, 20, 21, 0, 0, 0, time.UTC)

type fixture struct {
	orders    *mocks.Orders
	campaigns *mocks.Campaigns
	retention *mocks.Retention
	rates     *mocks.RatesService
	alerts    *mocks.Alerts
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	tz := timezone.New(timezone.BR).WithClock(func() time.Time { return testNow })
	engine := metrics.NewEngine(tz, costcalc.New(costcalc.DefaultConfig()),
		campaignkey.New(campaignkey.PolicyFolded), metrics.DefaultTargets(), timezone.BR)

	f := &fixture{
		orders:    mocks.NewOrders(t),
		campaigns: mocks.NewCampaigns(t),
		retention: mocks.NewRetention(t),
		rates:     mocks.NewRatesService(t),
		alerts:    mocks.NewAlerts(t),
	}
	f.svc = New(engine, tz, timezone.BR, f.orders, f.campaigns, f.retention, f.rates, f.alerts)
	return f
}

func (f *fixture) expectRates(rate string) {
	r := decimal.RequireFromString(rate)
	f.rates.EXPECT().Rate(mock.Anything, mock.Anything).Return(r).Maybe()
	f.rates.EXPECT().ConvertToLocal(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, amount decimal.Decimal, _ time.Time) decimal.Decimal {
			return amount.Mul(r)
		}).Maybe()
}

func order(id int, total, createdAt, campaign string) entity.Order {
	return entity.Order{
		Id:            id,
		Total:         decimal.RequireFromString(total),
		PaymentStatus: entity.PaymentStatusPaid,
		CreatedAt:     createdAt,
		UTM:           entity.UTM{Campaign: campaign, Source: "facebook"},
		Products:      []entity.LineItem{{Name: "Pote 680g", Price: decimal.RequireFromString(total), Quantity: 1}},
	}
}

func brDay(t *testing.T, day string) timezone.Range {
	t.Helper()
	r, err := timezone.DateRange(day, day, timezone.BR)
	require.NoError(t, err)
	return r
}

func TestMetrics(t *testing.T) {
	f := newFixture(t)
	day := brDay(t, "2026-02-20")

	f.orders.EXPECT().GetOrdersByRange(mock.Anything, day.Start.Add(-fetchMargin), day.End.Add(fetchMargin)).
		Return([]entity.Order{
			order(1, "150", "2026-02-20T10:00:00-0300", "Summer|123"),
			order(2, "99", "2026-02-21T10:00:00-0300", "Summer|123"),
		}, nil).Once()
	f.campaigns.EXPECT().GetCampaignsByRange(mock.Anything, day.Start, day.End).
		Return([]entity.Campaign{
			{CampaignId: "c1", CampaignName: "Summer", Spend: decimal.NewFromInt(12), DateStart: day.Start, DateStop: day.Start},
			{CampaignId: "c1", CampaignName: "Summer", Spend: decimal.NewFromInt(8), DateStart: day.Start, DateStop: day.Start},
		}, nil).Once()
	f.retention.EXPECT().GetCustomerLifetimeRecords(mock.Anything).Return(nil, nil).Once()
	f.expectRates("5")

	m, err := f.svc.Metrics(context.Background(), Query{From: "2026-02-20", Timezone: "br"})
	require.NoError(t, err)

	assert.Equal(t, "2026-02-20", m.Period.Label)
	assert.Equal(t, string(timezone.BR), m.Timezone)
	assert.Equal(t, 1, m.Orders.Paid)
	assert.True(t, decimal.NewFromInt(150).Equal(m.Revenue.Paid))
	assert.True(t, decimal.NewFromInt(100).Equal(m.Costs.AdSpend), m.Costs.AdSpend.String())
	require.Len(t, m.Campaigns, 1)
	assert.Equal(t, "Summer", m.Campaigns[0].CampaignName)
	assert.True(t, decimal.NewFromInt(100).Equal(m.Campaigns[0].Spend))
}

func TestMetricsResolvesOnlyPeriodStartRate(t *testing.T) {
	f := newFixture(t)
	r, err := timezone.DateRange("2026-01-22", "2026-02-20", timezone.BR)
	require.NoError(t, err)

	f.orders.EXPECT().GetOrdersByRange(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.campaigns.EXPECT().GetCampaignsByRange(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.retention.EXPECT().GetCustomerLifetimeRecords(mock.Anything).Return(nil, nil).Once()
	// any other date fails as an unexpected call
	f.rates.EXPECT().Rate(mock.Anything, mock.MatchedBy(func(d time.Time) bool {
		return d.Equal(r.Start)
	})).Return(decimal.NewFromInt(5))
	f.rates.EXPECT().ConvertToLocal(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero).Maybe()

	_, err = f.svc.Metrics(context.Background(), Query{Preset: PresetLast30})
	require.NoError(t, err)
	f.rates.AssertNotCalled(t, "RateRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestMetricsSurvivesCollaboratorFailures(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetOrdersByRange(mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	f.campaigns.EXPECT().GetCampaignsByRange(mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	f.retention.EXPECT().GetCustomerLifetimeRecords(mock.Anything).Return(nil, assert.AnError).Once()
	f.expectRates("4.97")

	m, err := f.svc.Realtime(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Hoje", m.Period.Label)
	assert.Equal(t, 0, m.Orders.Total)
	assert.True(t, m.Costs.AdSpend.IsZero())
	assert.Empty(t, m.Campaigns)
}

func TestMetricsRejectsBadQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Metrics(ctx, Query{Timezone: "NY"})
	assert.ErrorIs(t, err, gerr.ErrInvalidTimezone)

	_, err = f.svc.Metrics(ctx, Query{From: "2026-02-21", To: "2026-02-20"})
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)

	_, err = f.svc.Metrics(ctx, Query{To: "2026-02-20"})
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)

	_, err = f.svc.Metrics(ctx, Query{Preset: "forever"})
	assert.ErrorIs(t, err, gerr.ErrInvalidPeriod)
}

func TestResolvePresets(t *testing.T) {
	f := newFixture(t)
	br := timezone.BR.Location()

	tests := []struct {
		preset string
		label  string
		from   time.Time
	}{
		{PresetToday, "Hoje", time.Date(2026, 2, 20, 0, 0, 0, 0, br)},
		{PresetYesterday, "Ontem", time.Date(2026, 2, 19, 0, 0, 0, 0, br)},
		{PresetLast7, "Últimos 7 dias", time.Date(2026, 2, 14, 0, 0, 0, 0, br)},
		{PresetLast30, "Últimos 30 dias", time.Date(2026, 1, 22, 0, 0, 0, 0, br)},
		{PresetMonth, "Este mês", time.Date(2026, 2, 1, 0, 0, 0, 0, br)},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			p, zone, err := f.svc.resolve(Query{Preset: tt.preset})
			require.NoError(t, err)
			assert.Equal(t, timezone.BR, zone)
			assert.Equal(t, tt.label, p.Label)
			assert.True(t, tt.from.Equal(p.From), "from %s", p.From)
			if tt.preset == PresetYesterday {
				assert.True(t, time.Date(2026, 2, 19, 23, 59, 59, int(999*time.Millisecond), br).Equal(p.To))
			} else {
				assert.True(t, time.Date(2026, 2, 20, 23, 59, 59, int(999*time.Millisecond), br).Equal(p.To))
			}
		})
	}
}

func TestResolveInLosAngeles(t *testing.T) {
	f := newFixture(t)

	p, zone, err := f.svc.resolve(Query{Timezone: "LA"})
	require.NoError(t, err)
	assert.Equal(t, timezone.LA, zone)
	// 21:00 UTC is 13:00 in Los Angeles, still the 20th.
	assert.True(t, time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC).Equal(p.From))
}

func TestUTM(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetOrdersByRange(mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.Order{
			order(1, "150", "2026-02-20T10:00:00-0300", "Summer%7C123"),
			order(2, "80", "2026-02-20T11:00:00-0300", ""),
			order(3, "99", "2026-02-18T10:00:00-0300", "Old"),
		}, nil).Once()

	ua, err := f.svc.UTM(context.Background(), Query{Preset: PresetToday})
	require.NoError(t, err)
	require.Len(t, ua.Campaigns, 2)
	assert.Equal(t, "Summer", ua.Campaigns[0].Value)
	assert.Equal(t, entity.DirectLabel, ua.Campaigns[1].Value)
	require.Len(t, ua.Sources, 1)
	assert.Equal(t, 2, ua.Sources[0].Count)
}

func TestActiveAlerts(t *testing.T) {
	f := newFixture(t)

	f.orders.EXPECT().GetOrdersByRange(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.campaigns.EXPECT().GetCampaignsByRange(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.retention.EXPECT().GetCustomerLifetimeRecords(mock.Anything).Return(nil, nil).Once()
	f.expectRates("5")
	f.alerts.EXPECT().ListAlertConfigs(mock.Anything, true).Return([]entity.AlertConfig{
		{Id: 1, AlertConfigInsert: entity.AlertConfigInsert{
			Name:      "Sem vendas",
			Metric:    "paid_orders",
			Condition: entity.AlertConditionEquals,
			Threshold: decimal.Zero,
			Severity:  entity.AlertSeverityCritical,
			Enabled:   true,
		}},
	}, nil).Once()

	r, err := f.svc.ActiveAlerts(context.Background(), "BR")
	require.NoError(t, err)
	require.Equal(t, 1, r.Count)
	assert.Equal(t, "Sem vendas", r.Alerts[0].Name)
}

func TestAggregateCampaigns(t *testing.T) {
	d1 := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	got := AggregateCampaigns([]entity.Campaign{
		{CampaignId: "c1", CampaignName: "Verao", Spend: decimal.NewFromInt(10), Impressions: 1000, Clicks: 10, DateStart: d1, DateStop: d1},
		{CampaignId: "c2", CampaignName: "Kits", Spend: decimal.NewFromInt(4), Impressions: 400, Clicks: 0, DateStart: d1, DateStop: d1},
		{CampaignId: "c1", CampaignName: "Verão", Spend: decimal.NewFromInt(30), Impressions: 3000, Clicks: 30, DateStart: d2, DateStop: d2},
	})

	require.Len(t, got, 2)
	c1 := got[0]
	assert.Equal(t, "Verão", c1.CampaignName)
	assert.True(t, decimal.NewFromInt(40).Equal(c1.Spend))
	assert.Equal(t, int64(4000), c1.Impressions)
	assert.Equal(t, int64(40), c1.Clicks)
	assert.True(t, decimal.NewFromInt(1).Equal(c1.CPC))
	assert.True(t, decimal.NewFromInt(1).Equal(c1.CTR))
	assert.True(t, decimal.NewFromInt(10).Equal(c1.CPM))
	assert.Equal(t, d1, c1.DateStart)
	assert.Equal(t, d2, c1.DateStop)

	assert.True(t, got[1].CPC.IsZero())
}
