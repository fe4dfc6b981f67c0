package datasync

import (
	"context"
	"testing"
	"time"

	"github.com/provinciareal/dashboard/internal/dependency/mocks"
	"github.com/provinciareal/dashboard/internal/entity"
	gerr "github.com/provinciareal/dashboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now  = time.Date(2026, 2, 20, 15, 0, 0, 0, time.UTC)
	from = now.AddDate(0, 0, -2)
)

type fixture struct {
	orders        *mocks.OrderSource
	campaigns     *mocks.CampaignSource
	orderStore    *mocks.Orders
	campaignStore *mocks.Campaigns
	syncLog       *mocks.SyncLog
	w             *Worker
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		orders:        mocks.NewOrderSource(t),
		campaigns:     mocks.NewCampaignSource(t),
		orderStore:    mocks.NewOrders(t),
		campaignStore: mocks.NewCampaigns(t),
		syncLog:       mocks.NewSyncLog(t),
	}
	f.w = New(&Config{WorkerInterval: time.Hour, LookbackDays: 2},
		f.orders, f.campaigns, f.orderStore, f.campaignStore, f.syncLog)
	f.w.now = func() time.Time { return now }
	ids := []string{"run-1", "run-2", "run-3", "run-4"}
	f.w.newId = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	return f
}

func TestRunOnceSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	orders := []entity.Order{{Id: 1}, {Id: 2}}
	campaigns := []entity.Campaign{{CampaignId: "c1"}}

	f.syncLog.EXPECT().AddSyncLog(mock.Anything, mock.MatchedBy(func(sl *entity.SyncLog) bool {
		return sl.Status == entity.SyncStatusRunning && sl.RangeFrom.Equal(from) && sl.RangeTo.Equal(now)
	})).Return(nil).Twice()
	f.orders.EXPECT().FetchOrders(mock.Anything, from, now).Return(orders, nil).Once()
	f.orderStore.EXPECT().UpsertOrders(mock.Anything, orders).Return(2, nil).Once()
	f.campaigns.EXPECT().FetchCampaigns(mock.Anything, from, now).Return(campaigns, nil).Once()
	f.campaignStore.EXPECT().UpsertCampaigns(mock.Anything, campaigns).Return(1, nil).Once()
	f.syncLog.EXPECT().FinishSyncLog(mock.Anything, mock.MatchedBy(func(sl *entity.SyncLog) bool {
		return sl.Status == entity.SyncStatusSuccess && sl.FinishedAt.Valid && !sl.Error.Valid
	})).Return(nil).Twice()

	res, err := f.w.RunOnce(ctx, from, now)
	require.NoError(t, err)
	require.NotNil(t, res.Orders)
	require.NotNil(t, res.Campaigns)

	assert.Equal(t, &KindResult{RunId: "run-1", Kind: entity.SyncKindOrders, Status: entity.SyncStatusSuccess, Fetched: 2, Upserted: 2}, res.Orders)
	assert.Equal(t, &KindResult{RunId: "run-2", Kind: entity.SyncKindCampaigns, Status: entity.SyncStatusSuccess, Fetched: 1, Upserted: 1}, res.Campaigns)
}

func TestRunOnceRecordsSourceFailure(t *testing.T) {
	f := newFixture(t)

	f.syncLog.EXPECT().AddSyncLog(mock.Anything, mock.Anything).Return(assert.AnError).Twice()
	f.orders.EXPECT().FetchOrders(mock.Anything, from, now).Return(nil, assert.AnError).Once()
	f.campaigns.EXPECT().FetchCampaigns(mock.Anything, from, now).Return(nil, nil).Once()
	f.campaignStore.EXPECT().UpsertCampaigns(mock.Anything, []entity.Campaign(nil)).Return(0, nil).Once()
	f.syncLog.EXPECT().FinishSyncLog(mock.Anything, mock.MatchedBy(func(sl *entity.SyncLog) bool {
		return sl.Kind == entity.SyncKindOrders && sl.Status == entity.SyncStatusFailed && sl.Error.Valid
	})).Return(nil).Once()
	f.syncLog.EXPECT().FinishSyncLog(mock.Anything, mock.MatchedBy(func(sl *entity.SyncLog) bool {
		return sl.Kind == entity.SyncKindCampaigns && sl.Status == entity.SyncStatusSuccess
	})).Return(nil).Once()

	res, err := f.w.RunOnce(context.Background(), from, now)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusFailed, res.Orders.Status)
	assert.Contains(t, res.Orders.Error, "can't fetch orders")
	assert.Equal(t, entity.SyncStatusSuccess, res.Campaigns.Status)
}

func TestRunOnceSkipsUnconfiguredSource(t *testing.T) {
	syncLog := mocks.NewSyncLog(t)
	orders := mocks.NewOrderSource(t)
	orderStore := mocks.NewOrders(t)
	w := New(nil, orders, nil, orderStore, nil, syncLog)

	syncLog.EXPECT().AddSyncLog(mock.Anything, mock.Anything).Return(nil).Once()
	orders.EXPECT().FetchOrders(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	orderStore.EXPECT().UpsertOrders(mock.Anything, mock.Anything).Return(0, nil).Once()
	syncLog.EXPECT().FinishSyncLog(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := w.RunOnce(context.Background(), from, now)
	require.NoError(t, err)
	assert.NotNil(t, res.Orders)
	assert.Nil(t, res.Campaigns)
}

func TestRunOnceRejectsConcurrentRun(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	started := make(chan struct{})

	f.syncLog.EXPECT().AddSyncLog(mock.Anything, mock.Anything).Return(nil)
	f.syncLog.EXPECT().FinishSyncLog(mock.Anything, mock.Anything).Return(nil)
	f.orders.EXPECT().FetchOrders(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time, time.Time) ([]entity.Order, error) {
			close(started)
			<-release
			return nil, nil
		}).Once()
	f.orderStore.EXPECT().UpsertOrders(mock.Anything, mock.Anything).Return(0, nil).Once()
	f.campaigns.EXPECT().FetchCampaigns(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	f.campaignStore.EXPECT().UpsertCampaigns(mock.Anything, mock.Anything).Return(0, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.w.RunOnce(context.Background(), from, now)
		done <- err
	}()
	<-started

	_, err := f.w.RunOnce(context.Background(), from, now)
	assert.ErrorIs(t, err, gerr.ErrSyncInProgress)

	close(release)
	assert.NoError(t, <-done)
}

func TestWindow(t *testing.T) {
	f := newFixture(t)
	gotFrom, gotTo := f.w.Window()
	assert.Equal(t, from, gotFrom)
	assert.Equal(t, now, gotTo)
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)
	ran := make(chan struct{})

	f.syncLog.EXPECT().AddSyncLog(mock.Anything, mock.Anything).Return(nil)
	f.syncLog.EXPECT().FinishSyncLog(mock.Anything, mock.Anything).Return(nil)
	f.orders.EXPECT().FetchOrders(mock.Anything, from, now).Return(nil, nil).Once()
	f.orderStore.EXPECT().UpsertOrders(mock.Anything, mock.Anything).Return(0, nil).Once()
	f.campaigns.EXPECT().FetchCampaigns(mock.Anything, from, now).Return(nil, nil).Once()
	f.campaignStore.EXPECT().UpsertCampaigns(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []entity.Campaign) (int, error) {
			close(ran)
			return 0, nil
		}).Once()

	require.NoError(t, f.w.Start(context.Background()))
	assert.Error(t, f.w.Start(context.Background()))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("first sync did not run")
	}

	require.NoError(t, f.w.Stop())
	assert.Error(t, f.w.Stop())
}
