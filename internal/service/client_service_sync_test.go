package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/mock"
	"github.com/docvault/go-doc-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRefreshReceivedShares_ReplacesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mock.NewMockLocalShareRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSyncService(mockCache, mockAdapter, logger.Nop())
	ctx := context.Background()

	serverSnapshot := []models.ReceivedShare{
		{ShareToken: models.ShareToken{ID: "share-1"}, OwnerName: "Alice"},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().ReceivedShares(ctx).Return(serverSnapshot, nil),
		mockCache.EXPECT().ReplaceReceivedShares(ctx, int64(2), serverSnapshot).Return(nil),
	)

	err := svc.RefreshReceivedShares(ctx, 2)
	require.NoError(t, err)
}

func TestRefreshReceivedShares_ServerDown_CacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mock.NewMockLocalShareRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSyncService(mockCache, mockAdapter, logger.Nop())
	ctx := context.Background()

	// No ReplaceReceivedShares expectation: the stale snapshot must survive
	// a failed fetch.
	mockAdapter.EXPECT().ReceivedShares(ctx).Return(nil, errors.New("connection refused"))

	err := svc.RefreshReceivedShares(ctx, 2)
	require.Error(t, err)
}

func TestCachedReceivedShares_ReadsLocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mock.NewMockLocalShareRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSyncService(mockCache, mockAdapter, logger.Nop())
	ctx := context.Background()

	mockCache.EXPECT().GetReceivedShares(ctx, int64(2)).Return([]models.ReceivedShare{
		{ShareToken: models.ShareToken{ID: "share-1"}},
	}, nil)

	shares, err := svc.CachedReceivedShares(ctx, 2)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "share-1", shares[0].ID)
}

// countingSyncService counts refresh calls for the job tests.
type countingSyncService struct {
	calls atomic.Int64
}

func (c *countingSyncService) RefreshReceivedShares(_ context.Context, _ int64) error {
	c.calls.Add(1)
	return nil
}

func (c *countingSyncService) CachedReceivedShares(_ context.Context, _ int64) ([]models.ReceivedShare, error) {
	return nil, nil
}

func TestClientSyncJob_RunsPeriodically(t *testing.T) {
	counter := &countingSyncService{}
	job := NewClientSyncJob(counter)

	job.Start(context.Background(), 2, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return counter.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	job.Stop()
}

func TestClientSyncJob_StopHaltsRefreshes(t *testing.T) {
	counter := &countingSyncService{}
	job := NewClientSyncJob(counter)

	job.Start(context.Background(), 2, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return counter.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	job.Stop()
	after := counter.calls.Load()

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, after, counter.calls.Load())
}

func TestClientSyncJob_StopWithoutStart(t *testing.T) {
	job := NewClientSyncJob(&countingSyncService{})

	// Must not panic or block.
	job.Stop()
	job.Stop()
}
