package service

import (
	"context"
	"fmt"

	"github.com/docvault/go-doc-share/internal/adapter"
	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/store"
	"github.com/docvault/go-doc-share/models"
)

type clientSyncService struct {
	shareCache store.LocalShareRepository
	adapter    adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientSyncService(shareCache store.LocalShareRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		shareCache: shareCache,
		adapter:    serverAdapter,
		logger:     logger,
	}
}

// RefreshReceivedShares pulls the authoritative listing from the server and
// replaces the cached snapshot. On a transport failure the previous snapshot
// stays untouched, so the client degrades to a stale view rather than an
// empty one.
func (s *clientSyncService) RefreshReceivedShares(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	shares, err := s.adapter.ReceivedShares(ctx)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("fetching received shares from server failed")
		return fmt.Errorf("fetching received shares from server failed: %w", err)
	}

	if err := s.shareCache.ReplaceReceivedShares(ctx, userID, shares); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("replacing cached received shares failed")
		return fmt.Errorf("replacing cached received shares failed: %w", err)
	}

	log.Debug().Int64("user_id", userID).Int("count", len(shares)).Msg("received shares cache refreshed")
	return nil
}

func (s *clientSyncService) CachedReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error) {
	shares, err := s.shareCache.GetReceivedShares(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reading cached received shares failed: %w", err)
	}

	return shares, nil
}
