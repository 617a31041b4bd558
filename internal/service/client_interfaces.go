package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/docvault/go-doc-share/models"
)

// ClientSyncService keeps the client's local cache of received shares in step
// with the server. The cache is a read model: the server listing is always
// authoritative, and a refresh replaces the cached snapshot wholesale.
type ClientSyncService interface {
	// RefreshReceivedShares fetches the caller's received shares from the
	// server and swaps them into the local cache. Shares revoked or expired
	// since the last refresh drop out of the cache here.
	RefreshReceivedShares(ctx context.Context, userID int64) error

	// CachedReceivedShares returns the local snapshot without touching the
	// network. It may be stale by up to one sync interval.
	CachedReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error)
}

// ClientSyncJob periodically runs a [ClientSyncService] refresh in the
// background.
type ClientSyncJob interface {
	// Start launches the background refresh loop. Calling Start while a job
	// is running restarts it with the new parameters.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop cancels the background loop and blocks until it has exited. Safe
	// to call when the job is not running.
	Stop()
}
