package store

import (
	"context"

	"github.com/docvault/go-doc-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalShareRepository is the client-side cache of shares received from the
// server. The cache holds metadata and wrapped keys only, never plaintext;
// it lets the client render its "shared with me" view between syncs.
type LocalShareRepository interface {
	// ReplaceReceivedShares atomically swaps the cached listing for userID
	// with the given server snapshot. Shares revoked or expired since the
	// previous sync disappear from the cache here.
	ReplaceReceivedShares(ctx context.Context, userID int64, shares []models.ReceivedShare) error
	// GetReceivedShares returns the cached listing for userID.
	GetReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error)
}
