package store

import (
	"context"
	"fmt"

	"github.com/docvault/go-doc-share/internal/config"
	"github.com/docvault/go-doc-share/internal/logger"
)

// Storages bundles every server-side persistence component for injection
// into the service layer.
type Storages struct {
	UserRepository          UserRepository
	VaultKeyRepository      VaultKeyRepository
	DocumentRepository      DocumentRepository
	TrustedPersonRepository TrustedPersonRepository
	ShareTokenRepository    ShareTokenRepository
	BlobStore               BlobStore
}

// NewStorages wires all repositories onto the shared database connection and
// selects the blob backend: S3 when a bucket is configured, the local
// file-system store otherwise.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Msg("creating storages")

	var blobStore BlobStore
	var err error

	if cfg.Blob.Bucket != "" {
		blobStore, err = NewS3BlobStore(ctx, cfg.Blob, log)
	} else {
		blobStore, err = NewFileBlobStore(cfg.Blob.Dir, log)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store: %w", err)
	}

	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		VaultKeyRepository:      NewVaultKeyRepository(db, log),
		DocumentRepository:      NewDocumentRepository(db, log),
		TrustedPersonRepository: NewTrustedPersonRepository(db, log),
		ShareTokenRepository:    NewShareTokenRepository(db, log),
		BlobStore:               blobStore,
	}, nil
}
