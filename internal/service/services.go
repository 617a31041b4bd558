package service

import (
	"github.com/docvault/go-doc-share/internal/config"
	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/store"
)

type Services struct {
	AuthService     AuthService
	ShareService    ShareService
	VaultKeyService VaultKeyService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		ShareService: NewShareService(
			storages.ShareTokenRepository,
			storages.DocumentRepository,
			storages.TrustedPersonRepository,
			storages.BlobStore,
			logger,
		),
		VaultKeyService: NewVaultKeyService(storages.VaultKeyRepository, logger),
	}
}
