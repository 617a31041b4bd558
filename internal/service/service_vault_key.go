package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/store"
	"github.com/docvault/go-doc-share/models"
)

// vaultKeyService is the concrete implementation of [VaultKeyService]. It is
// a thin validation layer over the repository: the material itself is opaque
// ciphertext plus public derivation inputs, so there is nothing else the
// server could meaningfully check.
type vaultKeyService struct {
	vaultKeyRepository store.VaultKeyRepository
	logger             *logger.Logger
}

// NewVaultKeyService constructs a [VaultKeyService] backed by the given
// repository.
func NewVaultKeyService(vaultKeyRepository store.VaultKeyRepository, logger *logger.Logger) VaultKeyService {
	return &vaultKeyService{
		vaultKeyRepository: vaultKeyRepository,
		logger:             logger,
	}
}

// SaveVaultKeys stores or replaces the caller's wrapped key material.
//
// Returns ErrInvalidDataProvided when any required field is empty; partial
// material would leave the user unable to ever unlock their vault.
func (v *vaultKeyService) SaveVaultKeys(ctx context.Context, userID int64, material models.VaultKeyMaterial) error {
	log := logger.FromContext(ctx)

	if material.KDFSalt == "" ||
		material.WrappedMasterKey == "" ||
		material.WrappedMasterKeyRecovery == "" ||
		material.RecoveryKeySalt == "" {
		log.Error().Int64("user_id", userID).Msg("incomplete vault key material")
		return ErrInvalidDataProvided
	}

	material.UserID = userID

	if err := v.vaultKeyRepository.SaveVaultKeys(ctx, material); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("saving vault key material failed")
		return fmt.Errorf("saving vault key material failed: %w", err)
	}

	return nil
}

// GetVaultKeys returns the caller's wrapped key material. A user that has
// not set up a vault yet gets exists=false and no error, so clients can
// branch into the setup flow without parsing failures.
func (v *vaultKeyService) GetVaultKeys(ctx context.Context, userID int64) (models.VaultKeyMaterial, bool, error) {
	log := logger.FromContext(ctx)

	material, err := v.vaultKeyRepository.GetVaultKeys(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrVaultKeysNotFound) {
			return models.VaultKeyMaterial{}, false, nil
		}
		log.Err(err).Int64("user_id", userID).Msg("loading vault key material failed")
		return models.VaultKeyMaterial{}, false, fmt.Errorf("loading vault key material failed: %w", err)
	}

	return material, true, nil
}
