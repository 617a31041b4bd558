package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/models"
)

// vaultKeyRepository is the PostgreSQL-backed implementation of
// [VaultKeyRepository]. It persists wrapped vault key material against the
// "user_vault_keys" table. Everything stored here is either public (salts,
// KDF parameters) or ciphertext the server cannot open.
type vaultKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultKeyRepository constructs a [VaultKeyRepository] backed by the
// provided database connection and logger.
func NewVaultKeyRepository(db *DB, logger *logger.Logger) VaultKeyRepository {
	logger.Debug().Msg("creating vault key repository")
	return &vaultKeyRepository{
		db:     db,
		logger: logger,
	}
}

// SaveVaultKeys stores or replaces the user's wrapped key material. The KDF
// parameters are serialized to JSON so unlock keeps working after the
// application's derivation defaults change.
func (r *vaultKeyRepository) SaveVaultKeys(ctx context.Context, material models.VaultKeyMaterial) error {
	log := logger.FromContext(ctx)

	kdfParams, err := json.Marshal(material.KDFParams)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultKeyRepository.SaveVaultKeys").
			Int64("user_id", material.UserID).
			Msg("failed to marshal kdf params")
		return fmt.Errorf("failed to marshal kdf params: %w", err)
	}

	_, err = r.db.ExecContext(ctx, saveVaultKeys,
		material.UserID,
		material.KDFSalt,
		kdfParams,
		material.WrappedMasterKey,
		material.WrappedMasterKeyRecovery,
		material.RecoveryKeySalt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultKeyRepository.SaveVaultKeys").
			Int64("user_id", material.UserID).
			Msg("failed to save vault key material")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetVaultKeys retrieves the user's wrapped key material.
//
// Returns [ErrVaultKeysNotFound] when the user has not set up a vault yet.
func (r *vaultKeyRepository) GetVaultKeys(ctx context.Context, userID int64) (models.VaultKeyMaterial, error) {
	log := logger.FromContext(ctx)

	var material models.VaultKeyMaterial
	var kdfParams []byte

	row := r.db.QueryRowContext(ctx, getVaultKeys, userID)
	if err := row.Scan(
		&material.UserID,
		&material.KDFSalt,
		&kdfParams,
		&material.WrappedMasterKey,
		&material.WrappedMasterKeyRecovery,
		&material.RecoveryKeySalt,
		&material.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultKeyMaterial{}, ErrVaultKeysNotFound
		}
		log.Err(err).
			Str("func", "*vaultKeyRepository.GetVaultKeys").
			Int64("user_id", userID).
			Msg("failed to scan vault key material")
		return models.VaultKeyMaterial{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(kdfParams, &material.KDFParams); err != nil {
		log.Err(err).
			Str("func", "*vaultKeyRepository.GetVaultKeys").
			Int64("user_id", userID).
			Msg("failed to unmarshal kdf params")
		return models.VaultKeyMaterial{}, fmt.Errorf("failed to unmarshal kdf params: %w", err)
	}

	return material, nil
}
