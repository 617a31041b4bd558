package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/models"
)

type localShareRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalShareRepository constructs a [LocalShareRepository] backed by the
// local SQLite database.
func NewLocalShareRepository(db *DB, logger *logger.Logger) LocalShareRepository {
	return &localShareRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceReceivedShares swaps the cached listing for userID with the given
// server snapshot in one transaction, so a reader never observes a
// half-replaced cache.
func (l *localShareRepository) ReplaceReceivedShares(ctx context.Context, userID int64, shares []models.ReceivedShare) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localShareRepository.ReplaceReceivedShares").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCachedShares, userID); err != nil {
		log.Err(err).
			Str("func", "localShareRepository.ReplaceReceivedShares").
			Int64("user_id", userID).
			Msg("failed to clear cached shares")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, share := range shares {
		_, err = tx.ExecContext(ctx, saveCachedShare,
			share.ID,
			userID,
			share.DocumentID,
			share.OwnerID,
			share.OwnerName,
			share.TrustedPersonID,
			share.WrappedDEKForTP,
			share.Permission,
			share.ExpiresAt,
			share.CreatedAt,
			share.Document.Title,
			share.Document.Category,
			share.Document.FileName,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localShareRepository.ReplaceReceivedShares").
				Int64("user_id", userID).
				Str("token_id", share.ID).
				Msg("failed to cache received share")
			return fmt.Errorf("failed to cache received share (token_id=%s): %w", share.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localShareRepository.ReplaceReceivedShares").
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetReceivedShares returns the cached listing for userID, newest first.
func (l *localShareRepository) GetReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getCachedShares, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localShareRepository.GetReceivedShares").
			Int64("user_id", userID).
			Msg("failed to execute query for cached shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.ReceivedShare, 0, 16)

	for rows.Next() {
		var share models.ReceivedShare
		var expiresAt sql.NullTime

		if scanErr := rows.Scan(
			&share.ID,
			&share.DocumentID,
			&share.OwnerID,
			&share.OwnerName,
			&share.TrustedPersonID,
			&share.WrappedDEKForTP,
			&share.Permission,
			&expiresAt,
			&share.CreatedAt,
			&share.Document.Title,
			&share.Document.Category,
			&share.Document.FileName,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localShareRepository.GetReceivedShares").
				Int64("user_id", userID).
				Msg("failed to scan cached share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if expiresAt.Valid {
			share.ExpiresAt = &expiresAt.Time
		}
		share.Document.ID = share.DocumentID

		shares = append(shares, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localShareRepository.GetReceivedShares").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}
