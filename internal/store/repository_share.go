package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/utils"
	"github.com/docvault/go-doc-share/models"
)

// shareTokenRepository is the PostgreSQL-backed implementation of
// [ShareTokenRepository]. It owns the full share token lifecycle against the
// "document_share_tokens" table.
//
// The table carries a UNIQUE constraint on (document_id, trusted_person_id),
// which makes the upsert the single authoritative write path for grants: two
// concurrent shares of the same document to the same person serialize on the
// constraint instead of producing duplicate rows.
type shareTokenRepository struct {
	logger *logger.Logger
	db     *DB
	uuid   *utils.UUIDGenerator
}

// NewShareTokenRepository constructs a [ShareTokenRepository] backed by the
// provided database connection and logger.
func NewShareTokenRepository(db *DB, logger *logger.Logger) ShareTokenRepository {
	logger.Debug().Msg("creating share token repository")
	return &shareTokenRepository{
		db:     db,
		logger: logger,
		uuid:   utils.NewUUIDGenerator(),
	}
}

// Upsert atomically creates or replaces the grant for the
// (document_id, trusted_person_id) pair. On conflict the existing row is
// overwritten in place: the wrapped DEK, permission and expiry take the new
// values and revoked_at is cleared, so re-sharing after revocation reuses
// the row rather than accumulating history.
//
// Returns the canonical database representation of the resulting token.
func (r *shareTokenRepository) Upsert(ctx context.Context, token models.ShareToken) (models.ShareToken, error) {
	log := logger.FromContext(ctx)

	if token.ID == "" {
		token.ID = r.uuid.Generate()
	}

	row := r.db.QueryRowContext(ctx, upsertShareToken,
		token.ID,
		token.DocumentID,
		token.OwnerID,
		token.TrustedPersonID,
		token.WrappedDEKForTP,
		token.Permission,
		token.ExpiresAt,
	)

	saved, err := scanShareToken(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error().
				Str("func", "*shareTokenRepository.Upsert").
				Str("document_id", token.DocumentID).
				Msg("upsert affected no rows")
			return models.ShareToken{}, ErrShareNotSaved
		}
		log.Err(err).
			Str("func", "*shareTokenRepository.Upsert").
			Str("document_id", token.DocumentID).
			Str("trusted_person_id", token.TrustedPersonID).
			Msg("failed to upsert share token")
		return models.ShareToken{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetByID retrieves a token regardless of its lifecycle state. Callers decide
// what revoked or expired means for them.
func (r *shareTokenRepository) GetByID(ctx context.Context, tokenID string) (models.ShareToken, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getShareTokenByID, tokenID)

	token, err := scanShareToken(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShareToken{}, ErrShareNotFound
		}
		log.Err(err).
			Str("func", "*shareTokenRepository.GetByID").
			Str("token_id", tokenID).
			Msg("failed to scan share token row")
		return models.ShareToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// Revoke stamps revoked_at on a live token owned by ownerID. The WHERE clause
// excludes already-revoked rows, so the first revocation wins and the stored
// timestamp never moves afterwards.
//
// Returns the number of rows updated; zero means the token was already
// revoked, or does not exist for this owner.
func (r *shareTokenRepository) Revoke(ctx context.Context, tokenID string, ownerID int64, revokedAt time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, revokeShareToken, tokenID, ownerID, revokedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*shareTokenRepository.Revoke").
			Str("token_id", tokenID).
			Int64("owner_id", ownerID).
			Msg("failed to execute revoke statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*shareTokenRepository.Revoke").
			Str("token_id", tokenID).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// ListByOwner returns every token issued by ownerID, newest first. Revoked
// and expired tokens are included: the owner's view is an audit surface, not
// an access surface.
func (r *shareTokenRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.ShareToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*shareTokenRepository.ListByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*shareTokenRepository.ListByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for owner share tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]models.ShareToken, 0, 16)

	for rows.Next() {
		token, scanErr := scanShareToken(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*shareTokenRepository.ListByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan share token row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tokens = append(tokens, token)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*shareTokenRepository.ListByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tokens, nil
}

// ListReceived returns every token targeting any of the given trusted
// person records, joined with document metadata and the granting owner's
// display name. Lifecycle state is not filtered: the recipient's listing
// keeps showing revoked and expired grants, and only the file retrieval
// path rejects them.
func (r *shareTokenRepository) ListReceived(ctx context.Context, trustedPersonIDs []string) ([]models.ReceivedShare, error) {
	log := logger.FromContext(ctx)

	if len(trustedPersonIDs) == 0 {
		return []models.ReceivedShare{}, nil
	}

	query, args, err := buildListReceivedQuery(trustedPersonIDs)
	if err != nil {
		log.Err(err).
			Str("func", "*shareTokenRepository.ListReceived").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*shareTokenRepository.ListReceived").
			Int("trusted person ids count", len(trustedPersonIDs)).
			Msg("failed to execute query for received shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.ReceivedShare, 0, 16)

	for rows.Next() {
		var share models.ReceivedShare
		var expiresAt, revokedAt sql.NullTime

		if scanErr := rows.Scan(
			&share.ID,
			&share.DocumentID,
			&share.OwnerID,
			&share.TrustedPersonID,
			&share.WrappedDEKForTP,
			&share.Permission,
			&expiresAt,
			&revokedAt,
			&share.CreatedAt,
			&share.Document.ID,
			&share.Document.Title,
			&share.Document.Category,
			&share.Document.FileName,
			&share.OwnerName,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*shareTokenRepository.ListReceived").
				Msg("failed to scan received share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if expiresAt.Valid {
			share.ExpiresAt = &expiresAt.Time
		}
		if revokedAt.Valid {
			share.RevokedAt = &revokedAt.Time
		}

		shares = append(shares, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*shareTokenRepository.ListReceived").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}

// rowScanner is the subset of *sql.Row and *sql.Rows needed to scan one
// share token row.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanShareToken(row rowScanner) (models.ShareToken, error) {
	var token models.ShareToken
	var expiresAt, revokedAt sql.NullTime

	if err := row.Scan(
		&token.ID,
		&token.DocumentID,
		&token.OwnerID,
		&token.TrustedPersonID,
		&token.WrappedDEKForTP,
		&token.Permission,
		&expiresAt,
		&revokedAt,
		&token.CreatedAt,
	); err != nil {
		return models.ShareToken{}, err
	}

	if expiresAt.Valid {
		token.ExpiresAt = &expiresAt.Time
	}
	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}

	return token, nil
}
