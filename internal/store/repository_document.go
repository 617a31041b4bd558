package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. The sharing flows never mutate documents, so this
// repository is read-only against the "documents" table.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// GetOwned retrieves a document scoped to its owner. A document that exists
// but belongs to another user is reported as [ErrDocumentNotFound]; callers
// cannot distinguish the two cases.
func (r *documentRepository) GetOwned(ctx context.Context, documentID string, ownerID int64) (models.Document, error) {
	return r.scanDocument(ctx, "*documentRepository.GetOwned",
		r.db.QueryRowContext(ctx, getOwnedDocument, documentID, ownerID))
}

// GetByID retrieves a document regardless of ownership. Only used after
// share authorization has already passed.
func (r *documentRepository) GetByID(ctx context.Context, documentID string) (models.Document, error) {
	return r.scanDocument(ctx, "*documentRepository.GetByID",
		r.db.QueryRowContext(ctx, getDocumentByID, documentID))
}

func (r *documentRepository) scanDocument(ctx context.Context, fn string, row *sql.Row) (models.Document, error) {
	log := logger.FromContext(ctx)

	var doc models.Document
	if err := row.Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Title,
		&doc.Category,
		&doc.FileName,
		&doc.FilePath,
		&doc.WrappedDEK,
		&doc.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", fn).Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}
