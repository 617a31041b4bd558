package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/models"
)

// trustedPersonRepository is the PostgreSQL-backed implementation of
// [TrustedPersonRepository] against the "trusted_persons" table.
type trustedPersonRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTrustedPersonRepository constructs a [TrustedPersonRepository] backed by
// the provided database connection and logger.
func NewTrustedPersonRepository(db *DB, logger *logger.Logger) TrustedPersonRepository {
	logger.Debug().Msg("creating trusted person repository")
	return &trustedPersonRepository{
		db:     db,
		logger: logger,
	}
}

// GetOwned retrieves a trusted person record scoped to its owner. A record
// belonging to another user is reported as [ErrTrustedPersonNotFound].
//
// Eligibility checks (invitation accepted, active, linked) are the service
// layer's concern; the repository returns the record as stored.
func (r *trustedPersonRepository) GetOwned(ctx context.Context, trustedPersonID string, ownerID int64) (models.TrustedPerson, error) {
	log := logger.FromContext(ctx)

	var person models.TrustedPerson
	var linkedUserID sql.NullInt64

	row := r.db.QueryRowContext(ctx, getOwnedTrustedPerson, trustedPersonID, ownerID)
	if err := row.Scan(
		&person.ID,
		&person.OwnerID,
		&person.Name,
		&person.InvitationStatus,
		&person.Active,
		&linkedUserID,
		&person.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TrustedPerson{}, ErrTrustedPersonNotFound
		}
		log.Err(err).
			Str("func", "*trustedPersonRepository.GetOwned").
			Str("trusted_person_id", trustedPersonID).
			Msg("failed to scan trusted person row")
		return models.TrustedPerson{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if linkedUserID.Valid {
		person.LinkedUserID = &linkedUserID.Int64
	}

	return person, nil
}

// ListLinkedTo returns every trusted person record, across all owners, that
// resolves to the given registered user. The result drives the recipient's
// "shared with me" view: one user may appear in many owners' directories.
func (r *trustedPersonRepository) ListLinkedTo(ctx context.Context, userID int64) ([]models.TrustedPerson, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTrustedPersonsLinkedTo, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*trustedPersonRepository.ListLinkedTo").
			Int64("user_id", userID).
			Msg("failed to execute query for linked trusted persons")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	persons := make([]models.TrustedPerson, 0, 8)

	for rows.Next() {
		var person models.TrustedPerson
		var linkedUserID sql.NullInt64

		if scanErr := rows.Scan(
			&person.ID,
			&person.OwnerID,
			&person.Name,
			&person.InvitationStatus,
			&person.Active,
			&linkedUserID,
			&person.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*trustedPersonRepository.ListLinkedTo").
				Int64("user_id", userID).
				Msg("failed to scan trusted person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if linkedUserID.Valid {
			person.LinkedUserID = &linkedUserID.Int64
		}

		persons = append(persons, person)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*trustedPersonRepository.ListLinkedTo").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return persons, nil
}
