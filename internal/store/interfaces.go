package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/docvault/go-doc-share/models"
)

// UserRepository handles user account creation and lookup.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// VaultKeyRepository stores and retrieves the wrapped vault key material a
// user uploads at vault setup. The material is opaque to the server.
type VaultKeyRepository interface {
	SaveVaultKeys(ctx context.Context, material models.VaultKeyMaterial) error
	GetVaultKeys(ctx context.Context, userID int64) (models.VaultKeyMaterial, error)
}

// DocumentRepository reads document records. Documents are written at upload
// time; the sharing flows only ever read them.
type DocumentRepository interface {
	// GetOwned returns the document only when it belongs to ownerID.
	GetOwned(ctx context.Context, documentID string, ownerID int64) (models.Document, error)
	// GetByID returns the document regardless of ownership. Used on the
	// retrieval path after share authorization has already passed.
	GetByID(ctx context.Context, documentID string) (models.Document, error)
}

// TrustedPersonRepository reads trusted person directory records.
type TrustedPersonRepository interface {
	// GetOwned returns the trusted person record only when it belongs to
	// ownerID.
	GetOwned(ctx context.Context, trustedPersonID string, ownerID int64) (models.TrustedPerson, error)
	// ListLinkedTo returns all trusted person records, across all owners,
	// whose linked_user_id matches userID.
	ListLinkedTo(ctx context.Context, userID int64) ([]models.TrustedPerson, error)
}

// ShareTokenRepository manages the share token lifecycle.
type ShareTokenRepository interface {
	// Upsert atomically creates or replaces the token for the
	// (document_id, trusted_person_id) pair. On replace the previous
	// revocation and expiry are discarded.
	Upsert(ctx context.Context, token models.ShareToken) (models.ShareToken, error)
	// GetByID returns the token regardless of its lifecycle state.
	GetByID(ctx context.Context, tokenID string) (models.ShareToken, error)
	// Revoke stamps revoked_at on a not-yet-revoked token owned by ownerID.
	// Returns the number of rows updated: 0 means the token was already
	// revoked (or does not exist for this owner).
	Revoke(ctx context.Context, tokenID string, ownerID int64, revokedAt time.Time) (int64, error)
	// ListByOwner returns all tokens issued by ownerID, newest first,
	// including revoked and expired ones.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.ShareToken, error)
	// ListReceived returns every token targeting any of the trusted
	// person records in trustedPersonIDs, regardless of lifecycle state,
	// joined with document metadata and the granting owner's name.
	ListReceived(ctx context.Context, trustedPersonIDs []string) ([]models.ReceivedShare, error)
}

// BlobStore reads and writes encrypted document blobs. Implementations never
// see plaintext: blobs are encrypted client-side before upload.
type BlobStore interface {
	Save(ctx context.Context, path string, data io.Reader) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
