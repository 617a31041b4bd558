package models

import "time"

// Permission is the access level granted to a share recipient.
//
// The retrieval endpoint itself does not distinguish between the two levels:
// both require fetching the same ciphertext. The distinction controls what
// the recipient's UI allows the user to do with the decrypted document
// locally (preview only vs. persist a copy).
type Permission string

const (
	// PermissionView allows the recipient to view the shared document.
	PermissionView Permission = "view"

	// PermissionDownload allows the recipient to view and keep a local
	// copy of the shared document.
	PermissionDownload Permission = "download"
)

// Valid reports whether p is one of the accepted permission levels.
func (p Permission) Valid() bool {
	return p == PermissionView || p == PermissionDownload
}

// ShareToken is the server-side record authorizing one trusted person to
// obtain one document's wrapped DEK and ciphertext.
//
// The token never carries a bare DEK. WrappedDEKForTP is the document key
// re-wrapped under key material usable only by the recipient, so the server
// stores nothing it could decrypt on its own.
type ShareToken struct {
	// ID is the opaque token identifier (UUID).
	ID string `json:"id"`

	// DocumentID references the shared document.
	DocumentID string `json:"document_id"`

	// OwnerID is the grantor. Only this user may list or revoke the token.
	OwnerID int64 `json:"owner_id"`

	// TrustedPersonID references the recipient's directory record.
	TrustedPersonID string `json:"trusted_person_id"`

	// WrappedDEKForTP is the document DEK wrapped for the recipient,
	// base64-encoded. Meaningless without the recipient's own key material.
	WrappedDEKForTP string `json:"wrapped_dek_for_tp"`

	// Permission is the granted access level. Defaults to "view" when the
	// owner omits it at issuance.
	Permission Permission `json:"permission"`

	// ExpiresAt is the optional expiry. Nil means the share is open-ended.
	ExpiresAt *time.Time `json:"expires_at"`

	// RevokedAt is set once by revocation and never cleared afterwards
	// except by an explicit re-share of the same (document, recipient) pair.
	RevokedAt *time.Time `json:"revoked_at"`

	CreatedAt time.Time `json:"created_at"`
}

// Active reports whether the token still authorizes retrieval at the given
// instant: not revoked, and either open-ended or not yet expired.
func (t ShareToken) Active(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	if t.ExpiresAt != nil && !t.ExpiresAt.After(now) {
		return false
	}
	return true
}

// TableName returns the name of the database table
// associated with the ShareToken model.
func (t ShareToken) TableName() string {
	return "document_share_tokens"
}

// ReceivedShare is a recipient-facing view of a ShareToken, joined with the
// minimal document metadata and the granting owner's display name needed to
// render a "shared with me" listing.
type ReceivedShare struct {
	ShareToken

	// Document carries title/category/file name only. The ciphertext and
	// the owner's wrapped DEK are never exposed on this surface.
	Document DocumentMeta `json:"documents"`

	// OwnerName is the granting owner's display name.
	OwnerName string `json:"profiles"`
}
