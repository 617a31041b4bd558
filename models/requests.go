package models

import "time"

// ShareCreateRequest is the body of POST /api/shares, issued by the
// authenticated owner. WrappedDEKForTP arrives already wrapped: the server
// only relays the blob, it never sees or produces plaintext key material.
type ShareCreateRequest struct {
	DocumentID      string `json:"document_id"`
	TrustedPersonID string `json:"trusted_person_id"`
	WrappedDEKForTP string `json:"wrapped_dek_for_tp"`

	// ExpiresAt is persisted verbatim; nil means no expiry.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Permission defaults to "view" when empty.
	Permission Permission `json:"permission,omitempty"`
}
