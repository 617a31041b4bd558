package models

import "time"

// Document is the per-document key registry entry plus the ciphertext
// location. The blob at FilePath is opaque to the server: it was encrypted
// client-side under a fresh DEK before upload, and WrappedDEK is that DEK
// wrapped under the owner's master key.
type Document struct {
	// ID is the document identifier (UUID).
	ID string `json:"id"`

	// OwnerID is the uploading user. All share mutations require the
	// caller to match this field.
	OwnerID int64 `json:"-"`

	// Title is the user-facing document title.
	Title string `json:"title"`

	// Category is a free-form classification label.
	Category string `json:"category"`

	// FileName is the original (client-side) file name.
	FileName string `json:"file_name"`

	// FilePath is the ciphertext location in the blob store.
	// Never exposed to clients.
	FilePath string `json:"-"`

	// WrappedDEK is the document DEK wrapped under the owner's master key,
	// base64-encoded. Immutable after upload.
	WrappedDEK string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// DocumentMeta is the subset of document fields exposed to share recipients.
type DocumentMeta struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	FileName string `json:"file_name"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
