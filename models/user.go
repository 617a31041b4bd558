package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user. Non-sensitive; shown to share
	// recipients as the granting owner's name.
	Name string `json:"name"`

	// AuthHash is the authentication verifier sent by the client.
	// This value MUST be a derived value (hash/KDF output), never the
	// plaintext passphrase and never anything the master key can be
	// recovered from.
	AuthHash string `json:"auth_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
