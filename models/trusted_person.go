package models

import "time"

// InvitationAccepted is the invitation_status value a trusted person must
// reach before they can receive shares.
const InvitationAccepted = "accepted"

// TrustedPerson is a directory entry representing a potential share
// recipient. A person becomes a valid share target only once they accept
// the invitation and their record is linked to a registered account.
type TrustedPerson struct {
	// ID is the directory record identifier (UUID).
	ID string `json:"id"`

	// OwnerID is the user who created this directory entry.
	OwnerID int64 `json:"-"`

	// Name is the display name the owner gave this person.
	Name string `json:"name"`

	// InvitationStatus tracks the invitation lifecycle
	// ("pending", "accepted", ...). Only "accepted" records are shareable.
	InvitationStatus string `json:"invitation_status"`

	// Active marks whether the owner still trusts this person.
	Active bool `json:"is_active"`

	// LinkedUserID is the registered account this record resolves to, or
	// nil while the invitation has not been accepted. Every authorization
	// path treats the nil case as a first-class outcome, never as an
	// incidental null.
	LinkedUserID *int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Linked reports whether the record resolves to a registered account.
func (p TrustedPerson) Linked() bool {
	return p.LinkedUserID != nil
}

// TableName returns the name of the database table
// associated with the TrustedPerson model.
func (p TrustedPerson) TableName() string {
	return "trusted_persons"
}
