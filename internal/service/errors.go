package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when the caller is authenticated but not
	// allowed to perform the operation: revoking another owner's share, or
	// sharing with a recipient that is not accepted or no longer active.
	ErrForbidden = errors.New("operation is not allowed")

	// ErrRecipientNotLinked is returned when the selected trusted person has
	// no registered account linked yet. Distinct from ErrForbidden so the
	// owner gets an actionable message: the recipient must finish
	// registration before anything can be shared with them.
	ErrRecipientNotLinked = errors.New("trusted person has no linked account")

	// ErrNotFound deliberately covers more than absence. On the retrieval
	// path it is also the answer for revoked, expired, and
	// not-addressed-to-you, so responses do not leak which documents or
	// shares exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPermission is returned when the requested permission is not
	// one of the supported levels.
	ErrInvalidPermission = errors.New("invalid permission")

	// ErrMissingID is returned when a required identifier parameter is
	// absent from the request.
	ErrMissingID = errors.New("missing identifier")
)
