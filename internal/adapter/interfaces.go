// Package adapter provides transport-layer abstractions for communicating with
// the document sharing server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// runtime from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/docvault/go-doc-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the document
// sharing server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials. On
	// success it stores the returned bearer token via SetToken and returns the
	// user populated with the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the pre-computed auth verifier. On
	// success it stores the returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// SaveVaultKeys uploads the caller's wrapped vault key material.
	SaveVaultKeys(ctx context.Context, material models.VaultKeyMaterial) error

	// GetVaultKeys fetches the caller's wrapped vault key material. The bool
	// result is false when the server reports no vault has been set up yet.
	GetVaultKeys(ctx context.Context) (models.VaultKeyMaterial, bool, error)

	// CreateShare issues or replaces a share grant and returns the token ID.
	CreateShare(ctx context.Context, req models.ShareCreateRequest) (string, error)

	// RevokeShare revokes the share with the given ID. Revoking an already
	// revoked share succeeds.
	RevokeShare(ctx context.Context, shareID string) error

	// OwnerShares lists every share the given owner has issued, including
	// revoked and expired grants.
	OwnerShares(ctx context.Context, ownerID int64) ([]models.ShareToken, error)

	// ReceivedShares lists every share addressed to the caller, including
	// revoked and expired grants.
	ReceivedShares(ctx context.Context) ([]models.ReceivedShare, error)

	// DownloadSharedFile retrieves the encrypted blob behind a share. The
	// bytes are ciphertext; decryption happens locally with the wrapped DEK
	// carried on the share token.
	DownloadSharedFile(ctx context.Context, shareID string) ([]byte, error)
}
