package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/docvault/go-doc-share/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ShareService owns the share token lifecycle: issuance, listing on both
// sides of a grant, revocation, and the authorization decision behind
// ciphertext retrieval.
type ShareService interface {
	IssueShare(ctx context.Context, ownerID int64, req models.ShareCreateRequest) (models.ShareToken, error)
	RevokeShare(ctx context.Context, callerID int64, shareID string) error
	ListOwnerShares(ctx context.Context, ownerID int64) ([]models.ShareToken, error)
	ListReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error)
	// OpenSharedFile authorizes the caller against the share and streams the
	// stored ciphertext. It never decrypts anything.
	OpenSharedFile(ctx context.Context, userID int64, shareID string) (io.ReadCloser, error)
}

// VaultKeyService stores and returns the wrapped vault key material users
// upload at vault setup.
type VaultKeyService interface {
	SaveVaultKeys(ctx context.Context, userID int64, material models.VaultKeyMaterial) error
	// GetVaultKeys reports exists=false, without error, when the user has no
	// vault yet.
	GetVaultKeys(ctx context.Context, userID int64) (models.VaultKeyMaterial, bool, error)
}
