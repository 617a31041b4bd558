package models

// ShareCreateResponse carries the identifier of the created/updated token.
type ShareCreateResponse struct {
	ID string `json:"id"`
}

// OwnerSharesResponse is the body of GET /api/shares?ownerId=.
type OwnerSharesResponse struct {
	Tokens []ShareToken `json:"tokens"`
}

// ReceivedSharesResponse is the body of GET /api/shares/received.
// Shares is never null: zero linked trusted-person records yield an empty
// list, not an error.
type ReceivedSharesResponse struct {
	Shares []ReceivedShare `json:"shares"`
}

// VaultKeysResponse is the body of GET /api/vault/keys. Exists is false when
// the user has not set up a vault yet; the key-material fields are then empty.
type VaultKeysResponse struct {
	Exists bool `json:"exists"`
	VaultKeyMaterial
}
