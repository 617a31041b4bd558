package models

import "time"

// VaultKeyMaterial is the server-stored, fully wrapped form of a user's
// master key. Every field is either public (salts, KDF parameters) or
// ciphertext the server cannot open: unwrapping requires the owner's
// passphrase or recovery key, neither of which ever reaches the server.
type VaultKeyMaterial struct {
	UserID int64 `json:"-"`

	// KDFSalt is the salt for the passphrase-derived wrapping key, base64.
	KDFSalt string `json:"kdf_salt"`

	// KDFParams records the derivation parameters used at setup time so
	// that unlock keeps working after defaults change.
	KDFParams KDFParams `json:"kdf_params"`

	// WrappedMasterKey is the master key wrapped under the
	// passphrase-derived key, base64.
	WrappedMasterKey string `json:"wrapped_mk"`

	// WrappedMasterKeyRecovery is the master key wrapped under the
	// recovery-key-derived key, base64.
	WrappedMasterKeyRecovery string `json:"wrapped_mk_with_recovery"`

	// RecoveryKeySalt is the salt for the recovery derivation, base64.
	RecoveryKeySalt string `json:"recovery_key_salt"`

	UpdatedAt time.Time `json:"-"`
}

// KDFParams captures the Argon2id tuning used to derive wrapping keys.
type KDFParams struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
	KeyLen  uint32 `json:"key_len"`
}

// TableName returns the name of the database table
// associated with the VaultKeyMaterial model.
func (v VaultKeyMaterial) TableName() string {
	return "user_vault_keys"
}
