// Package vault implements the owner-side vault session: the only place in
// the system where an unlocked master key exists.
//
// A Session is an explicit object with a tagged Locked/Unlocked state, owned
// by whoever owns the user's login session and destroyed on logout. It is
// deliberately not a process-wide singleton: every component that needs
// wrap/unwrap receives the session by reference and must check Unlocked()
// before asking it to touch key material.
//
// The master key is held in volatile memory only while the session is
// unlocked. Lock zeroes it. Nothing in this package ever sends the key, or
// anything it can be derived from, over the wire.
package vault

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/docvault/go-doc-share/internal/crypto"
	"github.com/docvault/go-doc-share/models"
)

var (
	// ErrVaultLocked is returned by WrapDEK/UnwrapDEK while the session is
	// locked. Callers are expected to gate on Unlocked() and treat this as
	// a precondition violation, not a recoverable condition.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrWrongCredential is returned when an unlock attempt fails to
	// unwrap the master key, which almost always means a wrong passphrase
	// or recovery key.
	ErrWrongCredential = errors.New("wrong passphrase or recovery key")

	// ErrNoKeyMaterial is returned when unlock is attempted before the
	// vault has been set up.
	ErrNoKeyMaterial = errors.New("vault key material is missing")
)

// Session holds the owner's master key while unlocked.
//
// Session is not safe for concurrent use; it belongs to a single user
// session and is driven by that session's goroutine.
type Session struct {
	wrapper   crypto.KeyWrapper
	masterKey []byte // nil while locked
}

// New returns a locked session.
func New(wrapper crypto.KeyWrapper) *Session {
	return &Session{wrapper: wrapper}
}

// Unlocked reports whether the master key is resident in memory.
func (s *Session) Unlocked() bool {
	return s.masterKey != nil
}

// Setup generates a fresh master key and the recovery material for it.
//
// It wraps the master key twice, under a key derived from the passphrase
// and under a key derived from a newly generated recovery key, and returns
// the resulting key material (safe to persist server-side: all of it is
// either public salts/parameters or ciphertext) together with the hex
// recovery key the user must write down.
//
// Setup does NOT unlock the session; the caller unlocks explicitly with the
// passphrase, which also proves the round trip works.
func (s *Session) Setup(passphrase string) (models.VaultKeyMaterial, string, error) {
	masterKey, err := s.wrapper.GenerateKey()
	if err != nil {
		return models.VaultKeyMaterial{}, "", fmt.Errorf("generate master key: %w", err)
	}

	kdfSalt, err := s.wrapper.GenerateSalt()
	if err != nil {
		return models.VaultKeyMaterial{}, "", fmt.Errorf("generate kdf salt: %w", err)
	}

	passKey := s.wrapper.DeriveKey(passphrase, kdfSalt)
	wrappedMK, err := s.wrapper.Wrap(masterKey, passKey)
	if err != nil {
		return models.VaultKeyMaterial{}, "", fmt.Errorf("wrap master key: %w", err)
	}

	recoveryKeyBytes, err := s.wrapper.GenerateKey()
	if err != nil {
		return models.VaultKeyMaterial{}, "", fmt.Errorf("generate recovery key: %w", err)
	}
	recoveryKey := hex.EncodeToString(recoveryKeyBytes)

	recoverySalt, err := s.wrapper.GenerateSalt()
	if err != nil {
		return models.VaultKeyMaterial{}, "", fmt.Errorf("generate recovery salt: %w", err)
	}

	recoveryDerived := s.wrapper.DeriveKey(recoveryKey, recoverySalt)
	wrappedMKRecovery, err := s.wrapper.Wrap(masterKey, recoveryDerived)
	if err != nil {
		return models.VaultKeyMaterial{}, "", fmt.Errorf("wrap master key with recovery key: %w", err)
	}

	params := s.wrapper.Params()
	material := models.VaultKeyMaterial{
		KDFSalt: base64.StdEncoding.EncodeToString(kdfSalt),
		KDFParams: models.KDFParams{
			Time:    params.Time,
			Memory:  params.Memory,
			Threads: params.Threads,
			KeyLen:  params.KeyLen,
		},
		WrappedMasterKey:         base64.StdEncoding.EncodeToString(wrappedMK),
		WrappedMasterKeyRecovery: base64.StdEncoding.EncodeToString(wrappedMKRecovery),
		RecoveryKeySalt:          base64.StdEncoding.EncodeToString(recoverySalt),
	}

	return material, recoveryKey, nil
}

// Unlock derives the wrapping key from passphrase and the stored salt, then
// unwraps the master key. On success the session transitions to Unlocked;
// on failure it stays Locked and reports [ErrWrongCredential].
func (s *Session) Unlock(passphrase string, material models.VaultKeyMaterial) error {
	return s.unlock(passphrase, material.KDFSalt, material.WrappedMasterKey, material)
}

// UnlockWithRecovery unlocks using the recovery key issued at setup time.
func (s *Session) UnlockWithRecovery(recoveryKey string, material models.VaultKeyMaterial) error {
	return s.unlock(recoveryKey, material.RecoveryKeySalt, material.WrappedMasterKeyRecovery, material)
}

func (s *Session) unlock(credential, saltB64, wrappedB64 string, material models.VaultKeyMaterial) error {
	if saltB64 == "" || wrappedB64 == "" {
		return ErrNoKeyMaterial
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return fmt.Errorf("decode salt: %w", err)
	}
	wrapped, err := base64.StdEncoding.DecodeString(wrappedB64)
	if err != nil {
		return fmt.Errorf("decode wrapped master key: %w", err)
	}

	// Derive with the parameters the vault was set up under, which may
	// differ from the current defaults.
	wrapper := s.wrapper
	if p := material.KDFParams; p.KeyLen != 0 {
		wrapper = crypto.NewKeyWrapperWithParams(crypto.Argon2Params{
			Time:    p.Time,
			Memory:  p.Memory,
			Threads: p.Threads,
			KeyLen:  p.KeyLen,
		})
	}

	derived := wrapper.DeriveKey(credential, salt)
	masterKey, err := wrapper.Unwrap(wrapped, derived)
	if err != nil {
		return ErrWrongCredential
	}

	s.masterKey = masterKey
	return nil
}

// WrapDEK wraps a document DEK under the resident master key. Returns
// [ErrVaultLocked] while the session is locked.
func (s *Session) WrapDEK(dek []byte) ([]byte, error) {
	if !s.Unlocked() {
		return nil, ErrVaultLocked
	}
	return s.wrapper.Wrap(dek, s.masterKey)
}

// UnwrapDEK unwraps a DEK that was wrapped under the resident master key.
// Returns [ErrVaultLocked] while the session is locked.
func (s *Session) UnwrapDEK(wrapped []byte) ([]byte, error) {
	if !s.Unlocked() {
		return nil, ErrVaultLocked
	}
	return s.wrapper.Unwrap(wrapped, s.masterKey)
}

// Lock zeroes and discards the in-memory master key. Idempotent.
func (s *Session) Lock() {
	for i := range s.masterKey {
		s.masterKey[i] = 0
	}
	s.masterKey = nil
}
