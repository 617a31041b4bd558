package vault

import (
	"bytes"
	"errors"
	"testing"

	"github.com/docvault/go-doc-share/internal/crypto"
	"github.com/docvault/go-doc-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// test wrapper with cheap Argon2 parameters so the suite stays fast
func testWrapper() crypto.KeyWrapper {
	return crypto.NewKeyWrapperWithParams(crypto.Argon2Params{
		Time:    1,
		Memory:  8,
		Threads: 1,
		KeyLen:  32,
	})
}

func TestSession_StartsLocked(t *testing.T) {
	s := New(testWrapper())
	assert.False(t, s.Unlocked())

	_, err := s.WrapDEK([]byte("0123456789abcdef0123456789abcdef"))
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, err = s.UnwrapDEK([]byte("whatever"))
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestSession_SetupDoesNotUnlock(t *testing.T) {
	s := New(testWrapper())

	material, recoveryKey, err := s.Setup("passphrase")
	require.NoError(t, err)
	require.NotEmpty(t, recoveryKey)
	require.NotEmpty(t, material.WrappedMasterKey)
	require.NotEmpty(t, material.WrappedMasterKeyRecovery)
	require.NotEmpty(t, material.KDFSalt)
	require.NotEmpty(t, material.RecoveryKeySalt)

	assert.False(t, s.Unlocked(), "setup must not leave the vault unlocked")
}

func TestSession_UnlockWithPassphrase(t *testing.T) {
	s := New(testWrapper())
	material, _, err := s.Setup("open sesame")
	require.NoError(t, err)

	require.NoError(t, s.Unlock("open sesame", material))
	assert.True(t, s.Unlocked())
}

func TestSession_UnlockWrongPassphraseStaysLocked(t *testing.T) {
	s := New(testWrapper())
	material, _, err := s.Setup("right")
	require.NoError(t, err)

	err = s.Unlock("wrong", material)
	assert.ErrorIs(t, err, ErrWrongCredential)
	assert.False(t, s.Unlocked())
}

func TestSession_UnlockWithRecoveryKey(t *testing.T) {
	s := New(testWrapper())
	material, recoveryKey, err := s.Setup("forgotten")
	require.NoError(t, err)

	require.NoError(t, s.UnlockWithRecovery(recoveryKey, material))
	assert.True(t, s.Unlocked())
}

func TestSession_UnlockWithoutMaterial(t *testing.T) {
	s := New(testWrapper())

	err := s.Unlock("anything", models.VaultKeyMaterial{})
	assert.True(t, errors.Is(err, ErrNoKeyMaterial))
}

func TestSession_WrapUnwrapDEKRoundtrip(t *testing.T) {
	w := testWrapper()
	s := New(w)
	material, _, err := s.Setup("pw")
	require.NoError(t, err)
	require.NoError(t, s.Unlock("pw", material))

	dek, err := w.GenerateKey()
	require.NoError(t, err)

	wrapped, err := s.WrapDEK(dek)
	require.NoError(t, err)
	require.False(t, bytes.Contains(wrapped, dek))

	got, err := s.UnwrapDEK(wrapped)
	require.NoError(t, err)
	assert.Equal(t, dek, got)
}

func TestSession_PassphraseAndRecoveryUnwrapSameMasterKey(t *testing.T) {
	w := testWrapper()

	s1 := New(w)
	material, recoveryKey, err := s1.Setup("pw")
	require.NoError(t, err)
	require.NoError(t, s1.Unlock("pw", material))

	dek, err := w.GenerateKey()
	require.NoError(t, err)
	wrapped, err := s1.WrapDEK(dek)
	require.NoError(t, err)

	// a second session unlocked via recovery must see the same master key
	s2 := New(w)
	require.NoError(t, s2.UnlockWithRecovery(recoveryKey, material))

	got, err := s2.UnwrapDEK(wrapped)
	require.NoError(t, err)
	assert.Equal(t, dek, got)
}

func TestSession_LockIsIdempotentAndDiscardsKey(t *testing.T) {
	s := New(testWrapper())
	material, _, err := s.Setup("pw")
	require.NoError(t, err)
	require.NoError(t, s.Unlock("pw", material))

	s.Lock()
	assert.False(t, s.Unlocked())

	_, err = s.WrapDEK([]byte("key"))
	assert.ErrorIs(t, err, ErrVaultLocked)

	s.Lock() // second lock is a no-op
	assert.False(t, s.Unlocked())
}
