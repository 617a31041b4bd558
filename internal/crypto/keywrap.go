package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	keyLen  = 32
	saltLen = 16
)

// keyWrapper is the private implementation of [KeyWrapper].
type keyWrapper struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyWrapper constructs a [KeyWrapper] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyWrapper() KeyWrapper {
	return &keyWrapper{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  keyLen,
	}
}

// NewKeyWrapperWithParams constructs a [KeyWrapper] with explicit Argon2id
// parameters, used when unlocking a vault that was set up under different
// (persisted) tuning.
func NewKeyWrapperWithParams(p Argon2Params) KeyWrapper {
	return &keyWrapper{
		argonTime:    p.Time,
		argonMemory:  p.Memory,
		argonThreads: p.Threads,
		argonKeyLen:  p.KeyLen,
	}
}

// GenerateKey implements [KeyWrapper]. It reads 32 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyWrapper) GenerateKey() ([]byte, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateSalt implements [KeyWrapper]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyWrapper) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyWrapper]. It derives a 256-bit wrapping key from
// passphrase and salt using Argon2id with the parameters stored in the
// receiver. The result exists only in client memory and is never transmitted
// to the server.
func (k *keyWrapper) DeriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Wrap implements [KeyWrapper]. It encrypts key under wrappingKey with
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so that
// Unwrap can locate it: blob = nonce ‖ ciphertext. Returns an error if the
// wrapping key is not 32 bytes, or if cipher creation or the random nonce
// read fails.
func (k *keyWrapper) Wrap(key, wrappingKey []byte) ([]byte, error) {
	if len(wrappingKey) != keyLen {
		return nil, fmt.Errorf("invalid wrapping key length: %d", len(wrappingKey))
	}

	block, err := aes.NewCipher(wrappingKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so Unwrap can split it out without a side-channel.
	wrapped := gcm.Seal(nil, nonce, key, nil)
	return append(nonce, wrapped...), nil
}

// Unwrap implements [KeyWrapper]. It unwraps a blob produced by
// [keyWrapper.Wrap] using wrappingKey and AES-256-GCM. The blob must be at
// least as long as the GCM nonce (12 bytes). Returns the inner key, or an
// error if the blob is too short, the wrapping key is wrong, or the
// ciphertext is corrupted (authentication-tag mismatch).
func (k *keyWrapper) Unwrap(wrapped, wrappingKey []byte) ([]byte, error) {
	if len(wrappingKey) != keyLen {
		return nil, fmt.Errorf("invalid wrapping key length: %d", len(wrappingKey))
	}

	block, err := aes.NewCipher(wrappingKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(wrapped) < nonceSize {
		return nil, fmt.Errorf("wrapped key too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := wrapped[:nonceSize], wrapped[nonceSize:]

	// Decrypt and verify auth tag. An error here almost always means the
	// wrong passphrase produced a wrong wrapping key.
	key, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unwrap failed: %w", err)
	}

	return key, nil
}

// Params implements [KeyWrapper].
func (k *keyWrapper) Params() Argon2Params {
	return Argon2Params{
		Time:    k.argonTime,
		Memory:  k.argonMemory,
		Threads: k.argonThreads,
		KeyLen:  k.argonKeyLen,
	}
}
