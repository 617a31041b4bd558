package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_wrapper_mock.go -package=mock

// KeyWrapper is the symmetric envelope-encryption primitive of the sharing
// protocol. It knows nothing about the network, the database, or users; its
// only job is generating keys and wrapping one key under another.
//
// The same primitive is used identically for "DEK under the owner's master
// key" and for "DEK under the recipient's key": a wrapped blob is safe to
// store or transmit because it is random noise to anyone without the
// wrapping key.
type KeyWrapper interface {
	// GenerateKey generates a random 256-bit key (master key or DEK).
	GenerateKey() ([]byte, error)

	// GenerateSalt generates a random 128-bit salt. The salt is not a
	// secret; it is stored on the server in the clear so that identical
	// passphrases derive different wrapping keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit wrapping key from a passphrase and salt
	// via Argon2id. The result exists only in client memory.
	DeriveKey(passphrase string, salt []byte) []byte

	// Wrap encrypts key under wrappingKey with an authenticated scheme
	// (AES-256-GCM). The returned blob is nonce ‖ ciphertext.
	Wrap(key, wrappingKey []byte) ([]byte, error)

	// Unwrap reverses Wrap. It fails closed: any truncation, wrong key, or
	// authentication-tag mismatch yields an error, never "best effort" key
	// material.
	Unwrap(wrapped, wrappingKey []byte) ([]byte, error)

	// Params reports the Argon2id parameters DeriveKey uses, so callers
	// can persist them next to the salt.
	Params() Argon2Params
}

// Argon2Params is the Argon2id tuning used by a KeyWrapper.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}
