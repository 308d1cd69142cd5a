package service

// PasswordHasher hashes merchant passwords with a slow salted algorithm
type PasswordHasher interface {
	// HashPassword fails with an invalid input error for an empty password
	HashPassword(plain string) (string, error)

	// VerifyPassword returns false, not an error, on mismatch
	VerifyPassword(plain, digest string) (bool, error)
}

// APIKeyGenerator mints API keys and computes their lookup digests
type APIKeyGenerator interface {
	// Generate returns a new plain key with 256 bits of randomness
	Generate() (string, error)

	// Digest returns the lowercase hex SHA-256 of the key
	Digest(plainKey string) (string, error)

	// Verify compares the key's digest with a stored digest in constant time
	Verify(plainKey, digest string) bool
}
