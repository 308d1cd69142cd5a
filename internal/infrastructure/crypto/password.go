package crypto

import (
	"errors"
	"fmt"

	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/service"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for merchant passwords (2^12 rounds)
const PasswordCost = 12

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: PasswordCost}
}

// NewBcryptPasswordHasherWithCost is meant for tests that need cheaper hashes.
func NewBcryptPasswordHasherWithCost(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

var _ service.PasswordHasher = (*BcryptPasswordHasher)(nil)

func (h *BcryptPasswordHasher) HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", domainErrors.NewInvalidInputError("Password cannot be null or empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) VerifyPassword(plain, digest string) (bool, error) {
	if plain == "" {
		return false, domainErrors.NewInvalidInputError("Password cannot be null or empty")
	}
	if digest == "" {
		return false, domainErrors.NewInvalidInputError("Hashed password cannot be null or empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to verify password: %w", err)
}
