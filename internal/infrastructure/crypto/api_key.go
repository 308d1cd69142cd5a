package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/service"
)

const (
	// APIKeyPrefix marks live merchant keys
	APIKeyPrefix = "sk_live_"

	apiKeyEntropyBytes = 32
)

type SHA256KeyGenerator struct {
	random io.Reader
}

func NewSHA256KeyGenerator() *SHA256KeyGenerator {
	return &SHA256KeyGenerator{random: rand.Reader}
}

var _ service.APIKeyGenerator = (*SHA256KeyGenerator)(nil)

func (g *SHA256KeyGenerator) Generate() (string, error) {
	buf := make([]byte, apiKeyEntropyBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return APIKeyPrefix + hex.EncodeToString(buf), nil
}

// Digest is unsalted so stored keys can be looked up by equality.
func (g *SHA256KeyGenerator) Digest(plainKey string) (string, error) {
	if plainKey == "" {
		return "", domainErrors.NewInvalidInputError("API key cannot be null or empty")
	}
	sum := sha256.Sum256([]byte(plainKey))
	return hex.EncodeToString(sum[:]), nil
}

func (g *SHA256KeyGenerator) Verify(plainKey, digest string) bool {
	if plainKey == "" || digest == "" {
		return false
	}
	computed, err := g.Digest(plainKey)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
