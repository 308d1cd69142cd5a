package entity

import "time"

// DefaultAPIKeyLabel labels the key minted at registration
const DefaultAPIKeyLabel = "Default"

// Label bounds for additional keys
const (
	MinAPIKeyLabelLength = 1
	MaxAPIKeyLabelLength = 100
)

// APIKey holds only the digest; the plain key is returned once at creation.
type APIKey struct {
	ID         int64      `json:"id"`
	MerchantID int64      `json:"merchant_id"`
	KeyHash    string     `json:"-"`
	Label      string     `json:"label"`
	Revoked    bool       `json:"revoked"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (k *APIKey) OwnedBy(merchantID int64) bool {
	return k.MerchantID == merchantID
}

// IssuedAPIKey pairs a stored key with its one-time plain value.
type IssuedAPIKey struct {
	Key      *APIKey
	PlainKey string
}
