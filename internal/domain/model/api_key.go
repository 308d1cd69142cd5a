package model

import "time"

// APIKey stores the SHA-256 digest of a merchant API key
type APIKey struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	MerchantID int64      `gorm:"not null;index:idx_api_keys_merchant_created,priority:1" json:"merchant_id"`
	KeyHash    string     `gorm:"column:key_hash;size:64;not null;uniqueIndex:idx_api_keys_key_hash" json:"-"`
	Label      string     `gorm:"size:100" json:"label"`
	Revoked    bool       `gorm:"not null;default:false" json:"revoked"`
	LastUsedAt *time.Time `gorm:"column:last_used_at" json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index:idx_api_keys_merchant_created,priority:2" json:"created_at"`
}

// TableName specifies the table name for GORM
func (APIKey) TableName() string {
	return "api_keys"
}
