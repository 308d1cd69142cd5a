package model

import "time"

// Merchant represents a merchant account
type Merchant struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Email         string    `gorm:"size:255;not null;uniqueIndex:idx_merchants_email" json:"email"`
	PasswordHash  string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Status        string    `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	StatusReason  *string   `gorm:"column:status_reason;size:500" json:"status_reason,omitempty"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	APIKeys  []APIKey  `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE" json:"-"`
	Payments []Payment `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Merchant) TableName() string {
	return "merchants"
}
