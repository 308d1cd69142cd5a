package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a payment record
type Payment struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	MerchantID   int64           `gorm:"not null;index:idx_payments_merchant_created,priority:1" json:"merchant_id"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency     string          `gorm:"size:3;not null" json:"currency"`
	Description  *string         `gorm:"size:500" json:"description,omitempty"`
	Status       string          `gorm:"size:20;not null;index" json:"status"`
	RefundReason *string         `gorm:"column:refund_reason;size:500" json:"refund_reason,omitempty"`
	RefundedAt   *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index:idx_payments_merchant_created,priority:2" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Transactions []Transaction `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}
