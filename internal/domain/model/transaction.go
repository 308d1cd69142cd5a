package model

import "time"

// Transaction is an append-only audit record of a payment lifecycle event
type Transaction struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentID      int64     `gorm:"not null;index:idx_transactions_payment_created,priority:1" json:"payment_id"`
	Action         string    `gorm:"size:50;not null" json:"action"`
	PreviousStatus *string   `gorm:"column:previous_status;size:20" json:"previous_status,omitempty"`
	NewStatus      *string   `gorm:"column:new_status;size:20" json:"new_status,omitempty"`
	Notes          *string   `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_transactions_payment_created,priority:2" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}
