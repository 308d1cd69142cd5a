package entity

import (
	"time"

	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
)

type MerchantStatus string

const (
	MerchantStatusPending   MerchantStatus = "PENDING"
	MerchantStatusApproved  MerchantStatus = "APPROVED"
	MerchantStatusRejected  MerchantStatus = "REJECTED"
	MerchantStatusSuspended MerchantStatus = "SUSPENDED"
)

// Rejection reason bounds
const (
	MinStatusReasonLength = 10
	MaxStatusReasonLength = 500
)

type Merchant struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"-"`
	Status        MerchantStatus `json:"status"`
	StatusReason  string         `json:"status_reason,omitempty"`
	EmailVerified bool           `json:"email_verified"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (s MerchantStatus) String() string {
	return string(s)
}

func (m *Merchant) IsApproved() bool {
	return m.Status == MerchantStatusApproved
}

// ApproveMerchant returns the status reached by approving a merchant in the given status.
func ApproveMerchant(current MerchantStatus) (MerchantStatus, error) {
	if current != MerchantStatusPending {
		return current, domainErrors.NewMerchantTransitionError(current.String(), domainErrors.ActionApprove)
	}
	return MerchantStatusApproved, nil
}

func RejectMerchant(current MerchantStatus) (MerchantStatus, error) {
	if current != MerchantStatusPending {
		return current, domainErrors.NewMerchantTransitionError(current.String(), domainErrors.ActionReject)
	}
	return MerchantStatusRejected, nil
}

func SuspendMerchant(current MerchantStatus) (MerchantStatus, error) {
	if current != MerchantStatusApproved {
		return current, domainErrors.NewMerchantTransitionError(current.String(), domainErrors.ActionSuspend)
	}
	return MerchantStatusSuspended, nil
}

// WithStatus returns a copy of the merchant moved to the given status.
func (m Merchant) WithStatus(status MerchantStatus, reason string, at time.Time) *Merchant {
	m.Status = status
	m.StatusReason = reason
	m.UpdatedAt = at
	return &m
}
