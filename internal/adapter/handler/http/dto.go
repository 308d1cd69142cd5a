package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// KeyWarning accompanies every response that carries a plain API key
const KeyWarning = "This key will only be shown once. Please store it securely."

type RegisterMerchantRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type GenerateAPIKeyRequest struct {
	Label string `json:"label" validate:"required,min=1,max=100"`
}

type MerchantActionRequest struct {
	Reason string `json:"reason" validate:"required,min=10,max=500"`
}

type CreatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,amount"`
	Currency    string           `json:"currency" validate:"required,currency"`
	Description string           `json:"description" validate:"max=500"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING SUCCESS FAILED REFUNDED"`
}

type RegisterMerchantResponse struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	APIKey    string                `json:"apiKey"`
	Status    entity.MerchantStatus `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
}

type MerchantResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Status        entity.MerchantStatus `json:"status"`
	StatusReason  string                `json:"statusReason,omitempty"`
	EmailVerified bool                  `json:"emailVerified"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type APIKeyResponse struct {
	ID         int64      `json:"id"`
	APIKey     string     `json:"apiKey,omitempty"`
	Label      string     `json:"label"`
	Revoked    bool       `json:"revoked"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	Warning    string     `json:"warning,omitempty"`
}

type PaymentResponse struct {
	ID           int64                `json:"id"`
	MerchantID   int64                `json:"merchantId"`
	Amount       decimal.Decimal      `json:"amount"`
	Currency     string               `json:"currency"`
	Description  string               `json:"description,omitempty"`
	Status       entity.PaymentStatus `json:"status"`
	RefundReason string               `json:"refundReason,omitempty"`
	RefundedAt   *time.Time           `json:"refundedAt,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

type PaymentPageResponse struct {
	Data       []PaymentResponse     `json:"data"`
	Pagination entity.PaginationMeta `json:"pagination"`
}

type TransactionResponse struct {
	ID             int64                    `json:"id"`
	PaymentID      int64                    `json:"paymentId"`
	Action         entity.TransactionAction `json:"action"`
	PreviousStatus *entity.PaymentStatus    `json:"previousStatus"`
	NewStatus      *entity.PaymentStatus    `json:"newStatus"`
	Notes          string                   `json:"notes,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toMerchantResponse(m *entity.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Status:        m.Status,
		StatusReason:  m.StatusReason,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toAPIKeyResponse(k *entity.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         k.ID,
		Label:      k.Label,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func toAPIKeyResponses(keys []*entity.APIKey) []APIKeyResponse {
	out := make([]APIKeyResponse, 0, len(keys))
	for _, k := range keys {
		out = append(out, toAPIKeyResponse(k))
	}
	return out
}

func toPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		MerchantID:   p.MerchantID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Description:  p.Description,
		Status:       p.Status,
		RefundReason: p.RefundReason,
		RefundedAt:   p.RefundedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, TransactionResponse{
			ID:             t.ID,
			PaymentID:      t.PaymentID,
			Action:         t.Action,
			PreviousStatus: t.PreviousStatus,
			NewStatus:      t.NewStatus,
			Notes:          t.Notes,
			CreatedAt:      t.CreatedAt,
		})
	}
	return out
}
