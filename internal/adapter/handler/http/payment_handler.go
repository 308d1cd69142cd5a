package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/internal/middleware/auth"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment ledger and its audit trail to merchants
type PaymentHandler struct {
	payments interfaces.PaymentUseCase
	audit    interfaces.AuditTrail
	logger   *zap.Logger
}

func NewPaymentHandler(payments interfaces.PaymentUseCase, audit interfaces.AuditTrail, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		audit:    audit,
		logger:   logger,
	}
}

func (h *PaymentHandler) Create(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	var req CreatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.payments.Create(c.Request().Context(), interfaces.CreatePaymentInput{
		MerchantID:  merchant.ID,
		Amount:      *req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

func (h *PaymentHandler) Get(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	paymentID, err := pathID(c, "paymentId")
	if err != nil {
		return err
	}

	payment, err := h.payments.Get(c.Request().Context(), paymentID, merchant.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

func (h *PaymentHandler) List(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	page, err := h.payments.List(c.Request().Context(), merchant.ID, paginationParams(c))
	if err != nil {
		return err
	}

	resp := PaymentPageResponse{
		Data:       make([]PaymentResponse, 0, len(page.Data)),
		Pagination: page.Pagination,
	}
	for _, p := range page.Data {
		resp.Data = append(resp.Data, toPaymentResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	paymentID, err := pathID(c, "paymentId")
	if err != nil {
		return err
	}

	var req UpdatePaymentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	payment, err := h.payments.UpdateStatus(c.Request().Context(), paymentID, merchant.ID, entity.PaymentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

func (h *PaymentHandler) Refund(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	paymentID, err := pathID(c, "paymentId")
	if err != nil {
		return err
	}

	payment, err := h.payments.Refund(c.Request().Context(), paymentID, merchant.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Transactions lists a payment's audit trail after the same ownership check as Get
func (h *PaymentHandler) Transactions(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	paymentID, err := pathID(c, "paymentId")
	if err != nil {
		return err
	}

	if _, err := h.payments.Get(c.Request().Context(), paymentID, merchant.ID); err != nil {
		return err
	}

	transactions, err := h.audit.ListForPayment(c.Request().Context(), paymentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

// MerchantTransactions lists every audit record across the merchant's payments
func (h *PaymentHandler) MerchantTransactions(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	transactions, err := h.audit.ListForMerchant(c.Request().Context(), merchant.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}
