package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/merchant-gateway/internal/middleware/auth"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// MerchantHandler serves registration, login and the merchant profile
type MerchantHandler struct {
	merchants interfaces.MerchantUseCase
	logger    *zap.Logger
}

func NewMerchantHandler(merchants interfaces.MerchantUseCase, logger *zap.Logger) *MerchantHandler {
	return &MerchantHandler{
		merchants: merchants,
		logger:    logger,
	}
}

func (h *MerchantHandler) Register(c echo.Context) error {
	var req RegisterMerchantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	merchant, plainKey, err := h.merchants.Register(c.Request().Context(), interfaces.RegisterMerchantInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Merchant registration completed", zap.Int64("merchant_id", merchant.ID))

	return c.JSON(http.StatusCreated, RegisterMerchantResponse{
		ID:        merchant.ID,
		Name:      merchant.Name,
		Email:     merchant.Email,
		APIKey:    plainKey,
		Status:    merchant.Status,
		CreatedAt: merchant.CreatedAt,
	})
}

func (h *MerchantHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	merchant, err := h.merchants.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMerchantResponse(merchant))
}

func (h *MerchantHandler) Profile(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMerchantResponse(merchant))
}
