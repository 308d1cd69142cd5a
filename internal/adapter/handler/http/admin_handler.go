package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/internal/middleware/auth"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// AdminHandler runs the merchant approval workflow for operators
type AdminHandler struct {
	merchants interfaces.MerchantUseCase
	logger    *zap.Logger
}

func NewAdminHandler(merchants interfaces.MerchantUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		merchants: merchants,
		logger:    logger,
	}
}

func (h *AdminHandler) GetMerchant(c echo.Context) error {
	merchantID, err := pathID(c, "merchantId")
	if err != nil {
		return err
	}

	merchant, err := h.merchants.FindByID(c.Request().Context(), merchantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMerchantResponse(merchant))
}

func (h *AdminHandler) Approve(c echo.Context) error {
	merchantID, err := pathID(c, "merchantId")
	if err != nil {
		return err
	}

	merchant, err := h.merchants.Approve(c.Request().Context(), merchantID)
	if err != nil {
		return err
	}

	h.audited(c, "approve", merchant)
	return c.JSON(http.StatusOK, toMerchantResponse(merchant))
}

func (h *AdminHandler) Reject(c echo.Context) error {
	return h.withReason(c, "reject", h.merchants.Reject)
}

func (h *AdminHandler) Suspend(c echo.Context) error {
	return h.withReason(c, "suspend", h.merchants.Suspend)
}

func (h *AdminHandler) withReason(
	c echo.Context,
	action string,
	apply func(ctx context.Context, id int64, reason string) (*entity.Merchant, error),
) error {
	merchantID, err := pathID(c, "merchantId")
	if err != nil {
		return err
	}

	var req MerchantActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	merchant, err := apply(c.Request().Context(), merchantID, req.Reason)
	if err != nil {
		return err
	}

	h.audited(c, action, merchant)
	return c.JSON(http.StatusOK, toMerchantResponse(merchant))
}

func (h *AdminHandler) audited(c echo.Context, action string, merchant *entity.Merchant) {
	fields := []zap.Field{
		zap.String("action", action),
		zap.Int64("merchant_id", merchant.ID),
		zap.String("status", merchant.Status.String()),
	}
	if admin, err := auth.GetAdminFromContext(c); err == nil {
		fields = append(fields, zap.String("admin", admin.Subject))
	}
	h.logger.Info("Merchant status changed by admin", fields...)
}
