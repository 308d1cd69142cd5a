package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/merchant-gateway/internal/middleware/auth"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// APIKeyHandler manages the authenticated merchant's API keys
type APIKeyHandler struct {
	apiKeys interfaces.APIKeyUseCase
	logger  *zap.Logger
}

func NewAPIKeyHandler(apiKeys interfaces.APIKeyUseCase, logger *zap.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeys: apiKeys,
		logger:  logger,
	}
}

func (h *APIKeyHandler) Generate(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	var req GenerateAPIKeyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	issued, err := h.apiKeys.GenerateAdditionalKey(c.Request().Context(), merchant.ID, req.Label)
	if err != nil {
		return err
	}

	resp := toAPIKeyResponse(issued.Key)
	resp.APIKey = issued.PlainKey
	resp.Warning = KeyWarning
	return c.JSON(http.StatusCreated, resp)
}

// List returns every key, or only unrevoked ones with ?active=true
func (h *APIKeyHandler) List(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	list := h.apiKeys.ListKeys
	if boolQuery(c, "active") {
		list = h.apiKeys.ListActiveKeys
	}

	keys, err := list(c.Request().Context(), merchant.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAPIKeyResponses(keys))
}

func (h *APIKeyHandler) Revoke(c echo.Context) error {
	merchant, err := auth.RequireMerchant(c)
	if err != nil {
		return err
	}

	keyID, err := pathID(c, "keyId")
	if err != nil {
		return err
	}

	if err := h.apiKeys.Revoke(c.Request().Context(), merchant.ID, keyID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "API key revoked successfully"})
}
