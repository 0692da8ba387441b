package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderai/wanderai-backend/config"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/types"
)

// HealthHandler exposes the health check and the admin config snapshot.
type HealthHandler struct {
	health *services.HealthService
	cfg    *config.Config
}

func NewHealthHandler(health *services.HealthService, cfg *config.Config) *HealthHandler {
	return &HealthHandler{health: health, cfg: cfg}
}

// Check handles GET /health. DEGRADED still returns 200: the service is
// serving trips, just from fallback data.
func (h *HealthHandler) Check(c *gin.Context) {
	check := h.health.Check(c.Request.Context())

	status := http.StatusOK
	if check.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, check)
}

// Config handles GET /v1/config, admin only. Secrets are masked, never
// returned whole.
func (h *HealthHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, types.SuccessResponse(gin.H{
		"environment":       h.cfg.Server.Environment,
		"version":           h.cfg.Server.Version,
		"userStore":         h.cfg.UserStore,
		"placeCache":        h.cfg.Redis.Enabled,
		"canonicalCurrency": h.cfg.Currency.Canonical,
		"usdExchangeRate":   h.cfg.Currency.USDRate,
		"aiModel":           h.cfg.ExternalServices.AIModel,
		"googleMapsKey":     logger.MaskAPIKey(h.cfg.ExternalServices.GoogleMapsKey),
		"openRouterKey":     logger.MaskAPIKey(h.cfg.ExternalServices.OpenRouterKey),
	}))
}
