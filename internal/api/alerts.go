package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhle/healthtrack/backend/internal/alerts"
	"github.com/minhle/healthtrack/backend/internal/metrics"
	"github.com/minhle/healthtrack/backend/internal/service"
)

// AlertsHandler recomputes the user's alerts on every request. The current
// weight and BMI are looked up fresh; when the user has no weigh-ins yet the
// weight and BMI evaluators are skipped.
type AlertsHandler struct {
	system *alerts.System
	health *service.HealthService
}

func NewAlertsHandler(system *alerts.System, health *service.HealthService) *AlertsHandler {
	return &AlertsHandler{system: system, health: health}
}

func (h *AlertsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/alerts", h.List)
}

func (h *AlertsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var currentWeight, currentBMI *float64
	if weight, ok := h.health.CurrentWeight(userID); ok {
		heightM := h.health.UserHeight(userID) / 100
		bmi := metrics.CalculateBMI(weight, heightM)
		currentWeight = &weight
		currentBMI = &bmi
	}

	list := h.system.AllAlerts(userID, currentWeight, currentBMI)
	if list == nil {
		list = []alerts.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": list})
}
