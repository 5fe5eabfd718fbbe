package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhle/healthtrack/backend/internal/alerts"
	"github.com/minhle/healthtrack/backend/internal/metrics"
	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/service"
)

// DashboardResponse is the at-a-glance summary the client opens on.
type DashboardResponse struct {
	CurrentWeight   *float64             `json:"current_weight,omitempty"`
	BMI             *float64             `json:"bmi,omitempty"`
	BMICategory     *metrics.BMICategory `json:"bmi_category,omitempty"`
	Recommendations []string             `json:"recommendations,omitempty"`
	IdealWeight     metrics.WeightRange  `json:"ideal_weight"`
	WeeklyMinutes   int                  `json:"weekly_activity_minutes"`
	SleepStatus     string               `json:"sleep_status,omitempty"`
	HeartRateStatus string               `json:"heart_rate_status,omitempty"`
	HealthScore     *int                 `json:"health_score,omitempty"`
	Alerts          []alerts.Alert       `json:"alerts"`
}

type DashboardHandler struct {
	system *alerts.System
	health *service.HealthService
}

func NewDashboardHandler(system *alerts.System, health *service.HealthService) *DashboardHandler {
	return &DashboardHandler{system: system, health: health}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Summary)
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	heightM := h.health.UserHeight(userID) / 100
	resp := DashboardResponse{
		IdealWeight: metrics.IdealWeightRange(heightM),
	}

	var currentWeight, currentBMI *float64
	if weight, ok := h.health.CurrentWeight(userID); ok {
		bmi := metrics.CalculateBMI(weight, heightM)
		category := metrics.CategorizeBMI(bmi)
		recs := metrics.HealthRecommendations(bmi)
		if len(recs) > 3 {
			recs = recs[:3]
		}
		resp.CurrentWeight = &weight
		resp.BMI = &bmi
		resp.BMICategory = &category
		resp.Recommendations = recs
		currentWeight = &weight
		currentBMI = &bmi
	}

	// Degrade quietly on read errors: the dashboard shows whatever partial
	// data is available.
	if minutes, err := h.health.WeeklyActivityMinutes(userID); err == nil {
		resp.WeeklyMinutes = minutes
	}

	var latestSleepHours float64
	if sleeps, err := h.health.SleepRecords(userID, 7); err == nil && len(sleeps) > 0 {
		latestSleepHours = sleeps[0].SleepHours
		resp.SleepStatus = metrics.SleepStatus(latestSleepHours)
	}

	var restingBPM int
	if latest, err := h.health.LatestHeartRate(userID); err == nil && latest != nil {
		restingBPM = latest.BPM
		resp.HeartRateStatus = metrics.HeartRateStatus(latest.BPM)
	}

	if currentBMI != nil {
		todayMinutes, err := h.health.DailyActivityMinutes(userID, time.Now().Format(models.DateLayout))
		if err != nil {
			todayMinutes = 0
		}
		score := metrics.HealthScore(*currentBMI, todayMinutes, latestSleepHours, restingBPM)
		resp.HealthScore = &score
	}

	resp.Alerts = h.system.AllAlerts(userID, currentWeight, currentBMI)
	if resp.Alerts == nil {
		resp.Alerts = []alerts.Alert{}
	}

	c.JSON(http.StatusOK, resp)
}
