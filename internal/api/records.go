package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minhle/healthtrack/backend/internal/service"
)

type AddWeightRequest struct {
	Weight float64 `json:"weight" binding:"required"`
	Date   string  `json:"date"`
	Notes  string  `json:"notes"`
}

type AddActivityRequest struct {
	ActivityType string `json:"activity_type" binding:"required"`
	DurationMin  int    `json:"duration_min" binding:"required"`
	Intensity    string `json:"intensity"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
	Calories     *int   `json:"calories"`
}

type AddSleepRequest struct {
	SleepHours   float64 `json:"sleep_hours" binding:"required"`
	SleepQuality string  `json:"sleep_quality"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
}

type AddHeartRateRequest struct {
	BPM             int    `json:"bpm" binding:"required"`
	ActivityContext string `json:"activity_context"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Notes           string `json:"notes"`
}

// RecordsHandler exposes the measurement read/write endpoints.
type RecordsHandler struct {
	health *service.HealthService
}

func NewRecordsHandler(health *service.HealthService) *RecordsHandler {
	return &RecordsHandler{health: health}
}

func (h *RecordsHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/records")
	{
		records.POST("/weight", h.AddWeight)
		records.GET("/weight", h.ListWeight)
		records.GET("/weight/history", h.WeightHistory)
		records.POST("/activity", h.AddActivity)
		records.GET("/activity", h.ListActivity)
		records.POST("/sleep", h.AddSleep)
		records.GET("/sleep", h.ListSleep)
		records.POST("/heart-rate", h.AddHeartRate)
		records.GET("/heart-rate", h.ListHeartRate)
	}
}

// daysParam reads the trailing-window size, defaulting to 30.
func daysParam(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		return 30
	}
	return days
}

func (h *RecordsHandler) AddWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req AddWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bmi, err := h.health.AddWeightRecord(userID, req.Weight, req.Date, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bmi": bmi})
}

func (h *RecordsHandler) ListWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.health.WeightRecords(userID, daysParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) WeightHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}
	records, err := h.health.WeightHistory(userID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) AddActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.health.AddActivity(userID, req.ActivityType, req.DurationMin, req.Intensity, req.Date, req.Notes, req.Calories)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *RecordsHandler) ListActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.health.Activities(userID, daysParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) AddSleep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req AddSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.health.AddSleepRecord(userID, req.SleepHours, req.SleepQuality, req.Date, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *RecordsHandler) ListSleep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.health.SleepRecords(userID, daysParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) AddHeartRate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req AddHeartRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.health.AddHeartRateRecord(userID, req.BPM, req.ActivityContext, req.Date, req.Time, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *RecordsHandler) ListHeartRate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	records, err := h.health.HeartRateRecords(userID, daysParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
