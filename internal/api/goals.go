package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minhle/healthtrack/backend/internal/service"
)

type CreateGoalRequest struct {
	GoalType     string  `json:"goal_type" binding:"required"`
	TargetValue  float64 `json:"target_value" binding:"required"`
	CurrentValue float64 `json:"current_value"`
	Deadline     string  `json:"deadline"`
}

type UpdateGoalRequest struct {
	CurrentValue *float64 `json:"current_value"`
	Status       *string  `json:"status"`
}

type GoalsHandler struct {
	goals *service.GoalService
}

func NewGoalsHandler(goals *service.GoalService) *GoalsHandler {
	return &GoalsHandler{goals: goals}
}

func (h *GoalsHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.PUT("/:id", h.Update)
		goals.DELETE("/:id", h.Delete)
	}
}

func (h *GoalsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goals, err := h.goals.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalsHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	goal, err := h.goals.Create(userID, req.GoalType, req.TargetValue, req.CurrentValue, req.Deadline)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (h *GoalsHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var goal *service.GoalView
	switch {
	case req.CurrentValue != nil:
		goal, err = h.goals.UpdateProgress(userID, goalID, *req.CurrentValue)
	case req.Status != nil:
		goal, err = h.goals.SetStatus(userID, goalID, *req.Status)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *GoalsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	if err := h.goals.Delete(userID, goalID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
