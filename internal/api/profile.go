package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhle/healthtrack/backend/internal/service"
)

type UpdateProfileRequest struct {
	FullName  *string  `json:"full_name"`
	HeightCm  *float64 `json:"height_cm"`
	BirthDate *string  `json:"birth_date"`
	Gender    *string  `json:"gender"`
}

type ProfileHandler struct {
	profile *service.ProfileService
}

func NewProfileHandler(profile *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.profile.Get(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.profile.Update(userID, service.ProfileUpdate{
		FullName:  req.FullName,
		HeightCm:  req.HeightCm,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
