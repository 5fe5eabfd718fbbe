package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/validation"
)

// GoalService manages health goals and their derived progress.
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// GoalView is a goal plus its derived fields for display.
type GoalView struct {
	models.HealthGoal
	Progress      float64 `json:"progress"`
	DaysRemaining *int    `json:"days_remaining,omitempty"`
}

func view(g models.HealthGoal) GoalView {
	v := GoalView{HealthGoal: g, Progress: g.Progress()}
	if days, ok := g.DaysRemaining(); ok {
		v.DaysRemaining = &days
	}
	return v
}

// Create adds a goal. Deadline is optional; when present it must be an ISO
// date.
func (s *GoalService) Create(userID uuid.UUID, goalType string, target, current float64, deadline string) (*GoalView, error) {
	if goalType == "" {
		return nil, &ValidationError{Fields: map[string]validation.FieldResult{
			"goal_type": {Valid: false, Message: "Loại mục tiêu không được để trống"},
		}}
	}
	if deadline != "" {
		if ok, msg := validation.ValidateDate(deadline); !ok {
			return nil, &ValidationError{Fields: map[string]validation.FieldResult{
				"deadline": {Valid: false, Message: msg},
			}}
		}
	}

	goal := models.HealthGoal{
		UserID:       userID,
		GoalType:     goalType,
		TargetValue:  target,
		CurrentValue: current,
		Deadline:     deadline,
		Status:       models.GoalStatusActive,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}
	v := view(goal)
	return &v, nil
}

// List returns the user's goals, newest first.
func (s *GoalService) List(userID uuid.UUID) ([]GoalView, error) {
	var goals []models.HealthGoal
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, view(g))
	}
	return views, nil
}

// UpdateProgress sets the goal's current value, completing it when the
// target is reached.
func (s *GoalService) UpdateProgress(userID, goalID uuid.UUID, current float64) (*GoalView, error) {
	goal, err := s.get(userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.CurrentValue = current
	if goal.Status == models.GoalStatusActive && goal.Progress() >= 100 {
		goal.Status = models.GoalStatusCompleted
	}
	if err := s.db.Save(goal).Error; err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	v := view(*goal)
	return &v, nil
}

// SetStatus moves a goal between active/completed/abandoned.
func (s *GoalService) SetStatus(userID, goalID uuid.UUID, status string) (*GoalView, error) {
	switch status {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusAbandoned:
	default:
		return nil, &ValidationError{Fields: map[string]validation.FieldResult{
			"status": {Valid: false, Message: "Trạng thái không hợp lệ"},
		}}
	}
	goal, err := s.get(userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.Status = status
	if err := s.db.Save(goal).Error; err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}
	v := view(*goal)
	return &v, nil
}

// Delete soft-deletes a goal.
func (s *GoalService) Delete(userID, goalID uuid.UUID) error {
	goal, err := s.get(userID, goalID)
	if err != nil {
		return err
	}
	return s.db.Delete(goal).Error
}

func (s *GoalService) get(userID, goalID uuid.UUID) (*models.HealthGoal, error) {
	var goal models.HealthGoal
	err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
