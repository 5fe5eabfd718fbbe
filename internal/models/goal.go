package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal statuses.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

// HealthGoal is a target the user works toward (weight, weekly minutes, ...).
type HealthGoal struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	GoalType     string         `gorm:"size:30;not null" json:"goal_type"`
	TargetValue  float64        `gorm:"not null" json:"target_value"`
	CurrentValue float64        `json:"current_value"`
	Deadline     string         `gorm:"size:10" json:"deadline,omitempty"`
	Status       string         `gorm:"size:10;not null;default:'active'" json:"status"`
}

func (g *HealthGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Progress is current/target as a percentage, clamped to [0,100].
func (g *HealthGoal) Progress() float64 {
	if g.TargetValue == 0 {
		return 0
	}
	p := g.CurrentValue / g.TargetValue * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// DaysRemaining counts days until the deadline, floored at 0. The second
// return is false when no deadline is set or it does not parse.
func (g *HealthGoal) DaysRemaining() (int, bool) {
	if g.Deadline == "" {
		return 0, false
	}
	deadline, err := time.Parse(DateLayout, g.Deadline)
	if err != nil {
		return 0, false
	}
	remaining := int(time.Until(deadline).Hours() / 24)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}
