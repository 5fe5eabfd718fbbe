package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityTypes is the fixed set of loggable activities.
var ActivityTypes = []string{
	"Đi bộ", "Chạy bộ", "Đạp xe", "Bơi lội",
	"Gym", "Yoga", "Nhảy dây", "Leo cầu thang",
}

// Intensities for an activity session.
var Intensities = []string{"low", "medium", "high"}

// SleepQualities is the 5-point quality scale, best to worst.
var SleepQualities = []string{"Rất tốt", "Tốt", "Trung bình", "Không tốt", "Rất không tốt"}

// HeartRateContexts tags what the user was doing when the reading was taken.
var HeartRateContexts = []string{"Nghỉ ngơi", "Nhẹ", "Vừa", "Mạnh", "Tập luyện"}

// HeartRateContextResting is the context that makes an elevated reading
// clinically interesting.
const HeartRateContextResting = "Nghỉ ngơi"

// WeightRecord is one weigh-in. A user gets at most one per calendar date;
// writes for an existing date replace the earlier record. BMI is computed
// from the height stored at write time and is never recomputed afterwards.
type WeightRecord struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_weight_user_date" json:"user_id"`
	RecordDate string    `gorm:"size:10;not null;uniqueIndex:idx_weight_user_date" json:"record_date"`
	Weight     float64   `gorm:"not null" json:"weight"`
	BMI        float64   `json:"bmi"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
}

func (r *WeightRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ActivityRecord is one exercise session. Plain insert, no uniqueness.
type ActivityRecord struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ActivityDate   string    `gorm:"size:10;not null" json:"activity_date"`
	ActivityType   string    `gorm:"size:30;not null" json:"activity_type"`
	DurationMin    int       `gorm:"not null" json:"duration_min"`
	CaloriesBurned int       `json:"calories_burned"`
	Intensity      string    `gorm:"size:10" json:"intensity,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
}

func (r *ActivityRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// CaloriesPerMinute averages the burn over the session.
func (r *ActivityRecord) CaloriesPerMinute() float64 {
	if r.DurationMin <= 0 {
		return 0
	}
	return float64(r.CaloriesBurned) / float64(r.DurationMin)
}

// SleepRecord is one night of sleep.
type SleepRecord struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecordDate   string    `gorm:"size:10;not null" json:"record_date"`
	SleepHours   float64   `gorm:"not null" json:"sleep_hours"`
	SleepQuality string    `gorm:"size:20" json:"sleep_quality"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
}

func (r *SleepRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// HeartRateRecord is one pulse reading, with a time of day and the activity
// context the reading was taken in.
type HeartRateRecord struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RecordDate      string    `gorm:"size:10;not null" json:"record_date"`
	RecordTime      string    `gorm:"size:8" json:"record_time"`
	BPM             int       `gorm:"not null" json:"bpm"`
	ActivityContext string    `gorm:"size:20" json:"activity_context"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
}

func (r *HeartRateRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
