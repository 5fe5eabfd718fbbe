package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar-date format used across all records.
const DateLayout = "2006-01-02"

// DefaultHeightCm is assumed when a user never set their height. Accepted
// degenerate default, not a validated invariant.
const DefaultHeightCm = 170.0

// Genders accepted on the profile. Empty means unspecified.
var Genders = []string{"Nam", "Nữ", "Khác"}

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"size:20;uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FullName     string         `gorm:"size:50;not null" json:"full_name"`
	HeightCm     float64        `gorm:"not null;default:170.0" json:"height_cm"`
	BirthDate    string         `gorm:"size:10" json:"birth_date,omitempty"`
	Gender       string         `gorm:"size:10" json:"gender,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HeightMeters converts the stored centimeter height for BMI math.
func (u *User) HeightMeters() float64 {
	return u.HeightCm / 100
}

// Age derives the user's age from the birth date. The second return is false
// when no birth date is set or it does not parse.
func (u *User) Age() (int, bool) {
	if u.BirthDate == "" {
		return 0, false
	}
	birth, err := time.Parse(DateLayout, u.BirthDate)
	if err != nil {
		return 0, false
	}
	now := time.Now()
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, true
}
