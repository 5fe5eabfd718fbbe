package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/validation"
)

// ProfileService reads and updates the user profile. Changing height only
// affects BMI on future weigh-ins; historical records keep the BMI computed
// when they were written.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get retrieves a user by id.
func (s *ProfileService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable fields; nil pointers are left alone.
type ProfileUpdate struct {
	FullName  *string
	HeightCm  *float64
	BirthDate *string
	Gender    *string
}

// Update validates and applies the provided fields.
func (s *ProfileService) Update(userID uuid.UUID, in ProfileUpdate) (*models.User, error) {
	results := make(map[string]validation.FieldResult)
	if in.FullName != nil {
		ok, msg := validation.ValidateFullName(*in.FullName)
		results["full_name"] = validation.FieldResult{Valid: ok, Message: msg}
	}
	if in.HeightCm != nil {
		ok, msg := validation.ValidateHeight(*in.HeightCm)
		results["height"] = validation.FieldResult{Valid: ok, Message: msg}
	}
	if in.BirthDate != nil {
		ok, msg := validation.ValidateBirthDate(*in.BirthDate)
		results["birth_date"] = validation.FieldResult{Valid: ok, Message: msg}
	}
	if in.Gender != nil {
		ok, msg := validation.ValidateGender(*in.Gender)
		results["gender"] = validation.FieldResult{Valid: ok, Message: msg}
	}
	if verr := NewValidationError(results); verr != nil {
		return nil, verr
	}

	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.HeightCm != nil {
		user.HeightCm = *in.HeightCm
	}
	if in.BirthDate != nil {
		user.BirthDate = *in.BirthDate
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return user, nil
}
