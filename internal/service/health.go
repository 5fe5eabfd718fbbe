package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minhle/healthtrack/backend/internal/metrics"
	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/validation"
)

// HealthService owns all measurement reads and writes. Its read side is the
// persistence collaborator the alert engine consumes: window queries ordered
// most-recent-first, with calendar-day cutoffs.
type HealthService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHealthService(db *gorm.DB, logger *zap.Logger) *HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{db: db, logger: logger}
}

func today() string {
	return time.Now().Format(models.DateLayout)
}

func cutoff(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(models.DateLayout)
}

// ---------- writes ----------

// AddWeightRecord upserts the weigh-in for (user, date) and returns the BMI
// computed from the user's stored height at write time. A later write for
// the same date replaces the earlier one.
func (s *HealthService) AddWeightRecord(userID uuid.UUID, weight float64, date, notes string) (float64, error) {
	if date == "" {
		date = today()
	}
	results := validation.ValidateHealthData(&weight, nil, nil, &date)
	if verr := NewValidationError(results); verr != nil {
		return 0, verr
	}

	heightCm := s.UserHeight(userID)
	bmi := metrics.CalculateBMI(weight, heightCm/100)

	record := models.WeightRecord{
		UserID:     userID,
		RecordDate: date,
		Weight:     weight,
		BMI:        bmi,
		Notes:      notes,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight", "bmi", "notes", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return 0, fmt.Errorf("adding weight record: %w", err)
	}

	s.logger.Info("weight record added",
		zap.String("user_id", userID.String()),
		zap.Float64("weight", weight),
		zap.Float64("bmi", bmi))
	return bmi, nil
}

// AddActivity inserts an exercise session. When the caller does not supply a
// calorie figure it is estimated from the rate table.
func (s *HealthService) AddActivity(userID uuid.UUID, activityType string, durationMin int, intensity, date, notes string, calories *int) (*models.ActivityRecord, error) {
	if date == "" {
		date = today()
	}
	if intensity == "" {
		intensity = "medium"
	}

	results := validation.ValidateHealthData(nil, nil, &durationMin, &date)
	ok, msg := validation.ValidateActivityType(activityType)
	results["activity_type"] = validation.FieldResult{Valid: ok, Message: msg}
	ok, msg = validation.ValidateIntensity(intensity)
	results["intensity"] = validation.FieldResult{Valid: ok, Message: msg}
	if verr := NewValidationError(results); verr != nil {
		return nil, verr
	}

	burned := metrics.CaloriesBurned(activityType, durationMin, intensity)
	if calories != nil {
		burned = *calories
	}

	record := models.ActivityRecord{
		UserID:         userID,
		ActivityDate:   date,
		ActivityType:   activityType,
		DurationMin:    durationMin,
		CaloriesBurned: burned,
		Intensity:      intensity,
		Notes:          notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("adding activity: %w", err)
	}
	return &record, nil
}

// AddSleepRecord inserts one night of sleep.
func (s *HealthService) AddSleepRecord(userID uuid.UUID, hours float64, quality, date, notes string) (*models.SleepRecord, error) {
	if date == "" {
		date = today()
	}
	if quality == "" {
		quality = "Trung bình"
	}

	results := validation.ValidateHealthData(nil, nil, nil, &date)
	if hours < 0 || hours > 24 {
		results["sleep_hours"] = validation.FieldResult{Valid: false, Message: "Giờ ngủ phải từ 0-24"}
	}
	if !containsString(models.SleepQualities, quality) {
		results["sleep_quality"] = validation.FieldResult{Valid: false, Message: "Chất lượng giấc ngủ không hợp lệ"}
	}
	if verr := NewValidationError(results); verr != nil {
		return nil, verr
	}

	record := models.SleepRecord{
		UserID:       userID,
		RecordDate:   date,
		SleepHours:   hours,
		SleepQuality: quality,
		Notes:        notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("adding sleep record: %w", err)
	}
	return &record, nil
}

// AddHeartRateRecord inserts one pulse reading.
func (s *HealthService) AddHeartRateRecord(userID uuid.UUID, bpm int, contextTag, date, timeOfDay, notes string) (*models.HeartRateRecord, error) {
	if date == "" {
		date = today()
	}
	if timeOfDay == "" {
		timeOfDay = time.Now().Format("15:04:05")
	}
	if contextTag == "" {
		contextTag = models.HeartRateContextResting
	}

	results := validation.ValidateHealthData(nil, nil, nil, &date)
	if bpm < 30 || bpm > 200 {
		results["bpm"] = validation.FieldResult{Valid: false, Message: "Nhịp tim phải từ 30-200 BPM"}
	}
	if !containsString(models.HeartRateContexts, contextTag) {
		results["activity_context"] = validation.FieldResult{Valid: false, Message: "Loại hoạt động không hợp lệ"}
	}
	if verr := NewValidationError(results); verr != nil {
		return nil, verr
	}

	record := models.HeartRateRecord{
		UserID:          userID,
		RecordDate:      date,
		RecordTime:      timeOfDay,
		BPM:             bpm,
		ActivityContext: contextTag,
		Notes:           notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("adding heart rate record: %w", err)
	}
	return &record, nil
}

// ---------- reads ----------

// WeightRecords returns the trailing window of weigh-ins, newest first.
func (s *HealthService) WeightRecords(userID uuid.UUID, days int) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := s.db.
		Where("user_id = ? AND record_date >= ?", userID, cutoff(days)).
		Order("record_date DESC").
		Find(&records).Error
	return records, err
}

// WeightHistory returns weigh-ins between two dates inclusive, newest first.
func (s *HealthService) WeightHistory(userID uuid.UUID, from, to string) ([]models.WeightRecord, error) {
	var records []models.WeightRecord
	err := s.db.
		Where("user_id = ? AND record_date BETWEEN ? AND ?", userID, from, to).
		Order("record_date DESC").
		Find(&records).Error
	return records, err
}

// Activities returns the trailing window of sessions, newest first.
func (s *HealthService) Activities(userID uuid.UUID, days int) ([]models.ActivityRecord, error) {
	var records []models.ActivityRecord
	err := s.db.
		Where("user_id = ? AND activity_date >= ?", userID, cutoff(days)).
		Order("activity_date DESC").
		Find(&records).Error
	return records, err
}

// SleepRecords returns the trailing window of nights, newest first.
func (s *HealthService) SleepRecords(userID uuid.UUID, days int) ([]models.SleepRecord, error) {
	var records []models.SleepRecord
	err := s.db.
		Where("user_id = ? AND record_date >= ?", userID, cutoff(days)).
		Order("record_date DESC").
		Find(&records).Error
	return records, err
}

// HeartRateRecords returns the trailing window of readings, newest first.
func (s *HealthService) HeartRateRecords(userID uuid.UUID, days int) ([]models.HeartRateRecord, error) {
	var records []models.HeartRateRecord
	err := s.db.
		Where("user_id = ? AND record_date >= ?", userID, cutoff(days)).
		Order("record_date DESC, record_time DESC").
		Find(&records).Error
	return records, err
}

// LatestHeartRate returns the most recent reading, or nil when none exists.
func (s *HealthService) LatestHeartRate(userID uuid.UUID) (*models.HeartRateRecord, error) {
	var record models.HeartRateRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("record_date DESC, record_time DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// WeeklyActivityMinutes sums session minutes over the trailing 7 days.
func (s *HealthService) WeeklyActivityMinutes(userID uuid.UUID) (int, error) {
	var total int
	err := s.db.Model(&models.ActivityRecord{}).
		Where("user_id = ? AND activity_date >= ?", userID, cutoff(7)).
		Select("COALESCE(SUM(duration_min), 0)").
		Scan(&total).Error
	return total, err
}

// DailyActivityMinutes sums session minutes on one date.
func (s *HealthService) DailyActivityMinutes(userID uuid.UUID, date string) (int, error) {
	var total int
	err := s.db.Model(&models.ActivityRecord{}).
		Where("user_id = ? AND activity_date = ?", userID, date).
		Select("COALESCE(SUM(duration_min), 0)").
		Scan(&total).Error
	return total, err
}

// CurrentWeight returns the latest weigh-in; the second return is false when
// the user has none. Fetch errors degrade to absent, logged.
func (s *HealthService) CurrentWeight(userID uuid.UUID) (float64, bool) {
	var record models.WeightRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("record_date DESC").
		First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("current weight fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return 0, false
	}
	return record.Weight, true
}

// UserHeight returns the user's height in cm, falling back to the 170.0
// default on a missing user or fetch error. Accepted degenerate default.
func (s *HealthService) UserHeight(userID uuid.UUID) float64 {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("user height fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return models.DefaultHeightCm
	}
	if user.HeightCm <= 0 {
		return models.DefaultHeightCm
	}
	return user.HeightCm
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
