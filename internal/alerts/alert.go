// Package alerts turns recent time-series health readings into a prioritized
// list of alert records. Alerts are recomputed on every request and never
// persisted.
package alerts

import (
	"github.com/google/uuid"

	"github.com/minhle/healthtrack/backend/internal/models"
)

// Level is an alert severity. Levels are totally ordered: critical sorts
// before danger, danger before warning, and so on.
type Level string

const (
	LevelCritical Level = "critical"
	LevelDanger   Level = "danger"
	LevelWarning  Level = "warning"
	LevelInfo     Level = "info"
	LevelSuccess  Level = "success"
)

// levelPriority drives the aggregator sort; unknown levels sort last.
var levelPriority = map[Level]int{
	LevelCritical: 0,
	LevelDanger:   1,
	LevelWarning:  2,
	LevelInfo:     3,
	LevelSuccess:  4,
}

func (l Level) priority() int {
	if p, ok := levelPriority[l]; ok {
		return p
	}
	return 5
}

// Alert kinds.
const (
	TypeWeightChange      = "weight_change"
	TypeRapidWeightLoss   = "rapid_weight_loss"
	TypeRapidWeightGain   = "rapid_weight_gain"
	TypeBMIRisk           = "bmi_risk"
	TypeCriticalBMILow    = "critical_bmi_low"
	TypeCriticalBMIHigh   = "critical_bmi_high"
	TypeNoActivity        = "no_activity"
	TypeInactive          = "inactive"
	TypeActiveGoal        = "active_achievement"
	TypeNoDataWeek        = "no_data_week"
	TypeLowFrequency      = "low_frequency"
	TypeInsufficientSleep = "insufficient_sleep"
	TypeLowSleep          = "low_sleep"
	TypeExcessiveSleep    = "excessive_sleep"
	TypePoorSleepQuality  = "poor_sleep_quality"
	TypeBradycardia       = "bradycardia"
	TypeLowHeartRate      = "low_heart_rate"
	TypeTachycardia       = "tachycardia"
	TypeElevatedResting   = "elevated_resting_heart_rate"
	TypeHeartRateSpike    = "heart_rate_spike"
)

// Alert is one rule firing. It has no stored identity and no lifecycle
// beyond the aggregation call that produced it.
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Level   Level  `json:"level"`
	Icon    string `json:"icon,omitempty"`
}

// Store is the read side of the persistence collaborator the evaluators
// fetch their windows from. All record slices are ordered most-recent-first.
type Store interface {
	WeightRecords(userID uuid.UUID, days int) ([]models.WeightRecord, error)
	SleepRecords(userID uuid.UUID, days int) ([]models.SleepRecord, error)
	HeartRateRecords(userID uuid.UUID, days int) ([]models.HeartRateRecord, error)
	LatestHeartRate(userID uuid.UUID) (*models.HeartRateRecord, error)
	WeeklyActivityMinutes(userID uuid.UUID) (int, error)
}
