package database

import (
	"gorm.io/gorm"

	"github.com/minhle/healthtrack/backend/internal/models"
)

// RunMigrations brings the schema up to date. GORM auto-migration covers
// both drivers here; there is no DDL that needs hand-written SQL.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WeightRecord{},
		&models.ActivityRecord{},
		&models.SleepRecord{},
		&models.HeartRateRecord{},
		&models.HealthGoal{},
	)
}
