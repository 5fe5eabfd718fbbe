package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/healthtrack/backend/internal/metrics"
)

func TestCaloriesBurned(t *testing.T) {
	tests := []struct {
		name         string
		activityType string
		duration     int
		intensity    string
		want         int
	}{
		{"walking medium", "Đi bộ", 30, "medium", 150},
		{"running high", "Chạy bộ", 30, "high", 360},
		{"yoga low", "Yoga", 60, "low", 180},
		{"jump rope medium", "Nhảy dây", 20, "medium", 220},
		{"unknown activity uses default rate", "Khiêu vũ", 30, "medium", 150},
		{"unknown intensity falls back to medium", "Gym", 30, "extreme", 210},
		{"empty intensity falls back to medium", "Đạp xe", 45, "", 360},
		{"zero duration", "Đi bộ", 0, "medium", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.CaloriesBurned(tt.activityType, tt.duration, tt.intensity))
		})
	}
}
