package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/healthtrack/backend/internal/metrics"
)

func TestHeartRateStatus(t *testing.T) {
	tests := []struct {
		bpm  int
		want string
	}{
		{39, metrics.HeartRateTooSlow},
		{40, metrics.HeartRateSlow},
		{59, metrics.HeartRateSlow},
		{60, metrics.HeartRateNormal},
		{100, metrics.HeartRateNormal},
		{101, metrics.HeartRateSlightlyFast},
		{120, metrics.HeartRateSlightlyFast},
		{121, metrics.HeartRateTooFast},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, metrics.HeartRateStatus(tt.bpm), "bpm=%d", tt.bpm)
	}
}

func TestSleepStatus(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{5.9, metrics.SleepInsufficient},
		{6.0, metrics.SleepSlightlyInsufficient},
		{6.9, metrics.SleepSlightlyInsufficient},
		{7.0, metrics.SleepNormal},
		{9.0, metrics.SleepNormal},
		{9.1, metrics.SleepExcessive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, metrics.SleepStatus(tt.hours), "hours=%v", tt.hours)
	}
}
