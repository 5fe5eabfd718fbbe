package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhle/healthtrack/backend/internal/validation"
)

func TestValidateHealthData(t *testing.T) {
	weight := 65.0
	badHeight := 10.0
	duration := 30
	date := "2025-01-15"

	results := validation.ValidateHealthData(&weight, &badHeight, &duration, &date)
	assert.Len(t, results, 4)
	assert.True(t, results["weight"].Valid)
	assert.False(t, results["height"].Valid)
	assert.True(t, results["duration"].Valid)
	assert.True(t, results["date"].Valid)

	failed := validation.Failures(results)
	assert.Len(t, failed, 1)
	assert.Contains(t, failed, "height")
}

func TestValidateHealthDataSkipsNilFields(t *testing.T) {
	weight := 70.0
	results := validation.ValidateHealthData(&weight, nil, nil, nil)
	assert.Len(t, results, 1)
	assert.Contains(t, results, "weight")
}

func TestValidateRegistration(t *testing.T) {
	height := 170.0
	results := validation.ValidateRegistration("abc", "secret123", "Nguyễn Văn An", &height)
	assert.Empty(t, validation.Failures(results))

	results = validation.ValidateRegistration("ab", "123", "X1", nil)
	failed := validation.Failures(results)
	assert.Len(t, failed, 3)
	assert.Contains(t, failed, "username")
	assert.Contains(t, failed, "password")
	assert.Contains(t, failed, "full_name")
	assert.NotContains(t, results, "height")
}
