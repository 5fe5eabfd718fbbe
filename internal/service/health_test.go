package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/healthtrack/backend/internal/alerts"
	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/service"
	"github.com/minhle/healthtrack/backend/internal/testhelpers"
)

// The alert engine reads through the health service.
var _ alerts.Store = (*service.HealthService)(nil)

func dateDaysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(models.DateLayout)
}

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func TestAddWeightRecordComputesBMI(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "weightuser", "secret123")
	svc := service.NewHealthService(db, nil)

	bmi, err := svc.AddWeightRecord(user.ID, 65, "", "")
	require.NoError(t, err)
	assert.Equal(t, 22.5, bmi)

	records, err := svc.WeightRecords(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 65.0, records[0].Weight)
	assert.Equal(t, 22.5, records[0].BMI)
}

func TestAddWeightRecordUpsertsSameDay(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "upsertuser", "secret123")
	svc := service.NewHealthService(db, nil)

	today := time.Now().Format(models.DateLayout)

	_, err := svc.AddWeightRecord(user.ID, 70, today, "morning")
	require.NoError(t, err)
	_, err = svc.AddWeightRecord(user.ID, 71, today, "evening")
	require.NoError(t, err)

	records, err := svc.WeightRecords(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, records, 1, "same-day weigh-in must replace, not append")
	assert.Equal(t, 71.0, records[0].Weight)
	assert.Equal(t, "evening", records[0].Notes)
}

func TestAddWeightRecordValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "badweight", "secret123")
	svc := service.NewHealthService(db, nil)

	_, err := svc.AddWeightRecord(user.ID, 10, "", "")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "weight")

	_, err = svc.AddWeightRecord(user.ID, 65, "15-01-2025", "")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "date")
}

func TestAddWeightRecordUsesDefaultHeightForUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewHealthService(db, nil)

	// No such user: the 170 cm default applies.
	bmi, err := svc.AddWeightRecord(newUUID(t), 65, "", "")
	require.NoError(t, err)
	assert.Equal(t, 22.5, bmi)
}

func TestAddActivityEstimatesCalories(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "activeuser", "secret123")
	svc := service.NewHealthService(db, nil)

	record, err := svc.AddActivity(user.ID, "Chạy bộ", 30, "high", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, 360, record.CaloriesBurned)
	assert.Equal(t, "high", record.Intensity)

	// Caller-supplied calories win over the estimate.
	calories := 500
	record, err = svc.AddActivity(user.ID, "Chạy bộ", 30, "high", "", "", &calories)
	require.NoError(t, err)
	assert.Equal(t, 500, record.CaloriesBurned)

	// Empty intensity defaults to medium.
	record, err = svc.AddActivity(user.ID, "Đi bộ", 30, "", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "medium", record.Intensity)
	assert.Equal(t, 150, record.CaloriesBurned)
}

func TestAddActivityValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "invalidact", "secret123")
	svc := service.NewHealthService(db, nil)

	var verr *service.ValidationError

	_, err := svc.AddActivity(user.ID, "Khiêu vũ", 30, "medium", "", "", nil)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "activity_type")

	_, err = svc.AddActivity(user.ID, "Đi bộ", 0, "medium", "", "", nil)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "duration")

	_, err = svc.AddActivity(user.ID, "Đi bộ", 30, "extreme", "", "", nil)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "intensity")
}

func TestAddSleepRecord(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "sleepuser", "secret123")
	svc := service.NewHealthService(db, nil)

	record, err := svc.AddSleepRecord(user.ID, 7.5, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Trung bình", record.SleepQuality)

	var verr *service.ValidationError
	_, err = svc.AddSleepRecord(user.ID, 25, "Tốt", "", "")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sleep_hours")

	_, err = svc.AddSleepRecord(user.ID, 7, "amazing", "", "")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sleep_quality")
}

func TestAddHeartRateRecord(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "hruser", "secret123")
	svc := service.NewHealthService(db, nil)

	record, err := svc.AddHeartRateRecord(user.ID, 72, "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.HeartRateContextResting, record.ActivityContext)
	assert.NotEmpty(t, record.RecordTime)

	var verr *service.ValidationError
	_, err = svc.AddHeartRateRecord(user.ID, 250, "", "", "", "")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "bpm")

	_, err = svc.AddHeartRateRecord(user.ID, 72, "Đang bay", "", "", "")
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "activity_context")
}

func TestWeightRecordsWindowAndOrder(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "windowuser", "secret123")
	svc := service.NewHealthService(db, nil)

	for i, w := range []float64{65, 66, 67, 68} {
		_, err := svc.AddWeightRecord(user.ID, w, dateDaysAgo(i*3), "")
		require.NoError(t, err)
	}

	records, err := svc.WeightRecords(user.ID, 7)
	require.NoError(t, err)
	require.Len(t, records, 3, "the 9-day-old record falls outside the window")
	assert.Equal(t, 65.0, records[0].Weight)
	assert.Equal(t, 66.0, records[1].Weight)
	assert.Equal(t, 67.0, records[2].Weight)
}

func TestWeightHistoryRange(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "historyuser", "secret123")
	svc := service.NewHealthService(db, nil)

	_, err := svc.AddWeightRecord(user.ID, 65, "2025-01-10", "")
	require.NoError(t, err)
	_, err = svc.AddWeightRecord(user.ID, 66, "2025-01-15", "")
	require.NoError(t, err)
	_, err = svc.AddWeightRecord(user.ID, 67, "2025-01-20", "")
	require.NoError(t, err)

	records, err := svc.WeightHistory(user.ID, "2025-01-10", "2025-01-15")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 66.0, records[0].Weight)
	assert.Equal(t, 65.0, records[1].Weight)
}

func TestWeeklyActivityMinutes(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "minutesuser", "secret123")
	svc := service.NewHealthService(db, nil)

	minutes, err := svc.WeeklyActivityMinutes(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = svc.AddActivity(user.ID, "Đi bộ", 40, "medium", dateDaysAgo(1), "", nil)
	require.NoError(t, err)
	_, err = svc.AddActivity(user.ID, "Gym", 60, "medium", dateDaysAgo(3), "", nil)
	require.NoError(t, err)
	// Outside the trailing week.
	_, err = svc.AddActivity(user.ID, "Đi bộ", 90, "medium", dateDaysAgo(10), "", nil)
	require.NoError(t, err)

	minutes, err = svc.WeeklyActivityMinutes(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, minutes)

	daily, err := svc.DailyActivityMinutes(user.ID, dateDaysAgo(1))
	require.NoError(t, err)
	assert.Equal(t, 40, daily)
}

func TestLatestHeartRate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "latesthr", "secret123")
	svc := service.NewHealthService(db, nil)

	latest, err := svc.LatestHeartRate(user.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = svc.AddHeartRateRecord(user.ID, 65, "", dateDaysAgo(1), "08:00", "")
	require.NoError(t, err)
	_, err = svc.AddHeartRateRecord(user.ID, 80, "", dateDaysAgo(0), "07:00", "")
	require.NoError(t, err)
	_, err = svc.AddHeartRateRecord(user.ID, 90, "", dateDaysAgo(0), "09:00", "")
	require.NoError(t, err)

	latest, err = svc.LatestHeartRate(user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 90, latest.BPM)
}

func TestCurrentWeight(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "currentweight", "secret123")
	svc := service.NewHealthService(db, nil)

	_, ok := svc.CurrentWeight(user.ID)
	assert.False(t, ok)

	_, err := svc.AddWeightRecord(user.ID, 64, dateDaysAgo(2), "")
	require.NoError(t, err)
	_, err = svc.AddWeightRecord(user.ID, 66, dateDaysAgo(0), "")
	require.NoError(t, err)

	weight, ok := svc.CurrentWeight(user.ID)
	assert.True(t, ok)
	assert.Equal(t, 66.0, weight)
}

func TestUserHeightFallback(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewHealthService(db, nil)

	assert.Equal(t, 170.0, svc.UserHeight(newUUID(t)))

	user := testhelpers.CreateTestUser(t, db, "talluser", "secret123")
	user.HeightCm = 182
	require.NoError(t, db.Save(user).Error)
	assert.Equal(t, 182.0, svc.UserHeight(user.ID))
}
