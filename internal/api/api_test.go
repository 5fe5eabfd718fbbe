package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhle/healthtrack/backend/internal/alerts"
	"github.com/minhle/healthtrack/backend/internal/api"
	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/router"
	"github.com/minhle/healthtrack/backend/internal/service"
	"github.com/minhle/healthtrack/backend/internal/testhelpers"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authService := service.NewAuthService(db, nil, "test-secret", nil)
	healthService := service.NewHealthService(db, nil)
	alertSystem := alerts.NewSystem(healthService, nil)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Records:   api.NewRecordsHandler(healthService),
		Alerts:    api.NewAlertsHandler(alertSystem, healthService),
		Dashboard: api.NewDashboardHandler(alertSystem, healthService),
		Profile:   api.NewProfileHandler(service.NewProfileService(db)),
		Goals:     api.NewGoalsHandler(service.NewGoalService(db)),
	}
	return router.SetupRouter(handlers, authService, nil)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, engine *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  username,
		"password":  "secret123",
		"full_name": "Người Dùng Test",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func fetchAlerts(t *testing.T, engine *gin.Engine, token string) []alerts.Alert {
	t.Helper()
	w := doJSON(t, engine, http.MethodGet, "/api/v1/alerts", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Alerts []alerts.Alert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Alerts
}

func filterType(list []alerts.Alert, typ string) []alerts.Alert {
	var out []alerts.Alert
	for _, a := range list {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

func TestWeightChangeAlertEndToEnd(t *testing.T) {
	engine := setupAPI(t)
	token := registerUser(t, engine, "endtoend")

	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format(models.DateLayout)
	}

	w := doJSON(t, engine, http.MethodPost, "/api/v1/records/weight", token,
		gin.H{"weight": 65, "date": day(-2)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPost, "/api/v1/records/weight", token,
		gin.H{"weight": 66, "date": day(-1)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 65 → 66 is within the daily threshold.
	list := fetchAlerts(t, engine, token)
	assert.Empty(t, filterType(list, "weight_change"))

	w = doJSON(t, engine, http.MethodPost, "/api/v1/records/weight", token,
		gin.H{"weight": 69, "date": day(0)})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 66 → 69 jumps more than 2 kg: exactly one warning.
	list = fetchAlerts(t, engine, token)
	changes := filterType(list, "weight_change")
	require.Len(t, changes, 1)
	assert.Equal(t, alerts.LevelWarning, changes[0].Level)
}

func TestAddWeightReturnsBMI(t *testing.T) {
	engine := setupAPI(t)
	token := registerUser(t, engine, "bmiuser")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/records/weight", token, gin.H{"weight": 65})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		BMI float64 `json:"bmi"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 22.5, resp.BMI)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := setupAPI(t)

	for _, path := range []string{
		"/api/v1/records/weight",
		"/api/v1/alerts",
		"/api/v1/dashboard",
		"/api/v1/profile",
		"/api/v1/goals",
	} {
		w := doJSON(t, engine, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = doJSON(t, engine, http.MethodGet, path, "garbage-token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRegisterValidationAndConflict(t *testing.T) {
	engine := setupAPI(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  "ab",
		"password":  "123",
		"full_name": "X1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]struct {
			Valid   bool   `json:"valid"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "username")
	assert.Contains(t, resp.Fields, "password")
	assert.Contains(t, resp.Fields, "full_name")

	registerUser(t, engine, "taken")
	w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":  "taken",
		"password":  "secret123",
		"full_name": "Người Khác",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFlow(t *testing.T) {
	engine := setupAPI(t)
	registerUser(t, engine, "loginuser")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "loginuser",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "loginuser",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActivityAndListEndpoints(t *testing.T) {
	engine := setupAPI(t)
	token := registerUser(t, engine, "lister")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/records/activity", token, gin.H{
		"activity_type": "Chạy bộ",
		"duration_min":  30,
		"intensity":     "high",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.ActivityRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 360, created.CaloriesBurned)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/records/activity?days=7", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.ActivityRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/records/activity", token, gin.H{
		"activity_type": "Khiêu vũ",
		"duration_min":  30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardSummary(t *testing.T) {
	engine := setupAPI(t)
	token := registerUser(t, engine, "dashuser")

	// Empty dashboard still renders the ideal range and alert list.
	w := doJSON(t, engine, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var empty api.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Nil(t, empty.CurrentWeight)
	assert.Equal(t, 53.5, empty.IdealWeight.Min)
	assert.NotNil(t, empty.Alerts)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/records/weight", token, gin.H{"weight": 65})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/records/sleep", token, gin.H{"sleep_hours": 7.5})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/records/heart-rate", token, gin.H{"bpm": 65})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.CurrentWeight)
	assert.Equal(t, 65.0, *resp.CurrentWeight)
	require.NotNil(t, resp.BMI)
	assert.Equal(t, 22.5, *resp.BMI)
	require.NotNil(t, resp.BMICategory)
	assert.Equal(t, "Bình thường", resp.BMICategory.Category)
	assert.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "Bình thường", resp.SleepStatus)
	assert.Equal(t, "Bình thường", resp.HeartRateStatus)
	require.NotNil(t, resp.HealthScore)
}

func TestProfileRoundTrip(t *testing.T) {
	engine := setupAPI(t)
	token := registerUser(t, engine, "profileapi")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "profileapi", user.Username)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/profile", token, gin.H{
		"height_cm": 180,
		"gender":    "Nam",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, 180.0, user.HeightCm)
	assert.Equal(t, "Nam", user.Gender)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/profile", token, gin.H{"height_cm": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoalLifecycle(t *testing.T) {
	engine := setupAPI(t)
	token := registerUser(t, engine, "goalapi")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/goals", token, gin.H{
		"goal_type":    "weight_loss",
		"target_value": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var goal service.GoalView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))

	path := fmt.Sprintf("/api/v1/goals/%s", goal.ID)
	w = doJSON(t, engine, http.MethodPut, path, token, gin.H{"current_value": 10})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))
	assert.Equal(t, models.GoalStatusCompleted, goal.Status)
	assert.Equal(t, 100.0, goal.Progress)

	w = doJSON(t, engine, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var goals []service.GoalView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
	assert.Empty(t, goals)
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupAPI(t)
	w := doJSON(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
