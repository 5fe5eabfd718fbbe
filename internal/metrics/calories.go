package metrics

import "math"

// Per-minute burn rates by activity and intensity.
var calorieRates = map[string]map[string]float64{
	"Đi bộ":         {"low": 4, "medium": 5, "high": 6},
	"Chạy bộ":       {"low": 8, "medium": 10, "high": 12},
	"Đạp xe":        {"low": 6, "medium": 8, "high": 10},
	"Bơi lội":       {"low": 7, "medium": 9, "high": 11},
	"Gym":           {"low": 5, "medium": 7, "high": 9},
	"Yoga":          {"low": 3, "medium": 4, "high": 5},
	"Nhảy dây":      {"low": 9, "medium": 11, "high": 13},
	"Leo cầu thang": {"low": 7, "medium": 9, "high": 11},
}

// defaultCalorieRate is used when the activity type is unknown. Accepted
// degenerate default rather than an error.
const defaultCalorieRate = 5.0

// CaloriesBurned estimates kcal for a session from the rate table. Unknown
// activity types fall back to defaultCalorieRate; an unknown or empty
// intensity is treated as "medium".
func CaloriesBurned(activityType string, durationMin int, intensity string) int {
	rate := defaultCalorieRate
	if byIntensity, ok := calorieRates[activityType]; ok {
		if r, ok := byIntensity[intensity]; ok {
			rate = r
		} else {
			rate = byIntensity["medium"]
		}
	}
	return int(math.Round(rate * float64(durationMin)))
}
