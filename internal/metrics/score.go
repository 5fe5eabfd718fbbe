package metrics

// HealthScore is a 0-100 composite of the day's signals, weighted
// 30% weight, 30% activity, 25% sleep, 15% heart rate.
// The weight band here scores 23 < bmi <= 25 as a middle tier and everything
// above 25 as the lowest, mirroring the bmi > 25 obesity cutoff used by
// HealthRecommendations rather than the 25/30 category brackets.
func HealthScore(bmi float64, activityMinutes int, sleepHours float64, restingHR int) int {
	var weightScore int
	switch {
	case bmi >= 18.5 && bmi <= 23:
		weightScore = 30
	case (bmi >= 17 && bmi < 18.5) || (bmi > 23 && bmi <= 25):
		weightScore = 20
	default:
		weightScore = 10
	}

	var activityScore int
	switch {
	case activityMinutes >= 60:
		activityScore = 30
	case activityMinutes >= 30:
		activityScore = 25
	case activityMinutes >= 15:
		activityScore = 20
	default:
		activityScore = 10
	}

	var sleepScore int
	switch {
	case sleepHours >= 7 && sleepHours <= 9:
		sleepScore = 25
	case (sleepHours >= 6 && sleepHours < 7) || (sleepHours > 9 && sleepHours <= 10):
		sleepScore = 20
	default:
		sleepScore = 10
	}

	var heartScore int
	switch {
	case restingHR >= 60 && restingHR <= 70:
		heartScore = 15
	case (restingHR >= 55 && restingHR < 60) || (restingHR > 70 && restingHR <= 75):
		heartScore = 12
	default:
		heartScore = 8
	}

	total := weightScore + activityScore + sleepScore + heartScore
	if total > 100 {
		total = 100
	}
	return total
}
