package metrics

// Heart-rate status labels.
const (
	HeartRateTooSlow      = "Quá chậm (Bradycardia)"
	HeartRateSlow         = "Chậm"
	HeartRateNormal       = "Bình thường"
	HeartRateSlightlyFast = "Hơi nhanh"
	HeartRateTooFast      = "Quá nhanh (Tachycardia)"
)

// HeartRateStatus brackets a BPM reading. Boundaries: <40, [40,60),
// [60,100], (100,120], >120.
func HeartRateStatus(bpm int) string {
	switch {
	case bpm < 40:
		return HeartRateTooSlow
	case bpm < 60:
		return HeartRateSlow
	case bpm <= 100:
		return HeartRateNormal
	case bpm <= 120:
		return HeartRateSlightlyFast
	default:
		return HeartRateTooFast
	}
}

// Sleep status labels.
const (
	SleepInsufficient         = "Thiếu ngủ"
	SleepSlightlyInsufficient = "Hơi thiếu ngủ"
	SleepNormal               = "Bình thường"
	SleepExcessive            = "Ngủ quá nhiều"
)

// SleepStatus brackets nightly hours. Boundaries: <6, [6,7), [7,9], >9.
func SleepStatus(hours float64) string {
	switch {
	case hours < 6:
		return SleepInsufficient
	case hours < 7:
		return SleepSlightlyInsufficient
	case hours <= 9:
		return SleepNormal
	default:
		return SleepExcessive
	}
}
