// Package metrics holds the pure calculators that turn raw measurements into
// derived values and categorical statuses. Nothing here touches storage.
package metrics

import (
	"fmt"
	"math"
)

// CalculateBMI computes weight(kg) / height(m)², rounded to one decimal.
// A non-positive height yields 0.0 instead of an error; callers that care
// must guard the height themselves. Accepted degenerate default.
func CalculateBMI(weightKg, heightM float64) float64 {
	if heightM <= 0 {
		return 0.0
	}
	return round1(weightKg / (heightM * heightM))
}

// BMICategory describes one bracket of the Asian BMI standard.
type BMICategory struct {
	Category    string `json:"category"`
	Risk        string `json:"risk"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Risk levels used by the BMI brackets.
const (
	RiskLow      = "Thấp"
	RiskMedium   = "Trung bình"
	RiskHigh     = "Cao"
	RiskVeryHigh = "Rất cao"
)

// CategorizeBMI maps a BMI value onto the Asian standard brackets
// (cutoffs 18.5 / 23 / 25 / 30, not the WHO 25/30 scheme).
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategory{
			Category:    "Thiếu cân",
			Risk:        RiskHigh,
			Color:       "red",
			Description: "Cần tăng cân để đạt mức BMI bình thường",
		}
	case bmi < 23:
		return BMICategory{
			Category:    "Bình thường",
			Risk:        RiskLow,
			Color:       "green",
			Description: "Duy trì chế độ ăn uống và tập luyện hiện tại",
		}
	case bmi < 25:
		return BMICategory{
			Category:    "Thừa cân",
			Risk:        RiskMedium,
			Color:       "orange",
			Description: "Cần chú ý đến chế độ ăn uống và tập luyện",
		}
	case bmi < 30:
		return BMICategory{
			Category:    "Béo phì cấp I",
			Risk:        RiskHigh,
			Color:       "red",
			Description: "Cần giảm cân để cải thiện sức khỏe",
		}
	default:
		return BMICategory{
			Category:    "Béo phì cấp II",
			Risk:        RiskVeryHigh,
			Color:       "darkred",
			Description: "Cần can thiệp y tế và giảm cân ngay lập tức",
		}
	}
}

// HealthRecommendations returns the fixed advice list for a BMI bracket.
// Note the final bracket deliberately uses bmi >= 25 as the single
// "needs to lose weight" cutoff, which disagrees with the 25/30 split in
// CategorizeBMI. Both cutoffs shipped in the reference rules; reconciling
// them would silently change output.
func HealthRecommendations(bmi float64) []string {
	switch {
	case bmi < 18.5:
		return []string{
			"Tăng cường dinh dưỡng, ăn đủ 3 bữa chính/ngày",
			"Bổ sung thực phẩm giàu protein (thịt, cá, trứng, sữa)",
			"Tập thể dục vừa phải để tăng cơ (tạ nhẹ, bodyweight)",
			"Ăn thêm bữa phụ với trái cây, hạt dinh dưỡng",
			"Theo dõi cân nặng hàng tuần để điều chỉnh kịp thời",
		}
	case bmi < 23:
		return []string{
			"Duy trì chế độ ăn cân bằng và lành mạnh",
			"Tập thể dục đều đặn 30-45 phút/ngày",
			"Ngủ đủ 7-8 tiếng mỗi đêm",
			"Uống đủ 2 lít nước mỗi ngày",
			"Theo dõi sức khỏe định kỳ",
		}
	case bmi < 25:
		return []string{
			"Giảm lượng đường và tinh bột trong khẩu phần ăn",
			"Tăng cường rau xanh và chất xơ",
			"Tập cardio 45-60 phút/ngày (đi bộ, chạy bộ)",
			"Ưu tiên thực phẩm luộc, hấp thay vì chiên xào",
			"Ăn tối trước 19h và không ăn khuya",
		}
	default:
		return []string{
			"Giảm cân dưới sự hướng dẫn của bác sĩ",
			"Đặt mục tiêu giảm 0.5-1kg/tuần",
			"Kết hợp cardio và strength training",
			"Ghi nhật ký thực phẩm hàng ngày",
			"Tham gia nhóm hỗ trợ giảm cân nếu cần",
		}
	}
}

// WeightRange is the ideal weight window for a height.
type WeightRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	BMIRange string  `json:"bmi_range"`
}

// IdealWeightRange computes the weight window covering BMI 18.5–22.9.
func IdealWeightRange(heightM float64) WeightRange {
	const bmiMin, bmiMax = 18.5, 22.9
	return WeightRange{
		Min:      round1(bmiMin * heightM * heightM),
		Max:      round1(bmiMax * heightM * heightM),
		BMIRange: fmt.Sprintf("%.1f-%.1f", bmiMin, bmiMax),
	}
}

// WeightGoal describes the change needed to reach a target BMI.
type WeightGoal struct {
	CurrentBMI     float64 `json:"current_bmi"`
	TargetBMI      float64 `json:"target_bmi"`
	TargetWeight   float64 `json:"target_weight"`
	WeightToChange float64 `json:"weight_to_change"`
	Direction      string  `json:"direction"`
}

// WeightToGoal computes how far the current weight is from a target BMI.
func WeightToGoal(currentWeightKg, heightM, targetBMI float64) WeightGoal {
	target := round1(targetBMI * heightM * heightM)
	diff := round1(target - currentWeightKg)
	direction := "duy trì"
	if diff > 0 {
		direction = "tăng"
	} else if diff < 0 {
		direction = "giảm"
	}
	return WeightGoal{
		CurrentBMI:     CalculateBMI(currentWeightKg, heightM),
		TargetBMI:      targetBMI,
		TargetWeight:   target,
		WeightToChange: diff,
		Direction:      direction,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
