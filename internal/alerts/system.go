package alerts

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minhle/healthtrack/backend/internal/metrics"
	"github.com/minhle/healthtrack/backend/internal/models"
)

// System evaluates every alert rule against a user's recent readings.
// Each Check method is independent: a fetch failure is logged and yields
// no alerts from that evaluator, never an aborted aggregation.
type System struct {
	store  Store
	logger *zap.Logger
}

func NewSystem(store Store, logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{store: store, logger: logger}
}

// CheckWeightAlerts inspects the last 7 days of weigh-ins. With at least two
// records it compares the submitted weight against the immediately prior
// record; with at least seven it compares the ends of that 7-record window.
// The window is record-count based, not day-count based: sparse logging
// stretches it over more than a week.
func (s *System) CheckWeightAlerts(userID uuid.UUID, currentWeight float64) []Alert {
	records, err := s.store.WeightRecords(userID, 7)
	if err != nil {
		s.logger.Error("weight alert fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}

	var alerts []Alert
	if len(records) >= 2 {
		change := currentWeight - records[1].Weight
		if math.Abs(change) > 2 {
			alerts = append(alerts, Alert{
				Type:    TypeWeightChange,
				Message: fmt.Sprintf("Cảnh báo: Cân nặng thay đổi %+.1fkg trong ngày", change),
				Level:   LevelWarning,
				Icon:    "⚡",
			})
		}
	}

	if len(records) >= 7 {
		weeklyChange := records[0].Weight - records[6].Weight
		if weeklyChange < -3 {
			alerts = append(alerts, Alert{
				Type:    TypeRapidWeightLoss,
				Message: fmt.Sprintf("Giảm %.1fkg trong tuần. Giảm cân quá nhanh!", -weeklyChange),
				Level:   LevelDanger,
				Icon:    "🚨",
			})
		} else if weeklyChange > 3 {
			alerts = append(alerts, Alert{
				Type:    TypeRapidWeightGain,
				Message: fmt.Sprintf("Tăng %.1fkg trong tuần. Tăng cân quá nhanh!", weeklyChange),
				Level:   LevelDanger,
				Icon:    "🚨",
			})
		}
	}

	return alerts
}

// CheckBMIAlerts fires on the risk bracket and, independently, on the
// critical extremes. A BMI above 35 legitimately produces both a bracket
// alert and a critical alert; the duplication is part of the rule set.
func (s *System) CheckBMIAlerts(bmi float64) []Alert {
	var alerts []Alert

	category := metrics.CategorizeBMI(bmi)
	if category.Risk == metrics.RiskHigh || category.Risk == metrics.RiskVeryHigh {
		level := LevelWarning
		if category.Risk == metrics.RiskVeryHigh {
			level = LevelDanger
		}
		alerts = append(alerts, Alert{
			Type:    TypeBMIRisk,
			Message: fmt.Sprintf("BMI %.1f - %s. Nguy cơ: %s", bmi, category.Category, category.Risk),
			Level:   level,
			Icon:    "⚠️",
		})
	}

	if bmi < 16 {
		alerts = append(alerts, Alert{
			Type:    TypeCriticalBMILow,
			Message: fmt.Sprintf("BMI quá thấp (%.1f). Cần can thiệp y tế ngay!", bmi),
			Level:   LevelCritical,
			Icon:    "💀",
		})
	} else if bmi > 35 {
		alerts = append(alerts, Alert{
			Type:    TypeCriticalBMIHigh,
			Message: fmt.Sprintf("BMI quá cao (%.1f). Cần can thiệp y tế ngay!", bmi),
			Level:   LevelCritical,
			Icon:    "💀",
		})
	}

	return alerts
}

// CheckActivityAlerts compares the trailing week's minutes against the WHO
// 150 min/week target. The [150,300) band is deliberately silent: adequate
// activity produces no alert at all.
func (s *System) CheckActivityAlerts(userID uuid.UUID) []Alert {
	minutes, err := s.store.WeeklyActivityMinutes(userID)
	if err != nil {
		s.logger.Error("activity alert fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}

	switch {
	case minutes == 0:
		return []Alert{{
			Type:    TypeNoActivity,
			Message: "Bạn chưa ghi nhận hoạt động nào trong tuần!",
			Level:   LevelWarning,
			Icon:    "😴",
		}}
	case minutes < 150:
		return []Alert{{
			Type:    TypeInactive,
			Message: fmt.Sprintf("Hoạt động tuần: %d phút. Mục tiêu: 150 phút", minutes),
			Level:   LevelInfo,
			Icon:    "📊",
		}}
	case minutes >= 300:
		return []Alert{{
			Type:    TypeActiveGoal,
			Message: fmt.Sprintf("Xuất sắc! Bạn đã hoạt động %d phút tuần này!", minutes),
			Level:   LevelSuccess,
			Icon:    "🌟",
		}}
	}
	return nil
}

// CheckConsistencyAlerts nags when the week has too few weigh-ins.
func (s *System) CheckConsistencyAlerts(userID uuid.UUID) []Alert {
	records, err := s.store.WeightRecords(userID, 7)
	if err != nil {
		s.logger.Error("consistency alert fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}

	switch {
	case len(records) == 0:
		return []Alert{{
			Type:    TypeNoDataWeek,
			Message: "Bạn chưa nhập số liệu nào trong 7 ngày qua!",
			Level:   LevelWarning,
			Icon:    "✏️",
		}}
	case len(records) <= 2:
		return []Alert{{
			Type:    TypeLowFrequency,
			Message: fmt.Sprintf("Chỉ %d bản ghi trong tuần. Nên theo dõi hàng ngày!", len(records)),
			Level:   LevelInfo,
			Icon:    "📅",
		}}
	}
	return nil
}

// CheckSleepAlerts evaluates the week's average hours and, independently,
// tallies nights with the two worst quality grades. No records means no
// alerts, not an error.
func (s *System) CheckSleepAlerts(userID uuid.UUID) []Alert {
	records, err := s.store.SleepRecords(userID, 7)
	if err != nil {
		s.logger.Error("sleep alert fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	var total float64
	for _, r := range records {
		total += r.SleepHours
	}
	avg := total / float64(len(records))

	var alerts []Alert
	switch {
	case avg < 6:
		alerts = append(alerts, Alert{
			Type:    TypeInsufficientSleep,
			Message: fmt.Sprintf("Cảnh báo: Trung bình %.1fh/ngày - Thiếu ngủ nghiêm trọng!", avg),
			Level:   LevelDanger,
			Icon:    "🚨",
		})
	case avg < 7:
		alerts = append(alerts, Alert{
			Type:    TypeLowSleep,
			Message: fmt.Sprintf("Cảnh báo: Trung bình %.1fh/ngày - Hơi thiếu ngủ", avg),
			Level:   LevelWarning,
			Icon:    "⚠️",
		})
	case avg > 9:
		alerts = append(alerts, Alert{
			Type:    TypeExcessiveSleep,
			Message: fmt.Sprintf("Cảnh báo: Trung bình %.1fh/ngày - Ngủ quá nhiều", avg),
			Level:   LevelWarning,
			Icon:    "⚠️",
		})
	}

	badQuality := 0
	for _, r := range records {
		if r.SleepQuality == "Không tốt" || r.SleepQuality == "Rất không tốt" {
			badQuality++
		}
	}
	if badQuality >= 3 {
		alerts = append(alerts, Alert{
			Type:    TypePoorSleepQuality,
			Message: fmt.Sprintf("Chất lượng giấc ngủ kém: %d/7 ngày", badQuality),
			Level:   LevelWarning,
			Icon:    "⚠️",
		})
	}

	return alerts
}

// CheckHeartRateAlerts brackets the latest reading and, independently,
// compares the two most recent readings for a spike. No readings at all
// yields an empty list.
func (s *System) CheckHeartRateAlerts(userID uuid.UUID) []Alert {
	latest, err := s.store.LatestHeartRate(userID)
	if err != nil {
		s.logger.Error("heart rate alert fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil
	}
	if latest == nil {
		return nil
	}

	var alerts []Alert
	switch {
	case latest.BPM < 40:
		alerts = append(alerts, Alert{
			Type:    TypeBradycardia,
			Message: fmt.Sprintf("Cảnh báo: Nhịp tim %d BPM - Quá chậm (Bradycardia)", latest.BPM),
			Level:   LevelDanger,
			Icon:    "🚨",
		})
	case latest.BPM < 60:
		alerts = append(alerts, Alert{
			Type:    TypeLowHeartRate,
			Message: fmt.Sprintf("Cảnh báo: Nhịp tim %d BPM - Hơi chậm", latest.BPM),
			Level:   LevelWarning,
			Icon:    "⚠️",
		})
	case latest.BPM > 120:
		alerts = append(alerts, Alert{
			Type:    TypeTachycardia,
			Message: fmt.Sprintf("Cảnh báo: Nhịp tim %d BPM - Quá nhanh (Tachycardia)", latest.BPM),
			Level:   LevelDanger,
			Icon:    "🚨",
		})
	case latest.BPM > 100 && latest.ActivityContext == models.HeartRateContextResting:
		alerts = append(alerts, Alert{
			Type:    TypeElevatedResting,
			Message: fmt.Sprintf("Cảnh báo: Nhịp tim %d BPM khi nghỉ ngơi - Hơi nhanh", latest.BPM),
			Level:   LevelWarning,
			Icon:    "⚠️",
		})
	}

	recent, err := s.store.HeartRateRecords(userID, 2)
	if err != nil {
		s.logger.Error("heart rate spike fetch failed", zap.String("user_id", userID.String()), zap.Error(err))
		return alerts
	}
	if len(recent) >= 2 {
		change := recent[0].BPM - recent[1].BPM
		if change < 0 {
			change = -change
		}
		if change > 30 {
			alerts = append(alerts, Alert{
				Type:    TypeHeartRateSpike,
				Message: fmt.Sprintf("Cảnh báo: Nhịp tim thay đổi %d BPM", change),
				Level:   LevelWarning,
				Icon:    "⚠️",
			})
		}
	}

	return alerts
}

// AllAlerts runs every evaluator and returns the merged list ordered by
// severity. currentWeight and currentBMI gate their evaluators; nil skips
// them. The sort is stable, so same-severity alerts keep evaluator order,
// and nothing is deduplicated or capped.
func (s *System) AllAlerts(userID uuid.UUID, currentWeight, currentBMI *float64) []Alert {
	var all []Alert

	if currentWeight != nil {
		all = append(all, s.CheckWeightAlerts(userID, *currentWeight)...)
	}
	if currentBMI != nil {
		all = append(all, s.CheckBMIAlerts(*currentBMI)...)
	}
	all = append(all, s.CheckActivityAlerts(userID)...)
	all = append(all, s.CheckConsistencyAlerts(userID)...)
	all = append(all, s.CheckSleepAlerts(userID)...)
	all = append(all, s.CheckHeartRateAlerts(userID)...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Level.priority() < all[j].Level.priority()
	})

	return all
}
