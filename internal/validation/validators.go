// Package validation holds the pure field validators applied before any
// measurement or profile write. Invalid input is a normal (ok, message)
// return, never an error: the caller decides what to do with the message.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/minhle/healthtrack/backend/internal/models"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	// Digits and the punctuation set a person's name never contains.
	fullNameBadRe = regexp.MustCompile(`[0-9!@#$%^&*()_+=\[\]{};':"\\|,.<>?]`)
)

const validMsg = "Hợp lệ"

// ValidateWeight checks a weight in kilograms.
func ValidateWeight(weight float64) (bool, string) {
	if weight < 20 || weight > 300 {
		return false, "Cân nặng phải từ 20-300 kg"
	}
	return true, validMsg
}

// ValidateHeight checks a height in centimeters.
func ValidateHeight(height float64) (bool, string) {
	if height < 50 || height > 250 {
		return false, "Chiều cao phải từ 50-250 cm"
	}
	return true, validMsg
}

// ValidateActivityDuration checks a session duration in minutes.
func ValidateActivityDuration(duration int) (bool, string) {
	if duration < 1 || duration > 480 {
		return false, "Thời gian hoạt động phải từ 1-480 phút"
	}
	return true, validMsg
}

// ValidateDate checks an ISO-8601 calendar date (YYYY-MM-DD).
func ValidateDate(date string) (bool, string) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return false, "Định dạng ngày không hợp lệ (YYYY-MM-DD)"
	}
	return true, validMsg
}

// ValidateUsername checks a login name: 3-20 chars, [A-Za-z0-9_] only.
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Tên đăng nhập không được để trống"
	}
	if len(username) < 3 {
		return false, "Tên đăng nhập phải có ít nhất 3 ký tự"
	}
	if len(username) > 20 {
		return false, "Tên đăng nhập không được quá 20 ký tự"
	}
	if !usernameRe.MatchString(username) {
		return false, "Tên đăng nhập chỉ được chứa chữ cái, số và dấu gạch dưới"
	}
	return true, validMsg
}

// ValidatePassword checks a password: 6-50 chars.
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Mật khẩu không được để trống"
	}
	if len(password) < 6 {
		return false, "Mật khẩu phải có ít nhất 6 ký tự"
	}
	if len(password) > 50 {
		return false, "Mật khẩu quá dài"
	}
	return true, validMsg
}

// ValidateFullName checks a display name: 2-50 chars, no digits or symbols.
func ValidateFullName(fullName string) (bool, string) {
	if fullName == "" {
		return false, "Họ tên không được để trống"
	}
	if len([]rune(fullName)) < 2 {
		return false, "Họ tên quá ngắn"
	}
	if len([]rune(fullName)) > 50 {
		return false, "Họ tên quá dài"
	}
	if fullNameBadRe.MatchString(fullName) {
		return false, "Họ tên không được chứa số hoặc ký tự đặc biệt"
	}
	return true, validMsg
}

// ValidateGender accepts empty (optional field) or one of the fixed set.
func ValidateGender(gender string) (bool, string) {
	if gender == "" {
		return true, validMsg
	}
	for _, g := range models.Genders {
		if gender == g {
			return true, validMsg
		}
	}
	return false, fmt.Sprintf("Giới tính phải là: %s", strings.Join(models.Genders, ", "))
}

// ValidateBirthDate accepts empty, else an ISO date that is not in the
// future and implies an age of at most 120 years.
func ValidateBirthDate(birthDate string) (bool, string) {
	if birthDate == "" {
		return true, validMsg
	}
	birth, err := time.Parse(models.DateLayout, birthDate)
	if err != nil {
		return false, "Định dạng ngày không hợp lệ (YYYY-MM-DD)"
	}
	now := time.Now()
	if birth.After(now) {
		return false, "Ngày sinh không thể ở tương lai"
	}
	if now.Year()-birth.Year() > 120 {
		return false, "Ngày sinh không hợp lệ"
	}
	return true, validMsg
}

// ValidateActivityType checks the activity against the fixed 8-value set.
func ValidateActivityType(activityType string) (bool, string) {
	if activityType == "" {
		return false, "Loại hoạt động không được để trống"
	}
	for _, a := range models.ActivityTypes {
		if activityType == a {
			return true, validMsg
		}
	}
	return false, fmt.Sprintf("Loại hoạt động phải là: %s", strings.Join(models.ActivityTypes, ", "))
}

// ValidateIntensity accepts empty (optional field) or low/medium/high.
func ValidateIntensity(intensity string) (bool, string) {
	if intensity == "" {
		return true, validMsg
	}
	for _, i := range models.Intensities {
		if intensity == i {
			return true, validMsg
		}
	}
	return false, fmt.Sprintf("Cường độ phải là: %s", strings.Join(models.Intensities, ", "))
}
