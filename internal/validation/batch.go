package validation

// FieldResult is one field's validation outcome in a batch check.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func result(ok bool, msg string) FieldResult {
	return FieldResult{Valid: ok, Message: msg}
}

// ValidateHealthData checks whichever measurement fields are present (nil
// pointers are skipped) and returns a per-field result map.
func ValidateHealthData(weight, height *float64, duration *int, date *string) map[string]FieldResult {
	results := make(map[string]FieldResult)
	if weight != nil {
		results["weight"] = result(ValidateWeight(*weight))
	}
	if height != nil {
		results["height"] = result(ValidateHeight(*height))
	}
	if duration != nil {
		results["duration"] = result(ValidateActivityDuration(*duration))
	}
	if date != nil {
		results["date"] = result(ValidateDate(*date))
	}
	return results
}

// ValidateRegistration checks the fields of a new-user submission.
func ValidateRegistration(username, password, fullName string, height *float64) map[string]FieldResult {
	results := map[string]FieldResult{
		"username":  result(ValidateUsername(username)),
		"password":  result(ValidatePassword(password)),
		"full_name": result(ValidateFullName(fullName)),
	}
	if height != nil {
		results["height"] = result(ValidateHeight(*height))
	}
	return results
}

// Failures filters a batch result down to the invalid fields.
func Failures(results map[string]FieldResult) map[string]FieldResult {
	failed := make(map[string]FieldResult)
	for field, r := range results {
		if !r.Valid {
			failed[field] = r
		}
	}
	return failed
}
