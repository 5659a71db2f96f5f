package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/campuscal/planner/internal/models"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for planner value formats.
	// These should never fail in normal operation.
	if err := Validate.RegisterValidation("priority", validatePriority); err != nil {
		panic(fmt.Sprintf("failed to register priority validator: %v", err))
	}
	if err := Validate.RegisterValidation("weekday", validateWeekday); err != nil {
		panic(fmt.Sprintf("failed to register weekday validator: %v", err))
	}
	if err := Validate.RegisterValidation("dateformat", validateDateFormat); err != nil {
		panic(fmt.Sprintf("failed to register dateformat validator: %v", err))
	}
	if err := Validate.RegisterValidation("timeformat", validateTimeFormat); err != nil {
		panic(fmt.Sprintf("failed to register timeformat validator: %v", err))
	}
}

// validatePriority validates that a string is a valid Priority enum value
func validatePriority(fl validator.FieldLevel) bool {
	switch models.Priority(fl.Field().String()) {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return true
	default:
		return false
	}
}

// validateWeekday validates that a string is one of the seven canonical weekday names
func validateWeekday(fl validator.FieldLevel) bool {
	return models.ValidWeekday(fl.Field().String())
}

// validateDateFormat validates a YYYY-MM-DD calendar date
func validateDateFormat(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// validateTimeFormat validates a 24-hour HH:MM time of day
func validateTimeFormat(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// NormalizeClock rewrites an accepted clock value into zero-padded "15:04"
// form. Parsing tolerates single-digit hours like "9:00", and stored times are
// compared lexically, so they must be padded before the write. Unparseable
// input is returned unchanged.
func NormalizeClock(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("15:04")
}

// NormalizeDate rewrites an accepted calendar date into zero-padded
// "2006-01-02" form, for the same reason as NormalizeClock. Unparseable input
// is returned unchanged.
func NormalizeDate(date string) string {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return d.Format(time.DateOnly)
}

// ValidatePriority validates a priority string value
func ValidatePriority(value string) error {
	switch models.Priority(value) {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return nil
	default:
		return &models.ValidationError{Field: "priority", Reason: fmt.Sprintf("invalid priority: %s (must be 'high', 'medium', or 'low')", value)}
	}
}

// ValidateClockRange validates that start and end are HH:MM times with start
// strictly before end.
func ValidateClockRange(start, end string) error {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return &models.ValidationError{Field: "start_time", Reason: fmt.Sprintf("invalid time: %s (must be HH:MM)", start)}
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return &models.ValidationError{Field: "end_time", Reason: fmt.Sprintf("invalid time: %s (must be HH:MM)", end)}
	}
	if !s.Before(e) {
		return &models.ValidationError{Field: "start_time", Reason: fmt.Sprintf("start time %s must be before end time %s", start, end)}
	}
	return nil
}

// ValidateDateRange validates that start and end are YYYY-MM-DD dates with
// start not after end. Either side may be empty.
func ValidateDateRange(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if start != "" {
		if _, err := time.Parse(time.DateOnly, start); err != nil {
			return &models.ValidationError{Field: "start_date", Reason: fmt.Sprintf("invalid date: %s (must be YYYY-MM-DD)", start)}
		}
	}
	if end != "" {
		if _, err := time.Parse(time.DateOnly, end); err != nil {
			return &models.ValidationError{Field: "end_date", Reason: fmt.Sprintf("invalid date: %s (must be YYYY-MM-DD)", end)}
		}
	}
	if start != "" && end != "" && start > end {
		return &models.ValidationError{Field: "start_date", Reason: fmt.Sprintf("start date %s is after end date %s", start, end)}
	}
	return nil
}
