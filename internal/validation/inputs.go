package validation

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/campuscal/planner/internal/models"
)

// TaskInput carries the caller-supplied fields for creating a task.
type TaskInput struct {
	Title        string     `validate:"required"`
	Description  string     ``
	CourseID     *uuid.UUID ``
	DueDate      string     `validate:"omitempty,dateformat"`
	DueTime      string     `validate:"omitempty,timeformat"`
	Priority     string     `validate:"omitempty,priority"`
	Category     string     ``
	GroupID      *uuid.UUID ``
	Tags         []string   ``
	ReminderTime *time.Time ``
	SubTasks     []string   ``
}

// SessionInput carries one class session of a course input.
type SessionInput struct {
	Day       string `validate:"required,weekday"`
	StartTime string `validate:"required,timeformat"`
	EndTime   string `validate:"required,timeformat"`
	Location  string ``
}

// CourseInput carries the caller-supplied fields for creating or replacing a course.
type CourseInput struct {
	Name      string         `validate:"required"`
	Color     string         ``
	Schedule  []SessionInput `validate:"dive"`
	StartDate string         `validate:"omitempty,dateformat"`
	EndDate   string         `validate:"omitempty,dateformat"`
}

// GroupInput carries the caller-supplied fields for creating a group.
type GroupInput struct {
	Name  string `validate:"required"`
	Color string ``
}

// ValidateTaskInput checks field formats plus the cross-field invariant that
// a due time is meaningless without a due date.
func ValidateTaskInput(in TaskInput) error {
	if err := Validate.Struct(in); err != nil {
		return asValidationError(err)
	}
	if in.DueTime != "" && in.DueDate == "" {
		return &models.ValidationError{Field: "due_time", Reason: "due time requires a due date"}
	}
	return nil
}

// ValidateCourseInput checks field formats plus every session's time range
// and the course date range.
func ValidateCourseInput(in CourseInput) error {
	if err := Validate.Struct(in); err != nil {
		return asValidationError(err)
	}
	for _, s := range in.Schedule {
		if err := ValidateClockRange(s.StartTime, s.EndTime); err != nil {
			return err
		}
	}
	return ValidateDateRange(in.StartDate, in.EndDate)
}

// ValidateGroupInput checks the group fields.
func ValidateGroupInput(in GroupInput) error {
	if err := Validate.Struct(in); err != nil {
		return asValidationError(err)
	}
	return nil
}

// asValidationError converts a validator error into the planner's error
// taxonomy, keeping the first failed field.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &models.ValidationError{
			Field:  fe.Field(),
			Reason: "failed " + fe.Tag() + " check",
		}
	}
	return &models.ValidationError{Reason: err.Error()}
}
