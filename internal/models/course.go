package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Weekday is a canonical weekday name ("Monday" .. "Sunday").
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekdayOrder lists the canonical weekdays Monday-first, the order schedules
// are displayed in.
var WeekdayOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ValidWeekday reports whether s is one of the seven canonical weekday names.
func ValidWeekday(s string) bool {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// TimeWeekday converts a canonical weekday name to the stdlib weekday.
func (w Weekday) TimeWeekday() time.Weekday {
	switch w {
	case Sunday:
		return time.Sunday
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	default:
		return time.Saturday
	}
}

// ClassSession is one recurring weekly meeting slot of a course. Times are
// stored in 24-hour "15:04" form and formatted for display on demand.
type ClassSession struct {
	ID        uuid.UUID `json:"id"`
	Day       Weekday   `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Location  string    `json:"location,omitempty"`
}

// Course is a recurring weekly class with a display color and an optional
// date range bounding its calendar presence.
type Course struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	Schedule  []ClassSession `json:"schedule,omitempty"`
	StartDate string         `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   string         `json:"end_date,omitempty"`   // YYYY-MM-DD
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SessionsOn returns the course's sessions meeting on the given weekday.
func (c *Course) SessionsOn(day Weekday) []ClassSession {
	var out []ClassSession
	for _, s := range c.Schedule {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out
}

// FormattedSchedule renders the schedule one session per line, Monday first,
// e.g. "Monday: 9:00 AM - 10:00 AM at Hall B".
func (c *Course) FormattedSchedule() string {
	order := make(map[Weekday]int, len(WeekdayOrder))
	for i, d := range WeekdayOrder {
		order[d] = i
	}
	sessions := make([]ClassSession, len(c.Schedule))
	copy(sessions, c.Schedule)
	sort.SliceStable(sessions, func(i, j int) bool {
		return order[sessions[i].Day] < order[sessions[j].Day]
	})

	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		line := fmt.Sprintf("%s: %s - %s", s.Day, FormatClock(s.StartTime), FormatClock(s.EndTime))
		if s.Location != "" {
			line += " at " + s.Location
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FormatClock converts a 24-hour "15:04" string to a 12-hour display string
// like "3:04 PM". Unparseable input is returned unchanged.
func FormatClock(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
