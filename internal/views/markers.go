// Package views computes derived, display-ready representations from the
// entity collections. Every function here is pure: it takes a snapshot of
// tasks/courses/groups plus the caller's clock and returns a view model
// without touching storage.
package views

import (
	"time"

	"github.com/campuscal/planner/internal/models"
)

// Marker is one colored calendar dot.
type Marker struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// DayMarkers is the marker set for one calendar date.
type DayMarkers struct {
	Dots     []Marker `json:"dots,omitempty"`
	Selected bool     `json:"selected,omitempty"`
}

// defaultMarkerHorizon bounds the expansion of a course schedule when the
// course has no explicit date range.
const defaultMarkerHorizon = 60 // days

// BuildMarkers computes the calendar dot map for the given snapshot. Each
// course contributes a dot (keyed by course id) on every date in its range
// whose weekday matches a class session; each incomplete dated task
// contributes a dot keyed by its task id, colored by its course when it has
// one and by its category otherwise. The selected date carries an extra
// Selected flag on top of its dots.
func BuildMarkers(tasks []models.Task, courses []models.Course, selectedDate string) map[string]DayMarkers {
	markers := make(map[string]DayMarkers)

	ref, err := time.Parse(time.DateOnly, selectedDate)
	if err != nil {
		ref = time.Now()
	}

	for _, course := range courses {
		start, end := courseRange(course, ref)
		for _, session := range course.Schedule {
			weekday := session.Day.TimeWeekday()
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				if d.Weekday() != weekday {
					continue
				}
				addDot(markers, d.Format(time.DateOnly), Marker{
					Key:   course.ID.String(),
					Color: course.Color,
				})
			}
		}
	}

	courseColors := make(map[string]string, len(courses))
	for _, c := range courses {
		courseColors[c.ID.String()] = c.Color
	}

	for _, task := range tasks {
		if task.IsCompleted || task.DueDate == "" {
			continue
		}
		color := ""
		if task.CourseID != nil {
			color = courseColors[task.CourseID.String()]
		}
		if color == "" {
			color = models.CategoryColor(task.Category)
		}
		addDot(markers, task.DueDate, Marker{Key: task.ID.String(), Color: color})
	}

	if selectedDate != "" {
		day := markers[selectedDate]
		day.Selected = true
		markers[selectedDate] = day
	}

	return markers
}

// courseRange resolves the date span a course's schedule is expanded over.
// Missing bounds fall back to a rolling window around the reference date.
func courseRange(course models.Course, ref time.Time) (time.Time, time.Time) {
	start := ref
	if course.StartDate != "" {
		if d, err := time.Parse(time.DateOnly, course.StartDate); err == nil {
			start = d
		}
	}
	end := start.AddDate(0, 0, defaultMarkerHorizon)
	if course.EndDate != "" {
		if d, err := time.Parse(time.DateOnly, course.EndDate); err == nil {
			end = d
		}
	}
	return start, end
}

// addDot appends a marker to a date, keeping at most one dot per key.
func addDot(markers map[string]DayMarkers, date string, dot Marker) {
	day := markers[date]
	for _, existing := range day.Dots {
		if existing.Key == dot.Key {
			return
		}
	}
	day.Dots = append(day.Dots, dot)
	markers[date] = day
}
