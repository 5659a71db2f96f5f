package views

import (
	"sort"
	"time"

	"github.com/campuscal/planner/internal/models"
)

// AgendaItem kinds.
const (
	AgendaClass = "class"
	AgendaTask  = "task"
)

// AgendaItem is one entry of a day agenda: a class meeting or a due task.
type AgendaItem struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	StartTime string `json:"start_time,omitempty"` // HH:MM, empty for untimed tasks
	EndTime   string `json:"end_time,omitempty"`
	Location  string `json:"location,omitempty"`
	Color     string `json:"color"`
	Category  string `json:"category,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

// DayAgenda merges the date's class sessions and due tasks into one
// time-sorted list. Classes come from courses whose date range covers the
// date and whose schedule meets on its weekday; tasks are everything due that
// date, completed ones included.
func DayAgenda(tasks []models.Task, courses []models.Course, date string) []AgendaItem {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil
	}

	var items []AgendaItem

	for _, course := range courses {
		if !courseCovers(course, date) {
			continue
		}
		for _, session := range course.Schedule {
			if session.Day.TimeWeekday() != day.Weekday() {
				continue
			}
			items = append(items, AgendaItem{
				Kind:      AgendaClass,
				Title:     course.Name,
				StartTime: session.StartTime,
				EndTime:   session.EndTime,
				Location:  session.Location,
				Color:     course.Color,
			})
		}
	}

	courseColors := make(map[string]string, len(courses))
	for _, c := range courses {
		courseColors[c.ID.String()] = c.Color
	}

	for _, task := range tasks {
		if task.DueDate != date {
			continue
		}
		color := ""
		if task.CourseID != nil {
			color = courseColors[task.CourseID.String()]
		}
		if color == "" {
			color = models.CategoryColor(task.Category)
		}
		items = append(items, AgendaItem{
			Kind:      AgendaTask,
			Title:     task.Title,
			StartTime: task.DueTime,
			Color:     color,
			Category:  task.Category,
			Completed: task.IsCompleted,
		})
	}

	// Timed entries first in clock order; untimed tasks sink to the end.
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].StartTime, items[j].StartTime
		if (ti == "") != (tj == "") {
			return ti != ""
		}
		return ti < tj
	})

	return items
}

// courseCovers reports whether the course's date range includes the date.
// Missing bounds are open on that side.
func courseCovers(course models.Course, date string) bool {
	if course.StartDate != "" && date < course.StartDate {
		return false
	}
	if course.EndDate != "" && date > course.EndDate {
		return false
	}
	return true
}
