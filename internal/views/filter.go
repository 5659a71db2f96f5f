package views

import (
	"sort"
	"strings"
	"time"

	"github.com/campuscal/planner/internal/models"
)

// Filter selects which tasks a list shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterToday     Filter = "today"
	FilterWeek      Filter = "week"
	FilterUpcoming  Filter = "upcoming"
	FilterOverdue   Filter = "overdue"
	FilterCompleted Filter = "completed"
)

// SortBy selects the ordering of a task list.
type SortBy string

const (
	SortDueDateAsc       SortBy = "due_date_asc"
	SortDueDateDesc      SortBy = "due_date_desc"
	SortPriorityHighFirst SortBy = "priority_high_first"
	SortPriorityLowFirst  SortBy = "priority_low_first"
	SortAlphabetical      SortBy = "alphabetical"
)

// FilterTasks returns the tasks matching the filter. "upcoming" means open,
// not overdue, and not due today; "week" means due within the next seven
// days at date granularity.
func FilterTasks(tasks []models.Task, filter Filter, now time.Time) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	today := now.Format(time.DateOnly)
	weekEnd := now.AddDate(0, 0, 7).Format(time.DateOnly)

	for _, t := range tasks {
		switch filter {
		case FilterToday:
			if t.IsDueToday(now) {
				out = append(out, t)
			}
		case FilterWeek:
			if t.DueDate != "" && t.DueDate >= today && t.DueDate <= weekEnd {
				out = append(out, t)
			}
		case FilterUpcoming:
			if !t.IsCompleted && !t.IsOverdue(now) && !t.IsDueToday(now) {
				out = append(out, t)
			}
		case FilterOverdue:
			if t.IsOverdue(now) {
				out = append(out, t)
			}
		case FilterCompleted:
			if t.IsCompleted {
				out = append(out, t)
			}
		default: // FilterAll
			out = append(out, t)
		}
	}
	return out
}

// SortTasks returns a sorted copy of tasks. The sort is stable, so tasks with
// equal keys keep their input order, and tasks without a due date sort after
// all dated tasks regardless of direction.
func SortTasks(tasks []models.Task, by SortBy) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	switch by {
	case SortDueDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			ki, ok1 := dueKey(out[i])
			kj, ok2 := dueKey(out[j])
			if ok1 != ok2 {
				return ok1 // dated before undated
			}
			return ki > kj
		})
	case SortPriorityHighFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
		})
	case SortPriorityLowFirst:
		sort.SliceStable(out, func(i, j int) bool {
			ri := priorityRank(out[i].Priority)
			rj := priorityRank(out[j].Priority)
			// Unknown priorities stay last either direction.
			if ri == unknownPriorityRank || rj == unknownPriorityRank {
				return ri < rj
			}
			return ri > rj
		})
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	default: // SortDueDateAsc
		sort.SliceStable(out, func(i, j int) bool {
			ki, ok1 := dueKey(out[i])
			kj, ok2 := dueKey(out[j])
			if ok1 != ok2 {
				return ok1
			}
			return ki < kj
		})
	}
	return out
}

// SearchTasks returns tasks whose title or description contains the query,
// case-insensitively. A blank query applies no filter and returns the full
// set (deliberate change from the legacy behavior of returning nothing, so
// that search composes with filters the same way "all" does).
func SearchTasks(tasks []models.Task, query string) []models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Task, 0, len(tasks))
	if query == "" {
		out = append(out, tasks...)
		return out
	}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

// PendingReminders returns open tasks whose reminder time has passed without
// the reminder having been sent, in input order.
func PendingReminders(tasks []models.Task, now time.Time) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.IsCompleted || t.ReminderSent || t.ReminderTime == nil {
			continue
		}
		if !t.ReminderTime.After(now) {
			out = append(out, t)
		}
	}
	return out
}

const unknownPriorityRank = 3

// priorityRank orders priorities high < medium < low, unknown last.
func priorityRank(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	case models.PriorityLow:
		return 2
	default:
		return unknownPriorityRank
	}
}

// dueKey returns a lexically sortable due-datetime key. A task without a due
// time is keyed to the end of its due day.
func dueKey(t models.Task) (string, bool) {
	if t.DueDate == "" {
		return "", false
	}
	clock := t.DueTime
	if clock == "" {
		clock = "23:59"
	}
	return t.DueDate + "T" + clock, true
}
