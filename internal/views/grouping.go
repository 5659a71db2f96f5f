package views

import (
	"strings"
	"unicode"

	"github.com/campuscal/planner/internal/models"
)

// GroupBy selects how a task list is bucketed.
type GroupBy string

const (
	GroupByDate     GroupBy = "date"
	GroupByCourse   GroupBy = "course"
	GroupByGroup    GroupBy = "group"
	GroupByCategory GroupBy = "category"
)

// Labels for the catch-all buckets.
const (
	LabelNoDueDate = "No Due Date"
	LabelNoCourse  = "No Course"
	LabelUngrouped = "Ungrouped"
)

// TaskBucket is one labeled group of tasks.
type TaskBucket struct {
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Tasks []models.Task `json:"tasks"`
}

// GroupTasks buckets tasks by the chosen dimension. Buckets appear in the
// order their first task appears in the input, and tasks keep their input
// order inside each bucket; grouping never re-sorts. Every input task lands
// in exactly one bucket.
func GroupTasks(tasks []models.Task, courses []models.Course, groups []models.Group, by GroupBy) []TaskBucket {
	courseNames := make(map[string]string, len(courses))
	for _, c := range courses {
		courseNames[c.ID.String()] = c.Name
	}
	groupNames := make(map[string]string, len(groups))
	for _, g := range groups {
		groupNames[g.ID.String()] = g.Name
	}

	var buckets []TaskBucket
	index := make(map[string]int)

	add := func(key, label string, task models.Task) {
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, TaskBucket{Key: key, Label: label})
		}
		buckets[i].Tasks = append(buckets[i].Tasks, task)
	}

	for _, task := range tasks {
		switch by {
		case GroupByCourse:
			// An unresolvable course reference renders as "no course"
			// rather than failing.
			if task.CourseID != nil {
				if name, ok := courseNames[task.CourseID.String()]; ok {
					add(task.CourseID.String(), name, task)
					continue
				}
			}
			add("uncategorized", LabelNoCourse, task)
		case GroupByGroup:
			if task.GroupID != nil {
				if name, ok := groupNames[task.GroupID.String()]; ok {
					add(task.GroupID.String(), name, task)
					continue
				}
			}
			add("ungrouped", LabelUngrouped, task)
		case GroupByCategory:
			category := strings.ToLower(task.Category)
			if category == "" {
				category = models.DefaultCategory
			}
			add(category, capitalize(category), task)
		default: // GroupByDate
			if task.DueDate == "" {
				add("none", LabelNoDueDate, task)
				continue
			}
			add(task.DueDate, task.DueDate, task)
		}
	}

	return buckets
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
