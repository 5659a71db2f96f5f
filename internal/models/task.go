package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority represents how urgent a task is
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultCategory is assigned to tasks created without an explicit category.
const DefaultCategory = "general"

// DueSoonWindow is how far ahead a due datetime may lie for a task to count
// as "due soon".
const DueSoonWindow = 48 * time.Hour

// SubTask is one checklist entry owned by its parent task. Insertion order
// is meaningful for numbering.
type SubTask struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	DueDate   string    `json:"due_date,omitempty"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

// Attachment is a reference to an external file or link kept on a task.
type Attachment struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URI  string    `json:"uri"`
}

// Task represents a unit of work: an assignment, exam, reading, etc.
// DueDate and DueTime are stored as display-free strings ("2006-01-02" and
// "15:04"); DueTime is only meaningful when DueDate is set.
type Task struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	CourseID     *uuid.UUID   `json:"course_id,omitempty"`
	DueDate      string       `json:"due_date,omitempty"`
	DueTime      string       `json:"due_time,omitempty"`
	Priority     Priority     `json:"priority"`
	Category     string       `json:"category"`
	IsCompleted  bool         `json:"is_completed"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
	GroupID      *uuid.UUID   `json:"group_id,omitempty"`
	SubTasks     []SubTask    `json:"sub_tasks,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	ReminderTime *time.Time   `json:"reminder_time,omitempty"`
	ReminderSent bool         `json:"reminder_sent,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// DueDateTime composes the task's due date and time into a single instant in
// loc. A task without a due time is due at the end of its due day (23:59:59).
// The second return is false when the task has no due date or it is malformed.
func (t *Task) DueDateTime(loc *time.Location) (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(time.DateOnly, t.DueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	if t.DueTime == "" {
		return day.Add(23*time.Hour + 59*time.Minute + 59*time.Second), true
	}
	clock, err := time.Parse("15:04", t.DueTime)
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), true
}

// IsDueToday reports whether the task is due on today's date.
func (t *Task) IsDueToday(today time.Time) bool {
	if t.DueDate == "" {
		return false
	}
	return t.DueDate == today.Format(time.DateOnly)
}

// IsOverdue reports whether the task's due datetime has passed and the task
// is still open. Completed tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.IsCompleted {
		return false
	}
	due, ok := t.DueDateTime(now.Location())
	if !ok {
		return false
	}
	return now.After(due)
}

// IsDueSoon reports whether the due datetime lies in (now, now+DueSoonWindow].
func (t *Task) IsDueSoon(now time.Time) bool {
	due, ok := t.DueDateTime(now.Location())
	if !ok {
		return false
	}
	return due.After(now) && !due.After(now.Add(DueSoonWindow))
}

// CompletionPercentage returns how complete the task is, 0-100. A task with
// no subtasks is either 0 or 100 based on its own completion flag.
func (t *Task) CompletionPercentage() int {
	if len(t.SubTasks) == 0 {
		if t.IsCompleted {
			return 100
		}
		return 0
	}
	completed := 0
	for _, st := range t.SubTasks {
		if st.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(t.SubTasks))*100 + 0.5)
}

// AllSubTasksCompleted reports whether every subtask is done. A task with no
// subtasks counts as all-complete.
func (t *Task) AllSubTasksCompleted() bool {
	for _, st := range t.SubTasks {
		if !st.Completed {
			return false
		}
	}
	return true
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}
