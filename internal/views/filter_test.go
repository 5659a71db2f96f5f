package views

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campuscal/planner/internal/models"
)

func task(title, dueDate string, opts ...func(*models.Task)) models.Task {
	t := models.Task{ID: uuid.New(), Title: title, DueDate: dueDate}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func completed(t *models.Task) { t.IsCompleted = true }

func withPriority(p models.Priority) func(*models.Task) {
	return func(t *models.Task) { t.Priority = p }
}

func withTime(clock string) func(*models.Task) {
	return func(t *models.Task) { t.DueTime = clock }
}

func TestFilterTasks(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	overdue := task("overdue", "2024-03-09")
	dueToday := task("today", "2024-03-10")
	inWeek := task("this week", "2024-03-15")
	farOut := task("next month", "2024-04-20")
	done := task("done", "2024-03-09", completed)
	undated := task("undated", "")

	all := []models.Task{overdue, dueToday, inWeek, farOut, done, undated}

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"overdue", "today", "this week", "next month", "done", "undated"}},
		{FilterToday, []string{"today"}},
		{FilterWeek, []string{"today", "this week"}},
		{FilterUpcoming, []string{"this week", "next month", "undated"}},
		{FilterOverdue, []string{"overdue"}},
		{FilterCompleted, []string{"done"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.filter), func(t *testing.T) {
			t.Parallel()
			got := FilterTasks(all, tt.filter, now)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterTasks(%s) returned %d tasks, want %d", tt.filter, len(got), len(tt.want))
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("FilterTasks(%s)[%d] = %q, want %q", tt.filter, i, got[i].Title, title)
				}
			}
		})
	}
}

func TestSortTasks_DueDate(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		task("late", "2024-03-20"),
		task("undated one", ""),
		task("early", "2024-03-01"),
		task("timed", "2024-03-01", withTime("09:00")),
		task("undated two", ""),
	}

	asc := SortTasks(tasks, SortDueDateAsc)
	wantAsc := []string{"timed", "early", "late", "undated one", "undated two"}
	for i, title := range wantAsc {
		if asc[i].Title != title {
			t.Errorf("asc[%d] = %q, want %q", i, asc[i].Title, title)
		}
	}

	desc := SortTasks(tasks, SortDueDateDesc)
	wantDesc := []string{"late", "early", "timed", "undated one", "undated two"}
	for i, title := range wantDesc {
		if desc[i].Title != title {
			t.Errorf("desc[%d] = %q, want %q", i, desc[i].Title, title)
		}
	}

	// The input is never mutated.
	if tasks[0].Title != "late" {
		t.Error("SortTasks must sort a copy")
	}
}

func TestSortTasks_Priority(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		task("med one", "", withPriority(models.PriorityMedium)),
		task("mystery", "", withPriority(models.Priority("urgent"))),
		task("low", "", withPriority(models.PriorityLow)),
		task("high", "", withPriority(models.PriorityHigh)),
		task("med two", "", withPriority(models.PriorityMedium)),
	}

	high := SortTasks(tasks, SortPriorityHighFirst)
	wantHigh := []string{"high", "med one", "med two", "low", "mystery"}
	for i, title := range wantHigh {
		if high[i].Title != title {
			t.Errorf("high-first[%d] = %q, want %q", i, high[i].Title, title)
		}
	}

	low := SortTasks(tasks, SortPriorityLowFirst)
	wantLow := []string{"low", "med one", "med two", "high", "mystery"}
	for i, title := range wantLow {
		if low[i].Title != title {
			t.Errorf("low-first[%d] = %q, want %q", i, low[i].Title, title)
		}
	}
}

func TestSortTasks_StabilityOnEqualKeys(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		task("first", "2024-03-10"),
		task("second", "2024-03-10"),
		task("third", "2024-03-10"),
	}

	got := SortTasks(tasks, SortDueDateAsc)
	for i, title := range []string{"first", "second", "third"} {
		if got[i].Title != title {
			t.Errorf("equal keys must keep input order, got[%d] = %q", i, got[i].Title)
		}
	}
}

func TestSortTasks_Alphabetical(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		task("banana", ""),
		task("Apple", ""),
		task("cherry", ""),
	}

	got := SortTasks(tasks, SortAlphabetical)
	want := []string{"Apple", "banana", "cherry"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("alphabetical[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestSearchTasks(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		task("Essay draft", ""),
		task("Problem set", ""),
		{ID: uuid.New(), Title: "Lab", Description: "write up the essay findings"},
	}

	got := SearchTasks(tasks, "ESSAY")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches across title and description, got %d", len(got))
	}

	// A blank query applies no filter.
	if got := SearchTasks(tasks, "   "); len(got) != len(tasks) {
		t.Errorf("blank query must return the full set, got %d", len(got))
	}

	if got := SearchTasks(tasks, "nonexistent"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestPendingReminders(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	due := task("due reminder", "")
	due.ReminderTime = &past
	sent := task("already sent", "")
	sent.ReminderTime = &past
	sent.ReminderSent = true
	notYet := task("future", "")
	notYet.ReminderTime = &future
	closed := task("completed", "", completed)
	closed.ReminderTime = &past

	got := PendingReminders([]models.Task{due, sent, notYet, closed, task("no reminder", "")}, now)
	if len(got) != 1 || got[0].Title != "due reminder" {
		t.Fatalf("expected only the unsent past reminder, got %d", len(got))
	}
}
