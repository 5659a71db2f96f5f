package views

import (
	"testing"

	"github.com/google/uuid"

	"github.com/campuscal/planner/internal/models"
)

func TestDayAgenda_MergesClassesAndTasks(t *testing.T) {
	t.Parallel()

	course := models.Course{
		ID:        uuid.New(),
		Name:      "Math",
		Color:     "#2196F3",
		StartDate: "2024-03-04",
		EndDate:   "2024-03-18",
		Schedule: []models.ClassSession{
			{ID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00", Location: "Hall B"},
			{ID: uuid.New(), Day: models.Wednesday, StartTime: "09:00", EndTime: "10:00"},
		},
	}

	tasks := []models.Task{
		{ID: uuid.New(), Title: "Problem set", DueDate: "2024-03-04", DueTime: "17:00", CourseID: &course.ID},
		{ID: uuid.New(), Title: "Read ch. 3", DueDate: "2024-03-04", Category: "reading"},
		{ID: uuid.New(), Title: "Other day", DueDate: "2024-03-05"},
	}

	// 2024-03-04 is a Monday.
	items := DayAgenda(tasks, []models.Course{course}, "2024-03-04")

	if len(items) != 3 {
		t.Fatalf("expected 3 agenda items, got %d", len(items))
	}

	// Timed entries in clock order, untimed last.
	if items[0].Kind != AgendaClass || items[0].StartTime != "09:00" {
		t.Errorf("item 0 = %+v, want the 09:00 class", items[0])
	}
	if items[0].Location != "Hall B" {
		t.Errorf("class location missing, got %q", items[0].Location)
	}
	if items[1].Kind != AgendaTask || items[1].Title != "Problem set" {
		t.Errorf("item 1 = %+v, want the 17:00 task", items[1])
	}
	if items[1].Color != "#2196F3" {
		t.Errorf("linked task must take the course color, got %q", items[1].Color)
	}
	if items[2].Title != "Read ch. 3" || items[2].StartTime != "" {
		t.Errorf("item 2 = %+v, want the untimed task last", items[2])
	}
}

func TestDayAgenda_RespectsCourseDateRange(t *testing.T) {
	t.Parallel()

	course := models.Course{
		ID:        uuid.New(),
		Name:      "Math",
		StartDate: "2024-03-04",
		EndDate:   "2024-03-18",
		Schedule: []models.ClassSession{
			{ID: uuid.New(), Day: models.Monday, StartTime: "09:00", EndTime: "10:00"},
		},
	}

	// 2024-03-25 is a Monday past the end date.
	if items := DayAgenda(nil, []models.Course{course}, "2024-03-25"); len(items) != 0 {
		t.Errorf("expected no classes after the course end date, got %d", len(items))
	}

	// A course without a range meets on every matching weekday.
	open := course
	open.StartDate = ""
	open.EndDate = ""
	if items := DayAgenda(nil, []models.Course{open}, "2024-03-25"); len(items) != 1 {
		t.Errorf("expected the open-ended course to meet, got %d items", len(items))
	}
}

func TestDayAgenda_IncludesCompletedTasks(t *testing.T) {
	t.Parallel()

	done := models.Task{ID: uuid.New(), Title: "Done", DueDate: "2024-03-04", IsCompleted: true}
	items := DayAgenda([]models.Task{done}, nil, "2024-03-04")
	if len(items) != 1 || !items[0].Completed {
		t.Fatalf("completed tasks stay on the agenda, got %+v", items)
	}
}

func TestDayAgenda_BadDate(t *testing.T) {
	t.Parallel()

	if items := DayAgenda(nil, nil, "not-a-date"); items != nil {
		t.Errorf("expected nil for an unparseable date, got %v", items)
	}
}
