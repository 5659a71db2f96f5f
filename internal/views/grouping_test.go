package views

import (
	"testing"

	"github.com/google/uuid"

	"github.com/campuscal/planner/internal/models"
)

func TestGroupTasks_ByCategory(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{ID: uuid.New(), Title: "Reading ch. 4", Category: "homework"},
		{ID: uuid.New(), Title: "Problem set 2", Category: "homework"},
		{ID: uuid.New(), Title: "Midterm", Category: "exam"},
	}

	buckets := GroupTasks(tasks, nil, nil, GroupByCategory)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Homework" || len(buckets[0].Tasks) != 2 {
		t.Errorf("bucket 0 = %q with %d tasks, want Homework with 2", buckets[0].Label, len(buckets[0].Tasks))
	}
	if buckets[1].Label != "Exam" || len(buckets[1].Tasks) != 1 {
		t.Errorf("bucket 1 = %q with %d tasks, want Exam with 1", buckets[1].Label, len(buckets[1].Tasks))
	}

	// Input order survives inside the bucket.
	if buckets[0].Tasks[0].Title != "Reading ch. 4" || buckets[0].Tasks[1].Title != "Problem set 2" {
		t.Error("tasks must keep their input order inside a bucket")
	}
}

func TestGroupTasks_ByDate(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{ID: uuid.New(), Title: "b", DueDate: "2024-03-02"},
		{ID: uuid.New(), Title: "a", DueDate: "2024-03-01"},
		{ID: uuid.New(), Title: "c"},
		{ID: uuid.New(), Title: "d", DueDate: "2024-03-02"},
	}

	buckets := GroupTasks(tasks, nil, nil, GroupByDate)

	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	// Bucket order follows first appearance, not chronology.
	if buckets[0].Key != "2024-03-02" || buckets[1].Key != "2024-03-01" {
		t.Errorf("buckets must appear in first-seen order, got %q then %q", buckets[0].Key, buckets[1].Key)
	}
	if buckets[2].Label != LabelNoDueDate || len(buckets[2].Tasks) != 1 {
		t.Errorf("undated tasks must land in the %q bucket", LabelNoDueDate)
	}
	if len(buckets[0].Tasks) != 2 {
		t.Errorf("expected both 03-02 tasks in one bucket, got %d", len(buckets[0].Tasks))
	}
}

func TestGroupTasks_ByCourse(t *testing.T) {
	t.Parallel()

	course := models.Course{ID: uuid.New(), Name: "Math"}
	ghost := uuid.New() // referenced course that no longer exists

	tasks := []models.Task{
		{ID: uuid.New(), Title: "set 1", CourseID: &course.ID},
		{ID: uuid.New(), Title: "loose"},
		{ID: uuid.New(), Title: "orphan", CourseID: &ghost},
	}

	buckets := GroupTasks(tasks, []models.Course{course}, nil, GroupByCourse)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Math" || len(buckets[0].Tasks) != 1 {
		t.Errorf("bucket 0 = %q, want Math", buckets[0].Label)
	}
	// Loose and dangling references share the catch-all.
	if buckets[1].Label != LabelNoCourse || len(buckets[1].Tasks) != 2 {
		t.Errorf("bucket 1 = %q with %d tasks, want %q with 2", buckets[1].Label, len(buckets[1].Tasks), LabelNoCourse)
	}
}

func TestGroupTasks_ByGroup(t *testing.T) {
	t.Parallel()

	group := models.Group{ID: uuid.New(), Name: "Finals"}
	tasks := []models.Task{
		{ID: uuid.New(), Title: "review", GroupID: &group.ID},
		{ID: uuid.New(), Title: "loose"},
	}

	buckets := GroupTasks(tasks, nil, []models.Group{group}, GroupByGroup)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Finals" {
		t.Errorf("bucket 0 = %q, want Finals", buckets[0].Label)
	}
	if buckets[1].Label != LabelUngrouped {
		t.Errorf("bucket 1 = %q, want %q", buckets[1].Label, LabelUngrouped)
	}
}

func TestGroupTasks_Empty(t *testing.T) {
	t.Parallel()

	if buckets := GroupTasks(nil, nil, nil, GroupByDate); len(buckets) != 0 {
		t.Errorf("expected no buckets for no tasks, got %d", len(buckets))
	}
}
