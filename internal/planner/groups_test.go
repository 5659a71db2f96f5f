package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/campuscal/planner/internal/models"
	"github.com/campuscal/planner/internal/validation"
)

func TestGroupRepository_SeedsDefaultsOnFirstUse(t *testing.T) {
	t.Parallel()

	p := newTestPlanner()
	ctx := context.Background()

	groups := p.Groups.List(ctx)
	if len(groups) != 3 {
		t.Fatalf("expected 3 seeded groups, got %d", len(groups))
	}
	for _, g := range groups {
		if !g.IsDefault {
			t.Errorf("seeded group %s must be marked default", g.Name)
		}
	}

	// Seeding happens once; the second read returns the stored set.
	again := p.Groups.List(ctx)
	if len(again) != 3 || again[0].ID != groups[0].ID {
		t.Error("expected the seeded groups to be persisted, not regenerated")
	}
}

func TestGroupRepository_SeedsWhenCreateTouchesFirst(t *testing.T) {
	t.Parallel()

	p := newTestPlanner()
	ctx := context.Background()

	// Creating before ever listing must not skip the starter groups.
	created, err := p.Groups.Create(ctx, validation.GroupInput{Name: "Thesis"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	groups := p.Groups.List(ctx)
	if len(groups) != 4 {
		t.Fatalf("expected 3 seeded groups plus the created one, got %d", len(groups))
	}
	defaults := 0
	for _, g := range groups {
		if g.IsDefault {
			defaults++
		}
	}
	if defaults != 3 {
		t.Errorf("expected 3 default groups, got %d", defaults)
	}
	if groups[3].ID != created.ID {
		t.Errorf("expected the created group appended after the seeds")
	}
}

func TestGroupRepository_EmptyIsNotReseeded(t *testing.T) {
	t.Parallel()

	p := newTestPlanner()
	ctx := context.Background()

	groups := p.Groups.List(ctx)
	for _, g := range groups {
		if err := p.Groups.Delete(ctx, g.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	}

	// An explicitly emptied collection stays empty.
	if got := p.Groups.List(ctx); len(got) != 0 {
		t.Errorf("expected no groups after deleting all, got %d", len(got))
	}
}

func TestGroupRepository_CreateDefaultColor(t *testing.T) {
	t.Parallel()

	p := newTestPlanner()
	ctx := context.Background()

	group, err := p.Groups.Create(ctx, validation.GroupInput{Name: "Midterm Prep"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if group.Color != models.GroupColor("Midterm Prep") {
		t.Errorf("expected the name-derived color, got %q", group.Color)
	}
	if group.IsDefault {
		t.Error("user-created groups must not be marked default")
	}
}

func TestPlanner_DeleteGroupDetachesTasks(t *testing.T) {
	t.Parallel()

	p := newTestPlanner()
	ctx := context.Background()

	group, err := p.Groups.Create(ctx, validation.GroupInput{Name: "Finals"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	inGroup, err := p.Tasks.Create(ctx, validation.TaskInput{Title: "Review notes", GroupID: &group.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	outside, err := p.Tasks.Create(ctx, validation.TaskInput{Title: "Unrelated"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := p.DeleteGroup(ctx, group.ID); err != nil {
		t.Fatalf("DeleteGroup() error = %v", err)
	}

	var nf *models.NotFoundError
	if _, err := p.Groups.Get(ctx, group.ID); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for the deleted group, got %v", err)
	}

	detached, err := p.Tasks.Get(ctx, inGroup.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if detached.GroupID != nil {
		t.Error("deleting a group must clear the reference from its tasks")
	}

	untouched, err := p.Tasks.Get(ctx, outside.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if untouched.GroupID != nil {
		t.Error("tasks outside the group must be untouched")
	}
}

func TestGroupRepository_Update(t *testing.T) {
	t.Parallel()

	p := newTestPlanner()
	ctx := context.Background()

	group, err := p.Groups.Create(ctx, validation.GroupInput{Name: "Finals", Color: "#111111"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	renamed, err := p.Groups.Update(ctx, group.ID, validation.GroupInput{Name: "Finals Week"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if renamed.Name != "Finals Week" {
		t.Errorf("expected renamed group, got %q", renamed.Name)
	}
	if renamed.Color != "#111111" {
		t.Errorf("an empty patch color must keep the old one, got %q", renamed.Color)
	}
}
