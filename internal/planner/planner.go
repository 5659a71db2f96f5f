// Package planner implements the mutation operations of the student planner.
// Every operation is a read-modify-write of one full collection: load the
// records, apply the change, save the records back. Writes within one
// repository are serialized by a mutex so overlapping mutations cannot drop
// each other's changes.
package planner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuscal/planner/internal/storage"
)

// Planner bundles the three entity repositories over one gateway.
type Planner struct {
	Tasks   *TaskRepository
	Courses *CourseRepository
	Groups  *GroupRepository
}

// New creates a planner over the given gateway.
func New(gateway storage.Gateway, logger *zap.Logger) *Planner {
	return &Planner{
		Tasks:   NewTaskRepository(gateway, logger),
		Courses: NewCourseRepository(gateway, logger),
		Groups:  NewGroupRepository(gateway, logger),
	}
}

// DeleteGroup removes the group and clears the group reference from every
// task that pointed at it, keeping the task collection consistent.
func (p *Planner) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := p.Groups.Delete(ctx, id); err != nil {
		return err
	}
	return p.Tasks.DetachGroup(ctx, id)
}
