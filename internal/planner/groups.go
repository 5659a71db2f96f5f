package planner

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuscal/planner/internal/logger"
	"github.com/campuscal/planner/internal/models"
	"github.com/campuscal/planner/internal/storage"
	"github.com/campuscal/planner/internal/validation"
)

// GroupRepository handles task-group mutation operations
type GroupRepository struct {
	gateway storage.Gateway
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(gateway storage.Gateway, log *zap.Logger) *GroupRepository {
	return &GroupRepository{gateway: gateway, logger: log}
}

// load reads the stored groups. A never-written collection gets the starter
// groups seeded on the spot, so the defaults exist no matter which operation
// touches the collection first. Callers must hold the mutex.
func (r *GroupRepository) load(ctx context.Context) []models.Group {
	data, err := r.gateway.Load(ctx, storage.KeyGroups)
	if err != nil {
		r.logger.Warn("group_load_failed", zap.String("error", logger.SanitizeError(err)))
		return nil
	}
	if data == nil {
		groups := models.DefaultGroups(time.Now())
		if err := r.save(ctx, groups); err != nil {
			// Seeding is best-effort; the caller still gets the defaults.
			r.logger.Warn("group_seed_failed", zap.String("error", logger.SanitizeError(err)))
		}
		return groups
	}
	var groups []models.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		r.logger.Warn("group_decode_failed", zap.String("error", logger.SanitizeError(err)))
		return nil
	}
	return groups
}

func (r *GroupRepository) save(ctx context.Context, groups []models.Group) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return &models.StorageError{Op: "save", Key: string(storage.KeyGroups), Err: err}
	}
	if err := r.gateway.Save(ctx, storage.KeyGroups, data); err != nil {
		r.logger.Error("group_save_failed", zap.Error(err))
		return &models.StorageError{Op: "save", Key: string(storage.KeyGroups), Err: err}
	}
	return nil
}

// List returns every group, seeding the starter groups on first use.
func (r *GroupRepository) List(ctx context.Context) []models.Group {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Get returns the group with the given id.
func (r *GroupRepository) Get(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.load(ctx) {
		if g.ID == id {
			group := g
			return &group, nil
		}
	}
	return nil, &models.NotFoundError{Kind: "group", ID: id.String()}
}

// Create validates the input and appends the group. A missing color defaults
// by group name.
func (r *GroupRepository) Create(ctx context.Context, in validation.GroupInput) (*models.Group, error) {
	in.Name = validation.SanitizeText(in.Name)
	if err := validation.ValidateGroupInput(in); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	groups := r.load(ctx)
	now := time.Now()
	group := models.Group{
		ID:        uuid.New(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if group.Color == "" {
		group.Color = models.GroupColor(in.Name)
	}

	groups = append(groups, group)
	if err := r.save(ctx, groups); err != nil {
		return nil, err
	}

	r.logger.Info("group_created",
		zap.String("group_id", group.ID.String()),
		zap.String("name", logger.SanitizeTitle(group.Name)),
	)
	return &group, nil
}

// Update renames or recolors the group.
func (r *GroupRepository) Update(ctx context.Context, id uuid.UUID, in validation.GroupInput) (*models.Group, error) {
	in.Name = validation.SanitizeText(in.Name)
	if err := validation.ValidateGroupInput(in); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	groups := r.load(ctx)
	for i := range groups {
		if groups[i].ID != id {
			continue
		}
		groups[i].Name = in.Name
		if in.Color != "" {
			groups[i].Color = in.Color
		}
		groups[i].UpdatedAt = time.Now()
		group := groups[i]
		if err := r.save(ctx, groups); err != nil {
			return nil, err
		}
		return &group, nil
	}
	return nil, &models.NotFoundError{Kind: "group", ID: id.String()}
}

// Delete removes the group record. Use Planner.DeleteGroup to also clear the
// reference from tasks.
func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	groups := r.load(ctx)
	remaining := make([]models.Group, 0, len(groups))
	found := false
	for _, g := range groups {
		if g.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, g)
	}
	if !found {
		return &models.NotFoundError{Kind: "group", ID: id.String()}
	}
	if err := r.save(ctx, remaining); err != nil {
		return err
	}

	r.logger.Info("group_deleted", zap.String("group_id", id.String()))
	return nil
}
