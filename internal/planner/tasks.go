package planner

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuscal/planner/internal/logger"
	"github.com/campuscal/planner/internal/models"
	"github.com/campuscal/planner/internal/storage"
	"github.com/campuscal/planner/internal/validation"
)

// TaskRepository handles task mutation operations
type TaskRepository struct {
	gateway storage.Gateway
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(gateway storage.Gateway, log *zap.Logger) *TaskRepository {
	return &TaskRepository{gateway: gateway, logger: log}
}

// load reads the full task collection. Load failures degrade to an empty
// collection with a warning; the caller is never crashed by a bad read.
func (r *TaskRepository) load(ctx context.Context) []models.Task {
	data, err := r.gateway.Load(ctx, storage.KeyTasks)
	if err != nil {
		r.logger.Warn("task_load_failed", zap.String("error", logger.SanitizeError(err)))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		r.logger.Warn("task_decode_failed", zap.String("error", logger.SanitizeError(err)))
		return nil
	}
	return tasks
}

// save writes the full task collection. Save failures propagate: the caller
// must not treat the mutation as committed.
func (r *TaskRepository) save(ctx context.Context, tasks []models.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return &models.StorageError{Op: "save", Key: string(storage.KeyTasks), Err: err}
	}
	if err := r.gateway.Save(ctx, storage.KeyTasks, data); err != nil {
		r.logger.Error("task_save_failed", zap.Error(err))
		return &models.StorageError{Op: "save", Key: string(storage.KeyTasks), Err: err}
	}
	return nil
}

// List returns every task.
func (r *TaskRepository) List(ctx context.Context) []models.Task {
	return r.load(ctx)
}

// Get returns the task with the given id.
func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	for _, t := range r.load(ctx) {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, &models.NotFoundError{Kind: "task", ID: id.String()}
}

// Create validates the input, assigns an id and defaults, and appends the
// task to the collection.
func (r *TaskRepository) Create(ctx context.Context, in validation.TaskInput) (*models.Task, error) {
	in.Title = validation.SanitizeText(in.Title)
	in.Description = validation.SanitizeText(in.Description)
	if err := validation.ValidateTaskInput(in); err != nil {
		return nil, err
	}
	in.DueDate = validation.NormalizeDate(in.DueDate)
	in.DueTime = validation.NormalizeClock(in.DueTime)

	now := time.Now()
	task := models.Task{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		CourseID:     in.CourseID,
		DueDate:      in.DueDate,
		DueTime:      in.DueTime,
		Priority:     models.PriorityMedium,
		Category:     models.DefaultCategory,
		GroupID:      in.GroupID,
		ReminderTime: in.ReminderTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Priority != "" {
		task.Priority = models.Priority(in.Priority)
	}
	if in.Category != "" {
		task.Category = strings.ToLower(validation.SanitizeText(in.Category))
	}
	for _, tag := range in.Tags {
		tag = validation.SanitizeText(tag)
		if tag != "" && !task.HasTag(tag) {
			task.Tags = append(task.Tags, tag)
		}
	}
	for _, title := range in.SubTasks {
		title = validation.SanitizeText(title)
		if title == "" {
			continue
		}
		task.SubTasks = append(task.SubTasks, models.SubTask{
			ID:        uuid.New(),
			Title:     title,
			CreatedAt: now,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := append(r.load(ctx), task)
	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}

	r.logger.Info("task_created",
		zap.String("task_id", task.ID.String()),
		zap.String("title", logger.SanitizeTitle(task.Title)),
	)
	return &task, nil
}

// TaskPatch describes a partial task update. Nil fields are left unchanged;
// the Clear flags reset the corresponding optional reference.
type TaskPatch struct {
	Title        *string
	Description  *string
	CourseID     *uuid.UUID
	ClearCourse  bool
	DueDate      *string
	DueTime      *string
	Priority     *string
	Category     *string
	GroupID      *uuid.UUID
	ClearGroup   bool
	ReminderTime *time.Time
}

// Update merges the patch onto the stored task. The id is immutable and the
// merged task is re-validated before the write.
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, patch TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.load(ctx)
	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "task", ID: id.String()}
	}

	task := tasks[idx]
	if patch.Title != nil {
		task.Title = validation.SanitizeText(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = validation.SanitizeText(*patch.Description)
	}
	if patch.CourseID != nil {
		task.CourseID = patch.CourseID
	}
	if patch.ClearCourse {
		task.CourseID = nil
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.DueTime != nil {
		task.DueTime = *patch.DueTime
	}
	if patch.Priority != nil {
		task.Priority = models.Priority(*patch.Priority)
	}
	if patch.Category != nil {
		task.Category = strings.ToLower(validation.SanitizeText(*patch.Category))
	}
	if patch.GroupID != nil {
		task.GroupID = patch.GroupID
	}
	if patch.ClearGroup {
		task.GroupID = nil
	}
	if patch.ReminderTime != nil {
		task.ReminderTime = patch.ReminderTime
	}

	if err := validation.ValidateTaskInput(validation.TaskInput{
		Title:    task.Title,
		DueDate:  task.DueDate,
		DueTime:  task.DueTime,
		Priority: string(task.Priority),
	}); err != nil {
		return nil, err
	}
	task.DueDate = validation.NormalizeDate(task.DueDate)
	task.DueTime = validation.NormalizeClock(task.DueTime)

	task.UpdatedAt = time.Now()
	tasks[idx] = task
	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the task from the collection.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.load(ctx)
	remaining := make([]models.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return &models.NotFoundError{Kind: "task", ID: id.String()}
	}
	if err := r.save(ctx, remaining); err != nil {
		return err
	}

	r.logger.Info("task_deleted", zap.String("task_id", id.String()))
	return nil
}

// ToggleCompletion flips the task's completion flag, stamping or clearing
// CompletedAt. Subtasks are not cascaded.
func (r *TaskRepository) ToggleCompletion(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return r.mutate(ctx, id, func(task *models.Task) error {
		if task.IsCompleted {
			task.IsCompleted = false
			task.CompletedAt = nil
		} else {
			completedAt := time.Now()
			task.IsCompleted = true
			task.CompletedAt = &completedAt
		}
		return nil
	})
}

// AddSubTask appends a checklist entry to the task.
func (r *TaskRepository) AddSubTask(ctx context.Context, id uuid.UUID, title string) (*models.Task, error) {
	title = validation.SanitizeText(title)
	if title == "" {
		return nil, &models.ValidationError{Field: "title", Reason: "subtask title must not be empty"}
	}
	return r.mutate(ctx, id, func(task *models.Task) error {
		task.SubTasks = append(task.SubTasks, models.SubTask{
			ID:        uuid.New(),
			Title:     title,
			CreatedAt: time.Now(),
		})
		return nil
	})
}

// RemoveSubTask deletes the checklist entry from the task.
func (r *TaskRepository) RemoveSubTask(ctx context.Context, id, subTaskID uuid.UUID) (*models.Task, error) {
	return r.mutate(ctx, id, func(task *models.Task) error {
		remaining := make([]models.SubTask, 0, len(task.SubTasks))
		found := false
		for _, st := range task.SubTasks {
			if st.ID == subTaskID {
				found = true
				continue
			}
			remaining = append(remaining, st)
		}
		if !found {
			return &models.NotFoundError{Kind: "subtask", ID: subTaskID.String()}
		}
		task.SubTasks = remaining
		return nil
	})
}

// ToggleSubTask flips exactly one subtask's completion. The parent is never
// auto-completed, even when the last open subtask closes.
func (r *TaskRepository) ToggleSubTask(ctx context.Context, id, subTaskID uuid.UUID) (*models.Task, error) {
	return r.mutate(ctx, id, func(task *models.Task) error {
		for i := range task.SubTasks {
			if task.SubTasks[i].ID == subTaskID {
				task.SubTasks[i].Completed = !task.SubTasks[i].Completed
				return nil
			}
		}
		return &models.NotFoundError{Kind: "subtask", ID: subTaskID.String()}
	})
}

// AddTag adds a tag to the task. Adding an existing tag is a no-op.
func (r *TaskRepository) AddTag(ctx context.Context, id uuid.UUID, tag string) (*models.Task, error) {
	tag = validation.SanitizeText(tag)
	if tag == "" {
		return nil, &models.ValidationError{Field: "tag", Reason: "tag must not be empty"}
	}
	return r.mutate(ctx, id, func(task *models.Task) error {
		if !task.HasTag(tag) {
			task.Tags = append(task.Tags, tag)
		}
		return nil
	})
}

// RemoveTag removes a tag from the task.
func (r *TaskRepository) RemoveTag(ctx context.Context, id uuid.UUID, tag string) (*models.Task, error) {
	return r.mutate(ctx, id, func(task *models.Task) error {
		remaining := make([]string, 0, len(task.Tags))
		for _, t := range task.Tags {
			if t != tag {
				remaining = append(remaining, t)
			}
		}
		task.Tags = remaining
		return nil
	})
}

// AddAttachment records a file or link reference on the task.
func (r *TaskRepository) AddAttachment(ctx context.Context, id uuid.UUID, name, uri string) (*models.Task, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, &models.ValidationError{Field: "uri", Reason: "attachment uri must not be empty"}
	}
	return r.mutate(ctx, id, func(task *models.Task) error {
		task.Attachments = append(task.Attachments, models.Attachment{
			ID:   uuid.New(),
			Name: validation.SanitizeText(name),
			URI:  strings.TrimSpace(uri),
		})
		return nil
	})
}

// RemoveAttachment deletes an attachment reference from the task.
func (r *TaskRepository) RemoveAttachment(ctx context.Context, id, attachmentID uuid.UUID) (*models.Task, error) {
	return r.mutate(ctx, id, func(task *models.Task) error {
		remaining := make([]models.Attachment, 0, len(task.Attachments))
		found := false
		for _, a := range task.Attachments {
			if a.ID == attachmentID {
				found = true
				continue
			}
			remaining = append(remaining, a)
		}
		if !found {
			return &models.NotFoundError{Kind: "attachment", ID: attachmentID.String()}
		}
		task.Attachments = remaining
		return nil
	})
}

// MarkReminderSent records that the task's reminder fired.
func (r *TaskRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return r.mutate(ctx, id, func(task *models.Task) error {
		task.ReminderSent = true
		return nil
	})
}

// DetachGroup clears the group reference from every task pointing at the
// given group. Called when the group itself is deleted.
func (r *TaskRepository) DetachGroup(ctx context.Context, groupID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.load(ctx)
	changed := false
	now := time.Now()
	for i := range tasks {
		if tasks[i].GroupID != nil && *tasks[i].GroupID == groupID {
			tasks[i].GroupID = nil
			tasks[i].UpdatedAt = now
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.save(ctx, tasks)
}

// mutate applies fn to the stored task under the write lock, refreshes
// UpdatedAt, and saves the full collection.
func (r *TaskRepository) mutate(ctx context.Context, id uuid.UUID, fn func(*models.Task) error) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.load(ctx)
	idx := indexOfTask(tasks, id)
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "task", ID: id.String()}
	}

	task := tasks[idx]
	if err := fn(&task); err != nil {
		return nil, err
	}
	task.UpdatedAt = time.Now()
	tasks[idx] = task
	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

func indexOfTask(tasks []models.Task, id uuid.UUID) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
