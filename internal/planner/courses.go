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

// CourseRepository handles course mutation operations
type CourseRepository struct {
	gateway storage.Gateway
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(gateway storage.Gateway, log *zap.Logger) *CourseRepository {
	return &CourseRepository{gateway: gateway, logger: log}
}

func (r *CourseRepository) load(ctx context.Context) []models.Course {
	data, err := r.gateway.Load(ctx, storage.KeyCourses)
	if err != nil {
		r.logger.Warn("course_load_failed", zap.String("error", logger.SanitizeError(err)))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		r.logger.Warn("course_decode_failed", zap.String("error", logger.SanitizeError(err)))
		return nil
	}
	return courses
}

func (r *CourseRepository) save(ctx context.Context, courses []models.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return &models.StorageError{Op: "save", Key: string(storage.KeyCourses), Err: err}
	}
	if err := r.gateway.Save(ctx, storage.KeyCourses, data); err != nil {
		r.logger.Error("course_save_failed", zap.Error(err))
		return &models.StorageError{Op: "save", Key: string(storage.KeyCourses), Err: err}
	}
	return nil
}

// List returns every course.
func (r *CourseRepository) List(ctx context.Context) []models.Course {
	return r.load(ctx)
}

// Get returns the course with the given id.
func (r *CourseRepository) Get(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	for _, c := range r.load(ctx) {
		if c.ID == id {
			course := c
			return &course, nil
		}
	}
	return nil, &models.NotFoundError{Kind: "course", ID: id.String()}
}

// Create validates the input and appends the course. The name must be unique
// within the active set; a missing color is drawn from the default palette.
func (r *CourseRepository) Create(ctx context.Context, in validation.CourseInput) (*models.Course, error) {
	in.Name = validation.SanitizeText(in.Name)
	if err := validation.ValidateCourseInput(in); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	courses := r.load(ctx)
	if nameTaken(courses, in.Name, uuid.Nil) {
		return nil, &models.ValidationError{Field: "name", Reason: "a course with this name already exists"}
	}

	now := time.Now()
	course := models.Course{
		ID:        uuid.New(),
		Name:      in.Name,
		Color:     in.Color,
		Schedule:  buildSchedule(in.Schedule),
		StartDate: validation.NormalizeDate(in.StartDate),
		EndDate:   validation.NormalizeDate(in.EndDate),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if course.Color == "" {
		course.Color = models.DefaultCourseColors[len(courses)%len(models.DefaultCourseColors)]
	}

	courses = append(courses, course)
	if err := r.save(ctx, courses); err != nil {
		return nil, err
	}

	r.logger.Info("course_created",
		zap.String("course_id", course.ID.String()),
		zap.String("name", logger.SanitizeTitle(course.Name)),
	)
	return &course, nil
}

// Update replaces the course's fields with the input, re-validating every
// class session (weekday name and start < end) before the write.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, in validation.CourseInput) (*models.Course, error) {
	in.Name = validation.SanitizeText(in.Name)
	if err := validation.ValidateCourseInput(in); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	courses := r.load(ctx)
	idx := -1
	for i := range courses {
		if courses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &models.NotFoundError{Kind: "course", ID: id.String()}
	}
	if nameTaken(courses, in.Name, id) {
		return nil, &models.ValidationError{Field: "name", Reason: "a course with this name already exists"}
	}

	course := courses[idx]
	course.Name = in.Name
	if in.Color != "" {
		course.Color = in.Color
	}
	course.Schedule = buildSchedule(in.Schedule)
	course.StartDate = validation.NormalizeDate(in.StartDate)
	course.EndDate = validation.NormalizeDate(in.EndDate)
	course.UpdatedAt = time.Now()

	courses[idx] = course
	if err := r.save(ctx, courses); err != nil {
		return nil, err
	}
	return &course, nil
}

// Delete removes the course. Tasks referencing it are left intact; their
// course lookup simply resolves to nothing afterwards.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := r.load(ctx)
	remaining := make([]models.Course, 0, len(courses))
	found := false
	for _, c := range courses {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return &models.NotFoundError{Kind: "course", ID: id.String()}
	}
	if err := r.save(ctx, remaining); err != nil {
		return err
	}

	r.logger.Info("course_deleted", zap.String("course_id", id.String()))
	return nil
}

// buildSchedule converts session inputs into stored sessions with fresh ids.
func buildSchedule(inputs []validation.SessionInput) []models.ClassSession {
	sessions := make([]models.ClassSession, 0, len(inputs))
	for _, in := range inputs {
		sessions = append(sessions, models.ClassSession{
			ID:        uuid.New(),
			Day:       models.Weekday(in.Day),
			StartTime: validation.NormalizeClock(in.StartTime),
			EndTime:   validation.NormalizeClock(in.EndTime),
			Location:  validation.SanitizeText(in.Location),
		})
	}
	if len(sessions) == 0 {
		return nil
	}
	return sessions
}

// nameTaken reports whether another course (id != exclude) already uses the
// name, case-insensitively.
func nameTaken(courses []models.Course, name string, exclude uuid.UUID) bool {
	for _, c := range courses {
		if c.ID != exclude && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
