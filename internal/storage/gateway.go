package storage

import "context"

// Key identifies one logical record collection in the store.
type Key string

const (
	// KeyTasks is the task collection.
	KeyTasks Key = "tasks"
	// KeyCourses is the course collection.
	KeyCourses Key = "courses"
	// KeyGroups is the task-group collection.
	KeyGroups Key = "taskGroups"
)

// Gateway is the persistence contract: whole-document load and save of a
// JSON-encoded collection per key. Save always replaces the entire document;
// callers compute the full next collection before saving.
type Gateway interface {
	// Load returns the stored document for key, or (nil, nil) when the key
	// has never been written.
	Load(ctx context.Context, key Key) ([]byte, error)
	// Save replaces the stored document for key.
	Save(ctx context.Context, key Key, data []byte) error
	// Close releases the underlying connection or handle.
	Close() error
}
