package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NeutralColor is the fallback for unknown priorities and categories.
const NeutralColor = "#ADADAD"

// PriorityColor returns the display color for a priority. Unknown values get
// the neutral gray rather than an error.
func PriorityColor(p Priority) string {
	switch p {
	case PriorityHigh:
		return "#FF6B6B"
	case PriorityMedium:
		return "#FFCC4D"
	case PriorityLow:
		return "#63D471"
	default:
		return NeutralColor
	}
}

// categoryIcons maps category tags to their icon names.
var categoryIcons = map[string]string{
	"homework":     "document-text",
	"exam":         "school",
	"project":      "construct",
	"reading":      "book",
	"meeting":      "people",
	"presentation": "easel",
	"assignment":   "clipboard",
	"essay":        "create",
	"lab":          "flask",
	"quiz":         "help-circle",
}

// CategoryIcon returns the icon name for a category tag, falling back to a
// plain checkbox for unrecognized categories.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(category)]; ok {
		return icon
	}
	return "checkbox"
}

// categoryColors is the fallback color table used for calendar markers when a
// task has no course to inherit a color from.
var categoryColors = map[string]string{
	"homework":     "#4A6FFF",
	"exam":         "#F44336",
	"project":      "#2196F3",
	"reading":      "#4CAF50",
	"essay":        "#009688",
	"quiz":         "#9C27B0",
	"presentation": "#FF9800",
	"lab":          "#795548",
	"meeting":      "#607D8B",
}

// CategoryColor returns the marker color for a category tag, neutral for
// unrecognized categories.
func CategoryColor(category string) string {
	if color, ok := categoryColors[strings.ToLower(category)]; ok {
		return color
	}
	return NeutralColor
}

// DefaultCourseColors is the palette offered when creating a course.
var DefaultCourseColors = []string{
	"#4A6FFF", // blue
	"#FF5A5A", // red
	"#5AC464", // green
	"#FFCC4D", // yellow
	"#8E7CEF", // purple
	"#FD9CA9", // pink
	"#67E7CA", // mint
	"#6FB2E0", // light blue
}

// groupColors assigns well-known group names their traditional colors.
var groupColors = map[string]string{
	"Midterm Prep":   "#9C27B0",
	"Group Project":  "#2196F3",
	"Reading":        "#4CAF50",
	"Assignments":    "#FFC107",
	"Labs":           "#795548",
	"Study Sessions": "#607D8B",
	"Research":       "#FF5722",
	"Presentations":  "#FF9800",
	"Papers":         "#009688",
	"Exams":          "#F44336",
}

// GroupColor returns the default color for a group name, gray when the name
// has no traditional color.
func GroupColor(name string) string {
	if color, ok := groupColors[name]; ok {
		return color
	}
	return "#757575"
}

// DefaultGroups returns the starter groups seeded into an empty store.
func DefaultGroups(now time.Time) []Group {
	names := []string{"Midterm Prep", "Group Project", "Study Sessions"}
	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{
			ID:        uuid.New(),
			Name:      name,
			Color:     GroupColor(name),
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return groups
}

// defaultSubTasks is the starter checklist derived from a task's category.
var defaultSubTasks = map[string][]string{
	"exam":         {"Review lecture notes", "Do practice problems", "Make summary sheet"},
	"essay":        {"Outline", "First draft", "Revise", "Proofread"},
	"project":      {"Plan milestones", "Build", "Write report"},
	"presentation": {"Draft slides", "Rehearse"},
	"reading":      {"Read assigned pages", "Take notes"},
	"lab":          {"Answer pre-lab questions", "Write lab report"},
}

// DefaultSubTasks returns the starter checklist titles for a category, nil
// when the category has none.
func DefaultSubTasks(category string) []string {
	titles := defaultSubTasks[strings.ToLower(category)]
	out := make([]string, len(titles))
	copy(out, titles)
	if len(out) == 0 {
		return nil
	}
	return out
}
