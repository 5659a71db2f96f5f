package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campuscal/planner/internal/validation"
)

// NewCourseCmd creates the course command tree
func NewCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(newCourseAddCmd())
	cmd.AddCommand(newCourseListCmd())
	cmd.AddCommand(newCourseRemoveCmd())

	return cmd
}

func newCourseAddCmd() *cobra.Command {
	var (
		color     string
		startDate string
		endDate   string
		sessions  []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new course",
		Long:  `Add a course. Sessions use the form "Monday 09:00-10:30@Hall B"; the location is optional.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule := make([]validation.SessionInput, 0, len(sessions))
			for _, raw := range sessions {
				session, err := parseSession(raw)
				if err != nil {
					return err
				}
				schedule = append(schedule, session)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			course, err := a.planner.Courses.Create(ctx, validation.CourseInput{
				Name:      strings.Join(args, " "),
				Color:     color,
				Schedule:  schedule,
				StartDate: startDate,
				EndDate:   endDate,
			})
			if err != nil {
				return fmt.Errorf("failed to create course: %w", err)
			}

			fmt.Printf("Created course %s (%s)\n", course.Name, course.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color, e.g. #4A6FFF")
	cmd.Flags().StringVar(&startDate, "start", "", "first day of term (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "last day of term (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&sessions, "session", nil, `weekly session "Day HH:MM-HH:MM[@Location]" (repeatable)`)

	return cmd
}

// parseSession parses "Monday 09:00-10:30@Hall B" into a session input.
func parseSession(raw string) (validation.SessionInput, error) {
	var session validation.SessionInput

	day, rest, ok := strings.Cut(strings.TrimSpace(raw), " ")
	if !ok {
		return session, fmt.Errorf("invalid session %q: expected \"Day HH:MM-HH:MM[@Location]\"", raw)
	}
	times, location, _ := strings.Cut(rest, "@")
	start, end, ok := strings.Cut(strings.TrimSpace(times), "-")
	if !ok {
		return session, fmt.Errorf("invalid session %q: expected \"Day HH:MM-HH:MM[@Location]\"", raw)
	}

	session.Day = day
	session.StartTime = strings.TrimSpace(start)
	session.EndTime = strings.TrimSpace(end)
	session.Location = strings.TrimSpace(location)
	return session, nil
}

func newCourseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses with their schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			courses := a.planner.Courses.List(ctx)
			if len(courses) == 0 {
				fmt.Println("No courses")
				return nil
			}

			for _, course := range courses {
				fmt.Printf("%s (%s)  id=%s\n", course.Name, course.Color, course.ID)
				if course.StartDate != "" || course.EndDate != "" {
					fmt.Printf("  Term: %s to %s\n", course.StartDate, course.EndDate)
				}
				if schedule := course.FormattedSchedule(); schedule != "" {
					for _, line := range strings.Split(schedule, "\n") {
						fmt.Printf("  %s\n", line)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newCourseRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a course",
		Long:  "Delete a course. Tasks pointing at it are kept; they simply lose the course association.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid course id: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			if err := a.planner.Courses.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete course: %w", err)
			}

			fmt.Println("Course deleted")
			return nil
		},
	}
}
