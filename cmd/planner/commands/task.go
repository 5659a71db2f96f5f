package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campuscal/planner/internal/models"
	"github.com/campuscal/planner/internal/validation"
	"github.com/campuscal/planner/internal/views"
)

// NewTaskCmd creates the task command tree
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks and assignments",
	}

	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskRemoveCmd())
	cmd.AddCommand(newTaskShowCmd())

	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var (
		description string
		dueDate     string
		dueTime     string
		priority    string
		category    string
		courseID    string
		groupID     string
		tags        []string
		checklist   bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			in := validation.TaskInput{
				Title:       strings.Join(args, " "),
				Description: description,
				DueDate:     dueDate,
				DueTime:     dueTime,
				Priority:    priority,
				Category:    category,
				Tags:        tags,
			}
			if courseID != "" {
				id, err := uuid.Parse(courseID)
				if err != nil {
					return fmt.Errorf("invalid course id: %w", err)
				}
				in.CourseID = &id
			}
			if groupID != "" {
				id, err := uuid.Parse(groupID)
				if err != nil {
					return fmt.Errorf("invalid group id: %w", err)
				}
				in.GroupID = &id
			}
			if checklist {
				in.SubTasks = models.DefaultSubTasks(category)
			}

			ctx, cancel := a.ctx()
			defer cancel()

			task, err := a.planner.Tasks.Create(ctx, in)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Printf("Created task %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "task notes")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dueTime, "time", "", "due time (HH:MM, requires --due)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority: high, medium, or low")
	cmd.Flags().StringVar(&category, "category", "", "category tag, e.g. homework or exam")
	cmd.Flags().StringVar(&courseID, "course", "", "course id")
	cmd.Flags().StringVar(&groupID, "group", "", "group id")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().BoolVar(&checklist, "checklist", false, "seed the category's default checklist")

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var (
		filter  string
		sortBy  string
		groupBy string
		search  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			now := time.Now()
			tasks := a.planner.Tasks.List(ctx)
			tasks = views.FilterTasks(tasks, views.Filter(filter), now)
			tasks = views.SearchTasks(tasks, search)
			tasks = views.SortTasks(tasks, views.SortBy(sortBy))

			if len(tasks) == 0 {
				fmt.Println("No tasks")
				return nil
			}

			if groupBy == "" {
				for _, t := range tasks {
					printTaskLine(t, now)
				}
				return nil
			}

			courses := a.planner.Courses.List(ctx)
			groups := a.planner.Groups.List(ctx)
			for _, bucket := range views.GroupTasks(tasks, courses, groups, views.GroupBy(groupBy)) {
				fmt.Printf("%s\n", bucket.Label)
				for _, t := range bucket.Tasks {
					printTaskLine(t, now)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "all, today, week, upcoming, overdue, or completed")
	cmd.Flags().StringVar(&sortBy, "sort", "due_date_asc", "due_date_asc, due_date_desc, priority_high_first, priority_low_first, or alphabetical")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "date, course, group, or category")
	cmd.Flags().StringVar(&search, "search", "", "substring match on title and notes")

	return cmd
}

func printTaskLine(t models.Task, now time.Time) {
	check := " "
	if t.IsCompleted {
		check = "x"
	}
	line := fmt.Sprintf("  [%s] %s (%s, %s)", check, t.Title, t.Priority, t.Category)
	if t.DueDate != "" {
		line += " due " + t.DueDate
		if t.DueTime != "" {
			line += " " + t.DueTime
		}
		if t.IsOverdue(now) {
			line += " OVERDUE"
		}
	}
	fmt.Printf("%s  id=%s\n", line, t.ID)
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			task, err := a.planner.Tasks.ToggleCompletion(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to toggle task: %w", err)
			}

			if task.IsCompleted {
				fmt.Printf("Completed %s\n", task.Title)
			} else {
				fmt.Printf("Reopened %s\n", task.Title)
			}
			return nil
		},
	}
}

func newTaskRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			if err := a.planner.Tasks.Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Println("Task deleted")
			return nil
		},
	}
}

func newTaskShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			task, err := a.planner.Tasks.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			fmt.Printf("%s\n", task.Title)
			if task.Description != "" {
				fmt.Printf("  Notes: %s\n", task.Description)
			}
			fmt.Printf("  Priority: %s\n", task.Priority)
			fmt.Printf("  Category: %s\n", task.Category)
			if task.DueDate != "" {
				due := task.DueDate
				if task.DueTime != "" {
					due += " " + models.FormatClock(task.DueTime)
				}
				fmt.Printf("  Due: %s\n", due)
			}
			if task.CourseID != nil {
				if course, err := a.planner.Courses.Get(ctx, *task.CourseID); err == nil {
					fmt.Printf("  Course: %s\n", course.Name)
				}
			}
			fmt.Printf("  Progress: %d%%\n", task.CompletionPercentage())
			for _, st := range task.SubTasks {
				check := " "
				if st.Completed {
					check = "x"
				}
				fmt.Printf("    [%s] %s (%s)\n", check, st.Title, st.ID)
			}
			if len(task.Tags) > 0 {
				fmt.Printf("  Tags: %s\n", strings.Join(task.Tags, ", "))
			}
			for _, att := range task.Attachments {
				fmt.Printf("  Attachment: %s (%s)\n", att.Name, att.URI)
			}
			return nil
		},
	}
}
