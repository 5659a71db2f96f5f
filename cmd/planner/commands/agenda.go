package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/campuscal/planner/internal/models"
	"github.com/campuscal/planner/internal/views"
)

// NewAgendaCmd creates the agenda command
func NewAgendaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda [date]",
		Short: "Show one day's classes and due tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format(time.DateOnly)
			if len(args) == 1 {
				date = args[0]
			}
			if _, err := time.Parse(time.DateOnly, date); err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			tasks := a.planner.Tasks.List(ctx)
			courses := a.planner.Courses.List(ctx)

			items := views.DayAgenda(tasks, courses, date)
			if len(items) == 0 {
				fmt.Printf("Nothing scheduled for %s\n", date)
			}
			for _, item := range items {
				switch item.Kind {
				case views.AgendaClass:
					line := fmt.Sprintf("%s - %s  %s", models.FormatClock(item.StartTime), models.FormatClock(item.EndTime), item.Title)
					if item.Location != "" {
						line += " at " + item.Location
					}
					fmt.Println(line)
				default:
					clock := "all day"
					if item.StartTime != "" {
						clock = "due " + models.FormatClock(item.StartTime)
					}
					check := " "
					if item.Completed {
						check = "x"
					}
					fmt.Printf("[%s] %s (%s)\n", check, item.Title, clock)
				}
			}

			if reminders := views.PendingReminders(tasks, time.Now()); len(reminders) > 0 {
				fmt.Println("\nReminders:")
				for _, t := range reminders {
					fmt.Printf("  %s\n", t.Title)
				}
			}
			return nil
		},
	}

	return cmd
}
