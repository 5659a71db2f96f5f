package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/campuscal/planner/internal/views"
)

// NewCalendarCmd creates the calendar command
func NewCalendarCmd() *cobra.Command {
	var (
		selected string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show marked calendar dates",
		Long:  "Show which upcoming dates carry class sessions or task due dates, with their marker colors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if selected == "" {
				selected = time.Now().Format(time.DateOnly)
			}
			if _, err := time.Parse(time.DateOnly, selected); err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", selected)
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
			markers := views.BuildMarkers(tasks, courses, selected)

			dates := make([]string, 0, len(markers))
			last := mustDate(selected).AddDate(0, 0, days).Format(time.DateOnly)
			for date := range markers {
				if date >= selected && date <= last {
					dates = append(dates, date)
				}
			}
			sort.Strings(dates)

			if len(dates) == 0 {
				fmt.Println("Nothing on the calendar")
				return nil
			}

			for _, date := range dates {
				day := markers[date]
				line := date
				if day.Selected {
					line += " *"
				}
				for _, dot := range day.Dots {
					line += "  " + dot.Color
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&selected, "date", "", "selected date (YYYY-MM-DD), defaults to today")
	cmd.Flags().IntVar(&days, "days", 30, "how many days ahead to show")

	return cmd
}

func mustDate(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}
