package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuscal/planner/cmd/planner/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "planner",
		Short: "Student planner",
		Long:  "CLI for managing courses, tasks, and the study calendar",
	}

	rootCmd.AddCommand(commands.NewTaskCmd())
	rootCmd.AddCommand(commands.NewCourseCmd())
	rootCmd.AddCommand(commands.NewGroupCmd())
	rootCmd.AddCommand(commands.NewCalendarCmd())
	rootCmd.AddCommand(commands.NewAgendaCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
