package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campuscal/planner/internal/validation"
)

// NewGroupCmd creates the group command tree
func NewGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage task groups",
	}

	cmd.AddCommand(newGroupAddCmd())
	cmd.AddCommand(newGroupListCmd())
	cmd.AddCommand(newGroupRemoveCmd())

	return cmd
}

func newGroupAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new task group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			group, err := a.planner.Groups.Create(ctx, validation.GroupInput{
				Name:  strings.Join(args, " "),
				Color: color,
			})
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			fmt.Printf("Created group %s (%s)\n", group.Name, group.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color, defaults by group name")

	return cmd
}

func newGroupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List task groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			groups := a.planner.Groups.List(ctx)
			if len(groups) == 0 {
				fmt.Println("No groups")
				return nil
			}

			for _, group := range groups {
				label := ""
				if group.IsDefault {
					label = " (default)"
				}
				fmt.Printf("%s (%s)%s  id=%s\n", group.Name, group.Color, label, group.ID)
			}
			return nil
		},
	}
}

func newGroupRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task group",
		Long:  "Delete a task group and clear it from every task that referenced it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid group id: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := a.ctx()
			defer cancel()

			if err := a.planner.DeleteGroup(ctx, id); err != nil {
				return fmt.Errorf("failed to delete group: %w", err)
			}

			fmt.Println("Group deleted")
			return nil
		},
	}
}
