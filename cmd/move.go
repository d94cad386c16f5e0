package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
)

func NewMoveCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	var toTop bool

	cmd := &cobra.Command{
		Use:   "move <id> [parent-id]",
		Short: "Nest a note under another note",
		Long: `Move a note, together with its children, below another note in the tree.

Examples:
  epiphany move abc123 def456   # nest abc123 under def456
  epiphany move abc123 --top    # move abc123 back to the top level`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			parentID := ""
			if len(args) == 2 {
				parentID = args[1]
			}
			if parentID == "" && !toTop {
				return fmt.Errorf("give a parent id or --top")
			}

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return err
			}
			if err := s.MoveNote(ctx, args[0], parentID); err != nil {
				return err
			}

			if parentID == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to the top level\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s under %s\n", args[0], parentID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&toTop, "top", false, "Move the note to the top level")

	return cmd
}
