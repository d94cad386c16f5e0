package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
	"github.com/mattsolo1/epiphany/pkg/tree"
)

func NewDoctorCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the workspace index for inconsistencies",
		Long: `The doctor command checks epiphany.json against the notes folder.

Issues it can detect:
- Notes sharing the same id
- Notes sharing the same filename
- Index entries whose note file is missing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return err
			}

			problems, err := s.Check(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checking workspace %s...\n\n", ctx.Root())

			if len(problems) == 0 {
				fmt.Fprintf(out, "No issues found across %d notes.\n", tree.Count(s.Content().ContentTable))
				return nil
			}

			for _, p := range problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			fmt.Fprintf(out, "\nSummary: found %d issue(s)\n", len(problems))
			return fmt.Errorf("workspace has %d issue(s)", len(problems))
		},
	}

	return cmd
}
