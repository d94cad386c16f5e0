package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
	"github.com/mattsolo1/epiphany/pkg/tree"
)

// NewOpenCmd creates the `open` command, which loads the active workspace.
func NewOpenCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Load the active workspace and show where it lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return err
			}
			content := s.Content()
			configPath, _ := s.ConfigPath()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROPERTY\tVALUE")
			fmt.Fprintln(w, "--------\t-----")
			fmt.Fprintf(w, "Workspace\t%s\n", content.WorkspaceTitle)
			fmt.Fprintf(w, "Root\t%s (%s)\n", ctx.Root(), ctx.Source)
			fmt.Fprintf(w, "Notes\t%d\n", tree.Count(content.ContentTable))
			fmt.Fprintf(w, "Config\t%s\n", configPath)
			return w.Flush()
		},
	}

	return cmd
}
