package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
)

func NewInitCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Set up a workspace and make it the active one",
		Long: `Set up the workspace at <path> and record it as the active workspace.

This command will:
- Write the config file listing <path> as the only workspace
- Create notes/ and assets/ under <path>
- Write the welcome note and a fresh epiphany.json

Running it on an existing workspace resets epiphany.json and the welcome
note. Other notes and assets are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			ctx, content, err := s.FirstTimeSetup(path)
			if err != nil {
				return err
			}

			configPath, _ := s.ConfigPath()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized workspace '%s' at %s\n", content.WorkspaceTitle, ctx.Root())
			fmt.Fprintf(out, "Config: %s\n", configPath)
			fmt.Fprintln(out, "\nReady to use! Try 'epiphany new' to create your first note.")
			return nil
		},
	}

	return cmd
}
