package main

import (
	"fmt"
	"os"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/cmd"
	"github.com/mattsolo1/epiphany/cmd/config"
	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/service"
)

var (
	svc               *service.Service
	workspaceOverride string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// hintFor suggests a next step for errors the user can fix from the command line.
func hintFor(err error) string {
	switch models.KindOf(err) {
	case models.KindNoConfigDirectory:
		return "hint: pass --config-dir or set EPIPHANY_CONFIG_DIR"
	case models.KindNotConfigured, models.KindNoWorkspaceConfigured:
		return "hint: run 'epiphany init <path>' to create a workspace"
	case models.KindMalformedConfig:
		return "hint: fix or remove the config file, or run 'epiphany init <path>' again"
	case models.KindIndexReadFailed, models.KindIndexMalformed:
		return "hint: pass -W to open another workspace, or run 'epiphany init <path>'"
	default:
		return ""
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"epiphany",
		"Manage an Epiphany notes workspace",
	)
	rootCmd.PersistentFlags().StringVarP(&workspaceOverride, "workspace", "W", "", "Use the workspace at this path instead of the configured one")
	config.AddGlobalFlags(rootCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()

		s, err := config.InitService()
		if err != nil {
			return err
		}
		svc = s
		return nil
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewInitCmd(&svc))
	rootCmd.AddCommand(cmd.NewOpenCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewNewCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewShowCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewSaveCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewRenameCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewMoveCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewTreeCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewDoctorCmd(&svc, &workspaceOverride))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	return rootCmd
}
