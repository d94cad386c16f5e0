package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
)

func NewShowCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <filename>",
		Short: "Print the contents of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return err
			}

			text, err := s.LoadNote(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	return cmd
}
