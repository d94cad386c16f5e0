package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
)

func NewNewCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	var (
		parentID string
		noteID   string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a blank note",
		Long: `Create a blank "Unnamed Note" and add it to the workspace index.

The file is named after the note id until the note gets a title.

Examples:
  epiphany new                  # top-level note
  epiphany new --parent <id>    # nested below another note`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return fmt.Errorf("get workspace context: %w", err)
			}

			var opts []service.CreateOption
			if parentID != "" {
				opts = append(opts, service.UnderParent(parentID))
			}
			if noteID != "" {
				opts = append(opts, service.WithID(noteID))
			}

			item, err := s.NewNote(ctx, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s (%s)\n", item.Filename, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&parentID, "parent", "p", "", "Id of the note to nest the new note under")
	cmd.Flags().StringVar(&noteID, "id", "", "Use this id instead of generating one")

	return cmd
}
