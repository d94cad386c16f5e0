package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
)

func NewSaveCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	var (
		noteID   string
		title    string
		filename string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write a note from stdin, renaming it to match its title",
		Long: `Write stdin into a note file and print the filename it ends up with.

A note still named <id>.djot is renamed after its title, adding _1.._25
or _<id> when the name is taken. A note that already has a title-based
name only moves when the new name is free.

This does not touch epiphany.json; use 'epiphany rename' to update both.

Example:
  echo "hello" | epiphany save --id abc123 --title "My First Note" --file abc123.djot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return err
			}

			content, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			newFilename, err := s.SaveFile(ctx, noteID, title, filename, string(content))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), newFilename)
			return nil
		},
	}

	cmd.Flags().StringVar(&noteID, "id", "", "Note id")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Note title")
	cmd.Flags().StringVarP(&filename, "file", "f", "", "Current filename of the note")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
