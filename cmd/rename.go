package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/epiphany/pkg/service"
	"github.com/mattsolo1/epiphany/pkg/tree"
)

func NewRenameCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Retitle a note and update the workspace index",
		Long: `Retitle a note, rename its file to match and record both in epiphany.json.

The note keeps its current text unless new content is piped on stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc
			id, title := args[0], args[1]

			ctx, err := s.GetWorkspaceContext(*workspaceOverride)
			if err != nil {
				return err
			}

			// Auto-detect stdin if not explicitly set
			if !cmd.Flags().Changed("stdin") {
				fromStdin = stdinPiped(cmd.InOrStdin())
			}

			var content string
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				content = string(data)
			} else {
				item, _ := tree.Find(s.Content().ContentTable, id)
				if item == nil {
					return fmt.Errorf("note not found: %s", id)
				}
				content, err = s.LoadNote(ctx, item.Filename)
				if err != nil {
					return err
				}
			}

			item, err := s.RenameNote(ctx, id, title, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", item.Name, item.Filename)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read new content from stdin (auto-detected when piped)")

	return cmd
}

// stdinPiped reports whether r carries input rather than an interactive
// terminal. Readers that are not files always count as input.
func stdinPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	stat, err := f.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) == 0
}
