package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/epiphany/pkg/models"
	"github.com/mattsolo1/epiphany/pkg/service"
	"github.com/mattsolo1/epiphany/pkg/tree"
)

func NewTreeCmd(svc **service.Service, workspaceOverride *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the note tree of the workspace",
		Long: `Print the note tree stored in epiphany.json.

Formats:
  text   indented titles with filenames (default)
  json   the index as stored on disk
  yaml   the index converted to YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			if _, err := s.GetWorkspaceContext(*workspaceOverride); err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), s.Content(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or yaml")

	return cmd
}

func writeTree(w io.Writer, content *models.WorkspaceContent, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal index: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(content); err != nil {
			return fmt.Errorf("encode index: %w", err)
		}
		return encoder.Close()
	case "text", "":
		fmt.Fprintln(w, content.WorkspaceTitle)
		tree.Walk(content.ContentTable, func(item, _ *models.ContentItem, depth int) bool {
			fmt.Fprintf(w, "%s%s  [%s]\n", strings.Repeat("  ", depth+1), item.Name, item.Filename)
			return true
		})
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
