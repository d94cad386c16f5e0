package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/epiphany/pkg/models"
)

func sampleContent() *models.WorkspaceContent {
	return &models.WorkspaceContent{
		WorkspaceTitle: "notes",
		AbsolutePath:   "/home/alice/notes",
		ContentTable: []*models.ContentItem{
			{Name: "Welcome to Epiphany", Filename: "welcome_to_epiphany.djot", ID: "w", Children: []*models.ContentItem{
				{Name: "Child", Filename: "child.djot", ID: "c", Children: []*models.ContentItem{}},
			}},
		},
	}
}

func TestWriteTreeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, sampleContent(), "text"))

	assert.Equal(t, "notes\n  Welcome to Epiphany  [welcome_to_epiphany.djot]\n    Child  [child.djot]\n", buf.String())
}

func TestWriteTreeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, sampleContent(), "yaml"))

	var decoded models.WorkspaceContent
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleContent(), &decoded)
	assert.Contains(t, buf.String(), "workspace_title: notes")
}

func TestWriteTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, sampleContent(), "json"))
	assert.Contains(t, buf.String(), `"content_table": [`)
}

func TestWriteTreeUnknownFormat(t *testing.T) {
	assert.Error(t, writeTree(&bytes.Buffer{}, sampleContent(), "xml"))
}
