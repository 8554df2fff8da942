package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterPreservesOrder(t *testing.T) {
	data := Dataset{Headers: []string{"ID", "Name"}}
	data.AddRow("1", "Ana")
	data.AddRow("2", "Luka, Jr.")

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	assert.Equal(t, "ID,Name\n1,Ana\n2,\"Luka, Jr.\"\n", string(out))
}

func TestCSVExporterRejectsRaggedRows(t *testing.T) {
	data := Dataset{Headers: []string{"ID", "Name"}}
	data.AddRow("1")

	_, err := NewCSVExporter().Render(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}
