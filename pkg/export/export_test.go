package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()
	data := Dataset{
		Headers: []string{"ID", "Title", "Status"},
		Rows: []map[string]string{
			{"ID": "3", "Title": "Garbage not collected", "Status": "pending"},
			{"ID": "4", "Title": "Illegal dumping", "Status": "in_progress"},
		},
	}

	out, err := exporter.Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID,Title,Status\n3,Garbage not collected,pending\n4,Illegal dumping,in_progress\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()
	_, err := exporter.Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()
	data := Dataset{
		Headers: []string{"ID", "Title"},
		Rows:    []map[string]string{{"ID": "3", "Title": "Garbage not collected"}},
	}

	out, err := exporter.Render(data, "Waste Reports")
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	exporter := NewPDFExporter()
	_, err := exporter.Render(Dataset{}, "empty")
	assert.Error(t, err)
}
