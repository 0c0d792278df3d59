package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recsel/internal/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{ID: 3, Title: "Third record", Label: "beta"},
		{ID: 1, Title: "First record"},
		{ID: 12, Title: "Tab\ttolerant title", Label: "gamma"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "ids", want: FormatIDs},
		{in: "TSV", want: FormatTSV},
		{in: " json ", want: FormatJSON},
		{in: "", want: FormatIDs},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestWriteIDsKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRecords(), FormatIDs))

	assert.Equal(t, "3\n1\n12\n", buf.String(), "ids come out one per line in selection order")
}

func TestWriteIDsEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatIDs))

	assert.Empty(t, buf.String(), "an empty selection writes nothing")
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRecords(), FormatTSV))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "3\tThird record\tbeta", lines[0])
	assert.Equal(t, "1\tFirst record\t", lines[1], "missing label leaves the column empty")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleRecords(), FormatJSON))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, float64(3), decoded[0]["id"])
	assert.Equal(t, "Third record", decoded[0]["title"])
	assert.Equal(t, "beta", decoded[0]["label"])

	_, hasLabel := decoded[1]["label"]
	assert.False(t, hasLabel, "empty labels are omitted from the JSON")
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleRecords(), Format("yaml"))

	assert.Error(t, err)
	assert.Empty(t, buf.String())
}
