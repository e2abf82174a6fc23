package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "csv", FormatCSV.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestRecordSet_ColumnsReturnsCopy(t *testing.T) {
	rs, err := ParseCSV(strings.NewReader("name,mark\nAlice,10\n"))
	require.NoError(t, err)

	cols := rs.Columns()
	cols[0] = "mutated"
	assert.Equal(t, []string{"name", "mark"}, rs.Columns())
}

func TestRecordSet_RecordsReturnsCopy(t *testing.T) {
	rs, err := ParseCSV(strings.NewReader("name\nAlice\nBob\n"))
	require.NoError(t, err)

	records := rs.Records()
	records[0] = Record{"name": "mutated"}
	assert.Equal(t, "Alice", rs.Records()[0]["name"])
}

func TestRecordSet_SourceIsEmptyForReaders(t *testing.T) {
	rs, err := ParseCSV(strings.NewReader("name\n"))
	require.NoError(t, err)
	assert.Empty(t, rs.Source())
}
