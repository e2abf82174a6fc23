package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Format
		wantErr bool
	}{
		{name: "csv", path: "data.csv", want: FormatCSV},
		{name: "json", path: "data.json", want: FormatJSON},
		{name: "uppercase csv", path: "DATA.CSV", want: FormatCSV},
		{name: "mixed case json", path: "Data.Json", want: FormatJSON},
		{name: "nested path", path: "a/b/c.csv", want: FormatCSV},
		{name: "xlsx rejected", path: "data.xlsx", wantErr: true},
		{name: "txt rejected", path: "data.txt", wantErr: true},
		{name: "no extension", path: "data", wantErr: true},
		{name: "csv in the middle only", path: "data.csv.bak", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsFormat(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_DispatchesByExtension(t *testing.T) {
	csvPath := writeTempFile(t, "marks.csv", "name,mark\nAlice,10\n")
	jsonPath := writeTempFile(t, "marks.json", `[{"name": "Alice", "mark": 10}]`)

	fromCSV, err := Load(csvPath)
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, fromCSV.Format())
	assert.Equal(t, csvPath, fromCSV.Source())

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, fromJSON.Format())
	assert.Equal(t, jsonPath, fromJSON.Source())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "marks.xlsx", "not really a spreadsheet")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, IsFormat(err), "extension decides before the file is opened")
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	path := writeTempFile(t, "bad.json", `{"name": `)
	_, err := Load(path)
	require.Error(t, err)
	require.True(t, IsParse(err))

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, path, e.Context["path"])
}

func TestLoad_IsRepeatable(t *testing.T) {
	path := writeTempFile(t, "marks.csv", "name,mark\nAlice,10\nBob,20\n")

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first.Columns(), second.Columns())
	assert.Equal(t, first.Records(), second.Records())
}

func TestLoadCSV_IgnoresExtension(t *testing.T) {
	path := writeTempFile(t, "table.txt", "name,mark\nAlice,10\n")
	rs, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())
}

func TestLoadJSON_IgnoresExtension(t *testing.T) {
	path := writeTempFile(t, "table.txt", `{"mark": 10}`)
	rs, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())
}
