package tabular

import (
	"strings"
)

// Format identifies the source format of a record set.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatJSON
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Record is a single row or object, mapping column names to the raw string
// value found in the source. A column the record has no value for is a
// missing key, not an empty string.
type Record map[string]string

// RecordSet is the fully materialized content of one data source. It is
// immutable after loading; aggregations never modify it.
type RecordSet struct {
	columns []string
	records []Record
	format  Format
	source  string
}

// Columns returns the ordered column names of the set. CSV sets carry the
// trimmed header cells in header order, JSON sets the keys of the first
// record in document order.
func (rs *RecordSet) Columns() []string {
	out := make([]string, len(rs.columns))
	copy(out, rs.columns)
	return out
}

// Records returns the records in source order.
func (rs *RecordSet) Records() []Record {
	out := make([]Record, len(rs.records))
	copy(out, rs.records)
	return out
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.records)
}

// Format returns the format the set was loaded from.
func (rs *RecordSet) Format() Format {
	return rs.format
}

// Source returns the path the set was loaded from, or "" when it was parsed
// from a reader.
func (rs *RecordSet) Source() string {
	return rs.source
}

// resolveColumn maps a requested column name to the stored column name
// using the matching rule of the set's format. CSV matches trimmed names
// case-insensitively, first column wins; JSON requires the exact key.
func (rs *RecordSet) resolveColumn(name string) (string, error) {
	if rs.format == FormatCSV {
		want := strings.TrimSpace(name)
		for _, col := range rs.columns {
			if strings.EqualFold(want, col) {
				return col, nil
			}
		}
	} else {
		for _, col := range rs.columns {
			if name == col {
				return col, nil
			}
		}
	}
	return "", NewColumnNotFoundError(name, rs.Columns()).WithContext("source", rs.source)
}
