package tabular

import (
	"bufio"
	"io"
	"strings"
)

// maxCSVLine caps a single line at 1 MiB.
const maxCSVLine = 1024 * 1024

// ParseCSV reads a CSV document into a RecordSet. The first line is the
// header; its cells are trimmed and become the column names in header
// order. Fields split on the literal comma only: quoted fields are not
// interpreted, so a quoted field containing a comma splits apart.
//
// A data row maps its fields to columns by position. Rows shorter than the
// header leave the trailing columns absent from that record; fields past
// the last header cell are dropped. Values are stored exactly as written.
func ParseCSV(r io.Reader) (*RecordSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCSVLine)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, NewParseError("reading csv header", err)
		}
		return nil, NewParseError("csv document is empty", nil)
	}

	// keys holds the trimmed header cell for every field position; columns
	// holds each distinct name once, first occurrence winning.
	headerCells := strings.Split(scanner.Text(), ",")
	keys := make([]string, len(headerCells))
	columns := make([]string, 0, len(headerCells))
	seen := make(map[string]struct{}, len(headerCells))
	for i, cell := range headerCells {
		name := strings.TrimSpace(cell)
		keys[i] = name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}

	var records []Record
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		record := make(Record, len(fields))
		for i, field := range fields {
			if i >= len(keys) {
				break
			}
			if _, ok := record[keys[i]]; ok {
				continue
			}
			record[keys[i]] = field
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, NewParseError("reading csv data", err)
	}

	return &RecordSet{columns: columns, records: records, format: FormatCSV}, nil
}
