package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DetectFormat decides the loader for a path from its file extension,
// case-insensitively. Anything other than .csv or .json is unsupported.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatUnknown, NewFormatError(fmt.Sprintf("unsupported file type %q", path), nil).
			WithContext("path", path)
	}
}

// Load reads the file at path into a RecordSet, picking the loader from the
// file extension.
func Load(path string) (*RecordSet, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatCSV {
		return LoadCSV(path)
	}
	return LoadJSON(path)
}

// LoadCSV reads the file at path as CSV regardless of its extension.
func LoadCSV(path string) (*RecordSet, error) {
	return loadFile(path, ParseCSV)
}

// LoadJSON reads the file at path as JSON regardless of its extension.
func LoadJSON(path string) (*RecordSet, error) {
	return loadFile(path, ParseJSON)
}

func loadFile(path string, parse func(io.Reader) (*RecordSet, error)) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewNotFoundError(path, err)
	}
	defer f.Close()

	rs, err := parse(f)
	if err != nil {
		return nil, annotatePath(err, path)
	}
	rs.source = path
	return rs, nil
}

// annotatePath attaches the source path to package errors bubbling out of a
// parser that only saw a reader.
func annotatePath(err error, path string) error {
	var e *Error
	if errors.As(err, &e) {
		return e.WithContext("path", path)
	}
	return err
}
