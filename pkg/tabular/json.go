package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ParseJSON reads a JSON document into a RecordSet. The document root must
// be a single object, loaded as one record, or an array of objects. The
// column set is the key set of the first record in the order the keys
// appear in the document.
//
// Scalar values become raw strings: strings keep their text, numbers keep
// their literal form as written, booleans become "true" or "false". A null
// value leaves the column visible but the record without a value. Nested
// objects or arrays inside a record are rejected.
func ParseJSON(r io.Reader) (*RecordSet, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, NewParseError("json document is empty", nil)
	}
	if err != nil {
		return nil, NewParseError("reading json document", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, NewFormatError(fmt.Sprintf("json document must be an object or an array of objects, got %s", tokenName(tok)), nil)
	}

	var (
		columns []string
		records []Record
	)
	if delim == '{' {
		record, keys, err := decodeFlatObject(dec)
		if err != nil {
			return nil, err
		}
		columns = keys
		records = []Record{record}
	} else {
		first := true
		for dec.More() {
			open, err := dec.Token()
			if err != nil {
				return nil, NewParseError("reading json array", err)
			}
			if d, ok := open.(json.Delim); !ok || d != '{' {
				return nil, NewParseError(fmt.Sprintf("json array element must be an object, got %s", tokenName(open)), nil)
			}
			record, keys, err := decodeFlatObject(dec)
			if err != nil {
				return nil, err
			}
			if first {
				columns = keys
				first = false
			}
			records = append(records, record)
		}
		if _, err := dec.Token(); err != nil {
			return nil, NewParseError("reading json array", err)
		}
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, NewParseError("unexpected content after json document", err)
	}

	return &RecordSet{columns: columns, records: records, format: FormatJSON}, nil
}

// decodeFlatObject consumes one object body after its opening brace and
// returns the record plus the object's keys in first-appearance order.
// Duplicate keys keep their first position and their last value.
func decodeFlatObject(dec *json.Decoder) (Record, []string, error) {
	record := make(Record)
	var keys []string
	seen := make(map[string]struct{})

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, NewParseError("reading json object key", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, NewParseError("malformed json object key", nil)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, nil, NewParseError(fmt.Sprintf("reading json value of %q", key), err)
		}
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
		switch v := valTok.(type) {
		case string:
			record[key] = v
		case json.Number:
			record[key] = v.String()
		case bool:
			record[key] = strconv.FormatBool(v)
		case nil:
			// null keeps the column but leaves the record without a value
			delete(record, key)
		case json.Delim:
			return nil, nil, NewParseError(fmt.Sprintf("json value of %q is not a flat scalar", key), nil)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, NewParseError("reading json object", err)
	}
	return record, keys, nil
}

func tokenName(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return "an object"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return "null"
	}
}
