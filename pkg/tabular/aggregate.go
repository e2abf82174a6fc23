package tabular

import (
	"strconv"
	"strings"
)

// Sum adds up the column's values across all records. Records without the
// column and values that trim to the empty string do not participate. The
// first participating value that fails to parse as a number aborts the
// operation with ErrTypeInvalidNumber. Summation is plain sequential
// float64 addition; no values at all sum to 0.
func (rs *RecordSet) Sum(column string) (float64, error) {
	values, err := rs.numericValues(column)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total, nil
}

// AverageStrict returns the mean of the column's participating values and
// fails with ErrTypeNoData when there are none.
func (rs *RecordSet) AverageStrict(column string) (float64, error) {
	values, err := rs.numericValues(column)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, NewNoDataError(column).WithContext("source", rs.source)
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// AverageOrZero returns the mean of the column's participating values, or
// 0 when there are none.
func (rs *RecordSet) AverageOrZero(column string) (float64, error) {
	values, err := rs.numericValues(column)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// numericValues resolves the column and parses every participating value
// in record order. A value participates when the record has the column and
// the trimmed text is non-empty.
func (rs *RecordSet) numericValues(column string) ([]float64, error) {
	col, err := rs.resolveColumn(column)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(rs.records))
	for _, record := range rs.records {
		raw, ok := record[col]
		if !ok {
			continue
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, NewInvalidNumberError(col, text, err).WithContext("source", rs.source)
		}
		values = append(values, v)
	}
	return values, nil
}

// MatchesPrefix returns the first contiguous run of values in the column
// that start with prefix. See runScan for the scan semantics.
func (rs *RecordSet) MatchesPrefix(column, prefix string) ([]string, error) {
	return rs.runScan(column, func(value string) bool {
		return strings.HasPrefix(value, prefix)
	})
}

// MatchesSuffix returns the first contiguous run of values in the column
// that end with suffix. See runScan for the scan semantics.
func (rs *RecordSet) MatchesSuffix(column, suffix string) ([]string, error) {
	return rs.runScan(column, func(value string) bool {
		return strings.HasSuffix(value, suffix)
	})
}

// Scan states for runScan.
type scanState int

const (
	scanBeforeRun scanState = iota
	scanInRun
	scanDone
)

// runScan walks records in order, testing each trimmed value with
// qualifies, and collects the first contiguous run of qualifying values.
// Before the run starts, non-qualifying values are passed over. Once the
// run has started, the first non-qualifying value ends the scan and no
// later record is inspected. Records without the column are invisible to
// the scan in both states. Emitted values are the trimmed values in
// record order; no match yields an empty slice.
func (rs *RecordSet) runScan(column string, qualifies func(string) bool) ([]string, error) {
	col, err := rs.resolveColumn(column)
	if err != nil {
		return nil, err
	}
	matches := []string{}
	state := scanBeforeRun
	for _, record := range rs.records {
		raw, ok := record[col]
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		switch state {
		case scanBeforeRun:
			if qualifies(value) {
				matches = append(matches, value)
				state = scanInRun
			}
		case scanInRun:
			if qualifies(value) {
				matches = append(matches, value)
			} else {
				state = scanDone
			}
		}
		if state == scanDone {
			break
		}
	}
	return matches, nil
}
