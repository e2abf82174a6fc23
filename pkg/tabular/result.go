package tabular

import (
	"fmt"
)

// ResultKind identifies which aggregation produced a Result.
type ResultKind string

const (
	KindSum     ResultKind = "sum"
	KindAverage ResultKind = "average"
	KindMatches ResultKind = "matches"
)

// Result is one aggregation outcome for one column. Numeric kinds carry
// Value; KindMatches carries Values.
type Result struct {
	Column string
	Kind   ResultKind
	Value  float64
	Values []string
}

// SumResult builds a sum outcome for a column.
func SumResult(column string, value float64) Result {
	return Result{Column: column, Kind: KindSum, Value: value}
}

// AverageResult builds an average outcome for a column.
func AverageResult(column string, value float64) Result {
	return Result{Column: column, Kind: KindAverage, Value: value}
}

// MatchesResult builds a match-scan outcome for a column.
func MatchesResult(column string, values []string) Result {
	return Result{Column: column, Kind: KindMatches, Values: values}
}

// String renders numeric results as "(column=value)" with two decimals and
// match results as "(column=[v1 v2])".
func (r Result) String() string {
	if r.Kind == KindMatches {
		return fmt.Sprintf("(%s=%v)", r.Column, r.Values)
	}
	return fmt.Sprintf("(%s=%.2f)", r.Column, r.Value)
}
