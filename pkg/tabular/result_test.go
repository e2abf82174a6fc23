package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultConstructors(t *testing.T) {
	sum := SumResult("mark", 30)
	assert.Equal(t, Result{Column: "mark", Kind: KindSum, Value: 30}, sum)

	avg := AverageResult("mark", 15)
	assert.Equal(t, KindAverage, avg.Kind)

	matches := MatchesResult("name", []string{"Ann"})
	assert.Equal(t, KindMatches, matches.Kind)
	assert.Equal(t, []string{"Ann"}, matches.Values)
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{name: "sum", result: SumResult("mark", 30), want: "(mark=30.00)"},
		{name: "average renders two decimals", result: AverageResult("mark", 15.5), want: "(mark=15.50)"},
		{name: "matches", result: MatchesResult("name", []string{"Ann", "Annabel"}), want: "(name=[Ann Annabel])"},
		{name: "empty matches", result: MatchesResult("name", []string{}), want: "(name=[])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
		})
	}
}
