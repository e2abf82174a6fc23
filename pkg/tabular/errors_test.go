package tabular

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Rendering(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewNoDataError("mark")
		assert.Equal(t, `[NO_DATA] column "mark" has no values to average`, err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := NewParseError("reading csv data", errors.New("boom"))
		assert.Equal(t, "[PARSE] reading csv data: boom", err.Error())
	})
}

func TestError_Unwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewNotFoundError("data.csv", cause)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, cause, err.Unwrap())
}

func TestError_WithContext(t *testing.T) {
	err := NewFormatError("unsupported file type", nil).
		WithContext("path", "data.xlsx")

	assert.Equal(t, "data.xlsx", err.Context["path"])
}

func TestError_PredicatesThroughWrapping(t *testing.T) {
	inner := NewInvalidNumberError("mark", "abc", nil)
	wrapped := fmt.Errorf("processing file: %w", inner)

	assert.True(t, IsInvalidNumber(wrapped))
	assert.False(t, IsNoData(wrapped))
}

func TestError_Predicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{name: "not found matches", err: NewNotFoundError("x.csv", nil), pred: IsNotFound, want: true},
		{name: "format matches", err: NewFormatError("bad", nil), pred: IsFormat, want: true},
		{name: "parse matches", err: NewParseError("bad", nil), pred: IsParse, want: true},
		{name: "column matches", err: NewColumnNotFoundError("mark", nil), pred: IsColumnNotFound, want: true},
		{name: "number matches", err: NewInvalidNumberError("mark", "abc", nil), pred: IsInvalidNumber, want: true},
		{name: "no data matches", err: NewNoDataError("mark"), pred: IsNoData, want: true},
		{name: "different type does not match", err: NewParseError("bad", nil), pred: IsFormat, want: false},
		{name: "plain error does not match", err: errors.New("plain"), pred: IsParse, want: false},
		{name: "nil does not match", err: nil, pred: IsParse, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(tt.err))
		})
	}
}

func TestNewColumnNotFoundError_CarriesAvailableColumns(t *testing.T) {
	err := NewColumnNotFoundError("grade", []string{"name", "mark"})

	require.NotNil(t, err.Context)
	assert.Equal(t, []string{"name", "mark"}, err.Context["available"])
	assert.Equal(t, "grade", err.Context["column"])
}
