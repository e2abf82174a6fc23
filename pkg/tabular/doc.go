// Package tabular loads column-oriented data files and computes per-column
// aggregates. It consolidates format detection, CSV and JSON record loading,
// and the aggregation operations into a single package that handles the
// complete lifecycle from file ingestion to computed results.
//
// # Architecture
//
// The package is organized around three components:
//
// 1. Loaders: read CSV or JSON documents into an immutable RecordSet
// 2. Aggregations: Sum, AverageStrict, AverageOrZero and the ordered
// prefix/suffix match scans, all methods on RecordSet
// 3. Batch operations: run one aggregation across many files and merge
// the per-file results
//
// # Usage
//
// Load a file and sum a column:
//
//	rs, err := tabular.Load("data/marks.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	total, err := rs.Sum("mark")
//
// Scan the first contiguous run of prefix matches:
//
//	names, err := rs.MatchesPrefix("name", "An")
//
// Aggregate across several files at once:
//
//	results, err := tabular.SumFiles(ctx, paths, "mark")
//
// # Data Model
//
// A RecordSet is fully materialized at load time and never mutated
// afterwards. Records hold raw string values exactly as they appear in the
// source document; numeric interpretation happens only inside the numeric
// aggregations. A column absent from a record is a missing key, which is
// distinct from a column holding an empty string.
//
// # Column Matching
//
// The record set carries the matching rule of the loader that produced it.
// CSV sets match requested names against headers after trimming both sides,
// case-insensitively. JSON sets require the exact key. Operations report
// ErrTypeColumnNotFound when no column matches.
//
// # Error Handling
//
// All failures are *Error values with a discriminating ErrorType, so callers
// can branch with the Is* predicates:
//
//	- ErrTypeNotFound: the file could not be opened
//	- ErrTypeFormat: unsupported extension or document shape
//	- ErrTypeParse: malformed CSV or JSON content
//	- ErrTypeColumnNotFound: the requested column matches nothing
//	- ErrTypeInvalidNumber: a non-numeric value in a numeric aggregation
//	- ErrTypeNoData: strict average over zero participating values
//
// Numeric aggregations fail fast: the first invalid value aborts the whole
// operation with no partial result.
package tabular
