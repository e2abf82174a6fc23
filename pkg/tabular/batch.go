package tabular

import (
	"context"
)

// Batch operations run one aggregation across many files. Every file is
// loaded and aggregated independently; the first failure of any kind
// aborts the whole batch with that error and no partial result. Keyed
// variants merge per-file outcomes into a map keyed by the resolved column
// name of each file, the later file overwriting on a shared key.

// SumFiles sums the column in every file and returns one result per path,
// in path order.
func SumFiles(ctx context.Context, paths []string, column string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	err := forEachFile(ctx, paths, column, func(key string, rs *RecordSet) error {
		total, err := rs.Sum(column)
		if err != nil {
			return err
		}
		results = append(results, SumResult(key, total))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SumFilesByColumn sums the column in every file and merges the outcomes
// by resolved column name.
func SumFilesByColumn(ctx context.Context, paths []string, column string) (map[string]float64, error) {
	merged := make(map[string]float64, len(paths))
	err := forEachFile(ctx, paths, column, func(key string, rs *RecordSet) error {
		total, err := rs.Sum(column)
		if err != nil {
			return err
		}
		merged[key] = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// AverageFiles computes the strict average of the column in every file and
// merges the outcomes by resolved column name. A file with no
// participating values fails the batch with ErrTypeNoData.
func AverageFiles(ctx context.Context, paths []string, column string) (map[string]float64, error) {
	merged := make(map[string]float64, len(paths))
	err := forEachFile(ctx, paths, column, func(key string, rs *RecordSet) error {
		avg, err := rs.AverageStrict(column)
		if err != nil {
			return err
		}
		merged[key] = avg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// MatchesPrefixFiles runs the prefix scan over every file and merges the
// outcomes by resolved column name.
func MatchesPrefixFiles(ctx context.Context, paths []string, column, prefix string) (map[string][]string, error) {
	merged := make(map[string][]string, len(paths))
	err := forEachFile(ctx, paths, column, func(key string, rs *RecordSet) error {
		matches, err := rs.MatchesPrefix(column, prefix)
		if err != nil {
			return err
		}
		merged[key] = matches
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// MatchesSuffixFiles runs the suffix scan over every file and merges the
// outcomes by resolved column name.
func MatchesSuffixFiles(ctx context.Context, paths []string, column, suffix string) (map[string][]string, error) {
	merged := make(map[string][]string, len(paths))
	err := forEachFile(ctx, paths, column, func(key string, rs *RecordSet) error {
		matches, err := rs.MatchesSuffix(column, suffix)
		if err != nil {
			return err
		}
		merged[key] = matches
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// forEachFile loads every path in order and hands the set and its resolved
// column name to fn. It stops at context cancellation or the first error.
func forEachFile(ctx context.Context, paths []string, column string, fn func(key string, rs *RecordSet) error) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rs, err := Load(path)
		if err != nil {
			return err
		}
		key, err := rs.resolveColumn(column)
		if err != nil {
			return err
		}
		if err := fn(key, rs); err != nil {
			return err
		}
	}
	return nil
}
