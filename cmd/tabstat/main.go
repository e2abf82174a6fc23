package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"tabstat/internal/config"
	"tabstat/internal/files"
	"tabstat/internal/infrastructure"
	"tabstat/internal/validation"
	"tabstat/internal/version"
	"tabstat/pkg/tabular"
)

func main() {
	op := flag.String("op", "", "operation: sum | avg | avg0 | prefix | suffix")
	column := flag.String("column", "", "column to aggregate")
	pattern := flag.String("pattern", "", "pattern for prefix/suffix matching")
	dir := flag.String("dir", "", "directory to scan for .csv and .json files")
	configPath := flag.String("config", "", "optional YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.FullString())
		return
	}

	if *op == "" || *column == "" {
		fmt.Fprintln(os.Stderr, "Usage: tabstat -op sum|avg|avg0|prefix|suffix -column NAME [-pattern P] [-dir DIR] [file ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.EnsureTraceID(context.Background())

	logger.InfoContext(ctx, "Starting aggregation",
		slog.String("op", *op),
		slog.String("column", *column))

	validator := validation.NewFileValidator(logger, cfg.MaxFileSizeBytes())

	paths := flag.Args()
	if *dir != "" {
		if err := validator.ValidateInputDirectory(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		discovery := files.NewDiscovery(".", logger)
		found, err := discovery.FindDataFiles(*dir)
		if err != nil {
			logger.ErrorContext(ctx, "Directory scan failed",
				slog.String("dir", *dir),
				slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		paths = append(paths, files.Paths(found)...)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input files (pass file arguments or -dir)")
		os.Exit(1)
	}

	for _, path := range paths {
		if err := validator.ValidateDataFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := runOperation(ctx, *op, *column, *pattern, paths); err != nil {
		logger.ErrorContext(ctx, "Aggregation failed",
			slog.String("op", *op),
			slog.String("column", *column),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Aggregation complete",
		slog.String("op", *op),
		slog.Int("files", len(paths)))
}

// runOperation dispatches to the library and prints one line per result on
// stdout.
func runOperation(ctx context.Context, op, column, pattern string, paths []string) error {
	switch op {
	case "sum":
		results, err := tabular.SumFiles(ctx, paths, column)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("sum(%s) = %.2f\n", r.Column, r.Value)
		}
	case "avg":
		merged, err := tabular.AverageFiles(ctx, paths, column)
		if err != nil {
			return err
		}
		for _, col := range sortedKeys(merged) {
			fmt.Printf("avg(%s) = %.2f\n", col, merged[col])
		}
	case "avg0":
		for _, path := range paths {
			rs, err := tabular.Load(path)
			if err != nil {
				return err
			}
			avg, err := rs.AverageOrZero(column)
			if err != nil {
				return err
			}
			fmt.Printf("avg0(%s) = %.2f\n", column, avg)
		}
	case "prefix":
		merged, err := tabular.MatchesPrefixFiles(ctx, paths, column, pattern)
		if err != nil {
			return err
		}
		for _, col := range sortedKeys(merged) {
			fmt.Printf("prefix(%s) = %v\n", col, merged[col])
		}
	case "suffix":
		merged, err := tabular.MatchesSuffixFiles(ctx, paths, column, pattern)
		if err != nil {
			return err
		}
		for _, col := range sortedKeys(merged) {
			fmt.Printf("suffix(%s) = %v\n", col, merged[col])
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
