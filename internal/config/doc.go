// Package config provides configuration management for the tabstat tool.
// It assembles configuration from layered sources, validates the result,
// and exposes typed access to the settings the tool needs.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, later sources
// taking precedence:
//
//	1. Built-in defaults (lowest priority)
//	2. An optional YAML configuration file
//	3. Environment variables (highest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern TABSTAT_* for namespacing:
//
//	TABSTAT_LOGGING_LEVEL=debug
//	TABSTAT_LOGGING_FORMAT=text
//	TABSTAT_LOGGING_OUTPUT=file
//	TABSTAT_LOGGING_FILE_PATH=logs/tabstat.log
//	TABSTAT_PROCESSING_MAX_FILE_SIZE_MB=16
//
// # Validation
//
// The assembled configuration is validated at load time to ensure:
//
//	- The log level, format and output are known values
//	- File output always carries a file path
//	- The file size cap is at least one megabyte
//
// # Usage
//
// Load configuration at startup:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
