// Package files provides data-file discovery for the tabstat tool.
//
// Discovery lists the loadable data files (.csv and .json) of a directory
// without recursing, skipping dotfiles and subdirectories, and returns them
// in name order so downstream merges see a stable sequence.
//
// Example usage:
//
//	// Create a discovery instance
//	discovery := files.NewDiscovery("/path/to/base", logger)
//
//	// Find all data files in a directory
//	dataFiles, err := discovery.FindDataFiles("input")
//
//	// Hand their paths to the loaders
//	paths := files.Paths(dataFiles)
package files
