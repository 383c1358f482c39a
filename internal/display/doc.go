// Package display formats user-facing output for the filetags CLI.
//
// # Warnings
//
//	warning := display.Warning{
//	    Title:      "Tags matched no files",
//	    Files:      []string{"video"},
//	    Suggestion: "Check the patterns in .filetags.yaml",
//	}
//	warning.Display(os.Stderr)
//
// # Tag Listings
//
// FormatTagList renders one block per tag with its count, patterns and
// filters. When sizes are known they are shown in human-readable form
// (go-humanize, 1024-based).
//
// Colors come from fatih/color and are dropped automatically when output is
// not a terminal or NO_COLOR is set. All functions accept io.Writer
// interfaces for testability.
package display
