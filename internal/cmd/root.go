package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for filetags
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filetags",
		Short: "Tag and look up files under a directory by glob pattern",
		Long: `Filetags scans a base directory for files matching glob patterns and
groups them under named tags, narrowed by include and exclude substrings.

Tags come from .filetags.yaml in the base directory (or --config). With no
tags configured, every file with an extension is tagged "all".

Lookup keys resolve in order: glob pattern, tag name, filename stem, then
substring of the full path.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("dir", "", "Base directory to search (default: current directory)")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: <dir>/.filetags.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().Bool("include-hidden", false, "Include files whose names start with '.' or '~$'")

	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewTagsCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewFindCommand())

	return cmd
}
