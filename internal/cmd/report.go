package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/filetags/internal/filelock"
	"github.com/harrison/filetags/internal/logger"
	"github.com/harrison/filetags/internal/registry"
	"github.com/spf13/cobra"
)

// reportOptions carries the report flags.
type reportOptions struct {
	units      string
	outputPath string
	files      bool
}

// NewReportCommand creates and returns the report subcommand
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print how many files each tag holds and their total size",
		Long: `Print one line per tag in the order tags were added:

  <count> <tag> files taking up <size> <units>

Sizes are 1024-based. With --files each tag's files are listed under its
line, largest first. With --output the report is written atomically to a
file instead of stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, cfg, log, err := setupRegistry(cmd)
			if err != nil {
				return err
			}

			opts := reportOptions{units: cfg.Units}
			if cmd.Flags().Changed("units") {
				opts.units, _ = cmd.Flags().GetString("units")
			}
			opts.outputPath, _ = cmd.Flags().GetString("output")
			opts.files, _ = cmd.Flags().GetBool("files")

			return reportWithOutput(reg, opts, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("units", "MB", "Size units: B, KB, MB, GB, TB (default from config)")
	cmd.Flags().String("output", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("files", false, "List each tag's files with their sizes")

	return cmd
}

// reportWithOutput writes the report to opts.outputPath when set, else to output
func reportWithOutput(reg *registry.Registry, opts reportOptions, log *logger.ConsoleLogger, output io.Writer) error {
	var report string
	var err error
	if opts.files {
		report, err = reg.DetailedReport(opts.units)
	} else {
		report, err = reg.Report(opts.units)
	}
	if err != nil {
		return err
	}

	if opts.outputPath == "" {
		_, err := io.WriteString(output, report)
		return err
	}

	if err := filelock.LockAndWrite(opts.outputPath, []byte(report)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.LogInfo(fmt.Sprintf("wrote %d bytes to %s", len(report), opts.outputPath))
	fmt.Fprintf(output, "Report written to %s\n", opts.outputPath)
	return nil
}
