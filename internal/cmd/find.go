package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/filetags/internal/fileutil"
	"github.com/spf13/cobra"
)

// NewFindCommand creates and returns the find subcommand
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "List files under the base directory matching a glob, without tagging",
		Long: `Scan the base directory once and print every file whose name matches
the glob pattern. Configured tags are not loaded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m := fileutil.NewMatcher(nil)
			root, err := m.Canonicalize(cfg.Dir)
			if err != nil {
				return err
			}
			n, err := findWithOutput(m, root, args[0], cfg.ExcludeHidden, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			log.LogInfo(fmt.Sprintf("%d files under %s match %s", n, root, args[0]))
			return nil
		},
	}

	return cmd
}

// findWithOutput prints the scan results and returns how many there were
func findWithOutput(m *fileutil.Matcher, root, pattern string, excludeHidden bool, output io.Writer) (int, error) {
	files, err := m.Scan(root, pattern, excludeHidden)
	if err != nil {
		return 0, err
	}
	for _, f := range files {
		fmt.Fprintln(output, f)
	}
	return len(files), nil
}
