package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/filetags/internal/registry"
	"github.com/spf13/cobra"
)

// NewGetCommand creates and returns the get subcommand
func NewGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>...",
		Short: "Print the files a key resolves to",
		Long: `Resolve each key and print the matching paths, one per line.

A key is tried as:
  1. a glob pattern, if it contains any of * ? [ !  (matched anywhere in the path)
  2. a tag name
  3. a filename without its extension
  4. a substring of the full path

Examples:
  filetags get video
  filetags get '*.mp4'
  filetags get 143Camera --explain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, _, err := setupRegistry(cmd)
			if err != nil {
				return err
			}
			explain, _ := cmd.Flags().GetBool("explain")
			return getWithOutput(reg, args, explain, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("explain", false, "Print which lookup rule matched each key")

	return cmd
}

// getWithOutput resolves keys against reg and writes the paths to output
func getWithOutput(reg *registry.Registry, keys []string, explain bool, output io.Writer) error {
	for _, key := range keys {
		res, err := reg.Resolve(key)
		if err != nil {
			return err
		}
		if explain {
			fmt.Fprintf(output, "# %s: %s match, %d files\n", res.Key, res.Kind, len(res.Paths))
		}
		for _, p := range res.Paths {
			fmt.Fprintln(output, p)
		}
	}
	return nil
}
