package cmd

import (
	"io"

	"github.com/harrison/filetags/internal/display"
	"github.com/harrison/filetags/internal/registry"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates and returns the tags subcommand
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with their file counts and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, _, err := setupRegistry(cmd)
			if err != nil {
				return err
			}
			sizes, _ := cmd.Flags().GetBool("sizes")
			return listTagsWithOutput(reg, sizes, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("sizes", false, "Show the total size of each tag")

	return cmd
}

func listTagsWithOutput(reg *registry.Registry, sizes bool, output io.Writer) error {
	tags := reg.ListTags()
	summaries := make([]display.TagSummary, 0, len(tags))

	for _, tag := range tags {
		files, err := reg.Files(tag)
		if err != nil {
			return err
		}
		rec, err := reg.Record(tag)
		if err != nil {
			return err
		}

		s := display.TagSummary{
			Name:     tag,
			Count:    len(files),
			Patterns: rec.Patterns,
			Include:  rec.Include,
			Exclude:  rec.Exclude,
		}
		if sizes {
			size, err := reg.TagSize(tag)
			if err != nil {
				return err
			}
			s.Size = size
			s.HasSize = true
		}
		summaries = append(summaries, s)
	}

	display.FormatTagList(output, summaries)
	return nil
}
