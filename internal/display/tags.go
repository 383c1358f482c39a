package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// TagSummary is one row of a tag listing.
type TagSummary struct {
	Name     string
	Count    int
	Patterns []string
	Include  []string
	Exclude  []string
	Size     int64 // bytes, shown only when HasSize is set
	HasSize  bool
}

// HumanSize formats a byte count with 1024-based units, e.g. "3.5 KiB".
func HumanSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatTagList writes one block per tag:
//
//	video (8 files, 1.2 GiB)
//	    patterns: *.avi, *.mp4
//	    include:  sony
func FormatTagList(out io.Writer, tags []TagSummary) {
	for _, t := range tags {
		details := fmt.Sprintf("%d files", t.Count)
		if t.Count == 1 {
			details = "1 file"
		}
		if t.HasSize {
			details += ", " + HumanSize(t.Size)
		}
		fmt.Fprintf(out, "%s %s\n", bold(cyan(t.Name)), faint("("+details+")"))
		fmt.Fprintf(out, "    %s %s\n", faint("patterns:"), strings.Join(t.Patterns, ", "))
		if len(t.Include) > 0 {
			fmt.Fprintf(out, "    %s %s\n", faint("include: "), strings.Join(t.Include, ", "))
		}
		if len(t.Exclude) > 0 {
			fmt.Fprintf(out, "    %s %s\n", faint("exclude: "), strings.Join(t.Exclude, ", "))
		}
	}
}
