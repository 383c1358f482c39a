package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var warnColor = color.New(color.FgYellow)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files or tags (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out in yellow.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	warnColor.Fprint(out, b.String())
}

// WarnEmptyTags creates a warning listing tags that matched no files.
func WarnEmptyTags(tags []string) Warning {
	title := "Tag matched no files"
	if len(tags) > 1 {
		title = "Tags matched no files"
	}
	return Warning{
		Title:      title,
		Files:      tags,
		Suggestion: "check the patterns and include/exclude filters, or the base directory",
	}
}
