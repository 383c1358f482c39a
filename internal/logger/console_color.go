package logger

import (
	"strings"

	"github.com/fatih/color"
)

// levelColors maps level tags to their terminal colors.
var levelColors = map[string]*color.Color{
	"TRACE": color.New(color.FgHiBlack),
	"DEBUG": color.New(color.FgCyan),
	"INFO":  color.New(color.FgBlue),
	"WARN":  color.New(color.FgYellow),
}

// colorizeLevel wraps a level tag in its color. Unknown levels are returned unchanged.
func colorizeLevel(level string) string {
	c, ok := levelColors[strings.ToUpper(level)]
	if !ok {
		return level
	}
	return c.Sprint(level)
}
