// Package utils provides utility functions for ProxyRun.
package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SplitArgs tokenizes extra launch arguments by splitting on whitespace runs
// and discarding empty tokens.
//
// Quoting and escaping are not supported: `--name "a b"` yields three tokens.
// This matches the original launcher's behavior and is kept deliberately;
// switching to shell-style parsing would change how existing inputs tokenize.
func SplitArgs(input string) []string {
	return strings.Fields(input)
}

// TruncateWithEllipsis truncates a styled string to maxWidth terminal cells,
// appending "..." when anything was cut.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return ansi.Truncate(s, maxWidth, "")
	}
	return ansi.Truncate(s, maxWidth, "...")
}
