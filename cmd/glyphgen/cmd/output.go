package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/corey/glyphgen/internal/app"
	"github.com/corey/glyphgen/internal/domain/manifest"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// resolveColor decides color output from the --color value ("auto",
// "always", "never"), the --no-color flag, and whether stdout is a
// terminal.
func resolveColor(colorFlag string, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	switch colorFlag {
	case "always":
		return true
	case "never":
		return false
	}
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// formatIconTable renders the resolved identifier table for terminal
// display, identifier-sorted:
//
//	⚡ 2 icons
//	  home        0xe600  home
//	  userCircle  0xe601  user-circle
func formatIconTable(icons map[string]manifest.Record, color bool) string {
	names := make([]string, 0, len(icons))
	width := 0
	for name := range icons {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	var sb strings.Builder
	if color {
		fmt.Fprintf(&sb, "%s⚡ %d icons%s\n", colorBold, len(names), colorReset)
	} else {
		fmt.Fprintf(&sb, "⚡ %d icons\n", len(names))
	}
	for _, name := range names {
		rec := icons[name]
		if color {
			fmt.Fprintf(&sb, "  %s%-*s%s  0x%04x  %s%s%s\n",
				colorCyan, width, name, colorReset, rec.CodePoint, colorGray, rec.Label, colorReset)
		} else {
			fmt.Fprintf(&sb, "  %-*s  0x%04x  %s\n", width, name, rec.CodePoint, rec.Label)
		}
	}
	return sb.String()
}

// formatGenerated summarizes a successful write.
func formatGenerated(res *app.Result, color bool) string {
	if color {
		return fmt.Sprintf("%s✓%s %d icons → %s\n", colorGreen, colorReset, len(res.Icons), res.Written)
	}
	return fmt.Sprintf("✓ %d icons → %s\n", len(res.Icons), res.Written)
}
