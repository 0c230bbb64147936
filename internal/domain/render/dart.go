// Package render emits the generated Dart source for an icon font.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corey/glyphgen/internal/domain/manifest"
)

// Options configure the emitted Dart file.
type Options struct {
	ClassName  string // container class, e.g. "IconFont"
	FontFamily string // font family constant, e.g. "ComIcon"
	Helpers    bool   // emit the all-icons list and byName lookup
}

// Dart renders the resolved identifier table as a Dart source file.
// Constants are emitted in identifier-sorted order; sorting is purely
// for deterministic output. Pure string construction — writing the
// file is the caller's job.
func Dart(icons map[string]manifest.Record, opts Options) string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("// GENERATED CODE - DO NOT EDIT BY HAND\n")
	fmt.Fprintf(&b, "// %d icons from the glyph manifest.\n\n", len(names))
	b.WriteString("import 'package:flutter/widgets.dart';\n\n")
	fmt.Fprintf(&b, "class %s {\n", opts.ClassName)
	fmt.Fprintf(&b, "  %s._();\n\n", opts.ClassName)
	fmt.Fprintf(&b, "  static const String fontFamily = '%s';\n\n", opts.FontFamily)

	for _, name := range names {
		rec := icons[name]
		fmt.Fprintf(&b, "  /// %s\n", commentText(rec.Label))
		fmt.Fprintf(&b, "  static const IconData %s = IconData(0x%04x, fontFamily: fontFamily);\n",
			name, rec.CodePoint)
	}

	if opts.Helpers {
		b.WriteString("\n  static const List<IconData> all = [\n")
		for _, name := range names {
			fmt.Fprintf(&b, "    %s,\n", name)
		}
		b.WriteString("  ];\n")

		b.WriteString("\n  static IconData? byName(String name) {\n")
		b.WriteString("    switch (name) {\n")
		for _, name := range names {
			fmt.Fprintf(&b, "      case '%s':\n", dartString(icons[name].Label))
			fmt.Fprintf(&b, "        return %s;\n", name)
		}
		b.WriteString("      default:\n")
		b.WriteString("        return null;\n")
		b.WriteString("    }\n")
		b.WriteString("  }\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// dartString escapes a label for a single-quoted Dart string literal.
// The original label must survive exactly, so only the characters Dart
// requires are escaped.
func dartString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	s = strings.ReplaceAll(s, "$", `\$`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}

// commentText keeps a label printable on a single comment line.
func commentText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
