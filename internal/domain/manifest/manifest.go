// Package manifest parses icon-font glyph manifests.
//
// Three JSON shapes are accepted: an object with a "glyphs" array, an
// object with an "icons" array, or a bare top-level array. Entries that
// lack a usable label or code point are logged and skipped; they never
// abort the run.
package manifest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// labelKeys and codeKeys are tried in priority order per entry.
var (
	labelKeys = []string{"font_class", "name", "icon_name", "class"}
	codeKeys  = []string{"unicode_decimal", "unicode", "code", "codepoint"}
)

// Record is one validated glyph: a generated identifier, the original
// manifest label, and the font code point. Immutable after parsing.
type Record struct {
	Identifier string
	Label      string
	CodePoint  int
}

// Namer produces a base identifier for a manifest label.
type Namer interface {
	Ident(label string) string
}

// SchemaError reports a manifest whose JSON syntax or top-level shape
// cannot be handled. Fatal: the whole run aborts.
type SchemaError struct {
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("manifest: %s: %v", e.Reason, e.Err)
	}
	return "manifest: " + e.Reason
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Parse decodes manifest JSON and returns records in input order.
// Zero valid entries is not an error at this layer; the caller decides
// how to report an empty manifest.
func Parse(data []byte, namer Namer) ([]Record, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Reason: "malformed JSON", Err: err}
	}

	entries, err := glyphList(doc)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			logrus.Warnf("entry %d: not an object, skipping", i)
			continue
		}
		label, ok := entryLabel(entry)
		if !ok {
			logrus.Warnf("entry %d: no label under any of %v, skipping", i, labelKeys)
			continue
		}
		code, ok := entryCodePoint(entry)
		if !ok {
			logrus.Warnf("entry %d (%q): no usable code point, skipping", i, label)
			continue
		}
		records = append(records, Record{
			Identifier: namer.Ident(label),
			Label:      label,
			CodePoint:  code,
		})
	}
	return records, nil
}

// glyphList locates the entry array: "glyphs" field, then "icons"
// field, then the document itself.
func glyphList(doc any) ([]any, error) {
	switch v := doc.(type) {
	case map[string]any:
		for _, key := range []string{"glyphs", "icons"} {
			if arr, ok := v[key].([]any); ok {
				return arr, nil
			}
		}
		return nil, &SchemaError{Reason: "unsupported schema"}
	case []any:
		return v, nil
	}
	return nil, &SchemaError{Reason: "unsupported schema"}
}

// entryLabel returns the first non-empty string under a label key.
func entryLabel(entry map[string]any) (string, bool) {
	for _, key := range labelKeys {
		if s, ok := entry[key].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// entryCodePoint extracts the code point: a native JSON number, or a
// string in decimal or hex ("0x..." / "&#x...;" forms). Negative and
// fractional values are rejected.
func entryCodePoint(entry map[string]any) (int, bool) {
	for _, key := range codeKeys {
		v, present := entry[key]
		if !present {
			continue
		}
		switch val := v.(type) {
		case float64:
			n := int(val)
			if float64(n) == val && n >= 0 {
				return n, true
			}
		case string:
			if n, err := parseCodeString(val); err == nil && n >= 0 {
				return n, true
			}
		}
	}
	return 0, false
}

// parseCodeString parses a code point from its string form. Hex-marked
// strings keep only their hex digits and parse base 16; everything else
// parses base 10.
func parseCodeString(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "&#x") {
		var hex strings.Builder
		for _, r := range s {
			if r >= '0' && r <= '9' || r >= 'a' && r <= 'f' {
				hex.WriteRune(r)
			}
		}
		n, err := strconv.ParseInt(hex.String(), 16, 32)
		return int(n), err
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return int(n), err
}
