// Package identifier turns manifest labels into valid Dart constant
// names and resolves collisions between them.
package identifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// separatorRe splits cleaned labels on runs of hyphen and underscore.
var separatorRe = regexp.MustCompile(`[-_]+`)

// Namer converts labels into lower-camel identifiers. The counter feeds
// last-resort fallback names, unique within one run; the zero value is
// ready to use.
type Namer struct {
	fallbacks int
}

// NewNamer returns a Namer with a fresh fallback counter.
func NewNamer() *Namer { return &Namer{} }

// Ident returns the lower-camel identifier for label.
// Rules:
//  1. Runes outside letters/digits/[-_] become '_'
//  2. Split on runs of [-_]
//  3. Split fragments at lowercase→uppercase boundaries
//  4. Lowercase all, join lower-camel
//  5. Empty result → "icon"; leading digit → "icon" prefix
//
// A result that is still not a bare ASCII identifier (non-ASCII letters
// survive step 1) is replaced by a counter-based fallback name.
func (n *Namer) Ident(label string) string {
	id := normalize(label)
	if !validIdent(id) {
		n.fallbacks++
		return fmt.Sprintf("icon%d", n.fallbacks)
	}
	return id
}

// normalize is the deterministic path: pure function of the label.
func normalize(label string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, label)

	var frags []string
	for _, part := range separatorRe.Split(cleaned, -1) {
		frags = append(frags, splitCaseBounds(part)...)
	}

	var b strings.Builder
	for i, frag := range frags {
		frag = strings.ToLower(frag)
		if i == 0 {
			b.WriteString(frag)
			continue
		}
		runes := []rune(frag)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}

	id := b.String()
	if id == "" {
		return "icon"
	}
	if id[0] >= '0' && id[0] <= '9' {
		return "icon" + id
	}
	return id
}

// splitCaseBounds splits a fragment at lowercase→uppercase transitions.
// "AttentionLine" -> ["Attention", "Line"], "home" -> ["home"].
func splitCaseBounds(s string) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

// validIdent reports whether s is a bare ASCII identifier: letters,
// digits, underscore, not starting with a digit.
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
