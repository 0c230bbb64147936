package identifier

import (
	"fmt"

	"github.com/corey/glyphgen/internal/domain/manifest"
)

// Resolve assigns final unique identifiers to records sharing a base
// name. Grouping preserves input order; the first record of a group
// keeps the base unchanged and later records get numeric suffixes
// starting at 2 ("base2", "base3", ...). The first member is never
// numbered — this matches the generator this tool replaces, suffixes
// are offset by one from the group position.
func Resolve(records []manifest.Record) map[string]manifest.Record {
	groups := make(map[string][]manifest.Record)
	var order []string
	for _, rec := range records {
		if _, seen := groups[rec.Identifier]; !seen {
			order = append(order, rec.Identifier)
		}
		groups[rec.Identifier] = append(groups[rec.Identifier], rec)
	}

	out := make(map[string]manifest.Record, len(records))
	for _, base := range order {
		for i, rec := range groups[base] {
			name := base
			if i > 0 {
				name = fmt.Sprintf("%s%d", base, i+1)
			}
			rec.Identifier = name
			out[name] = rec
		}
	}
	return out
}
