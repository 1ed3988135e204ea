package mime

import (
	"strings"

	"github.com/mensbeam/mime/internal/grammar"
)

// SplitList splits one or more raw header values into individual items.
// Multiple values are first rejoined with ", ", mirroring how repeated
// header fields combine on the wire, and the result is split on commas that
// fall outside double-quoted spans; a quoted span may contain
// backslash-escaped quotes. Each item is trimmed of surrounding whitespace
// and empty items are dropped, so stray, doubled, or trailing commas yield
// no entries.
func SplitList(values ...string) []string {
	raw := strings.Join(values, ", ")

	items := make([]string, 0, strings.Count(raw, ",")+1)
	keep := func(item string) {
		item = strings.Trim(item, grammar.Whitespace)
		if item != "" {
			items = append(items, item)
		}
	}

	start := 0
	quoted := false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '"':
			quoted = !quoted
		case '\\':
			if quoted && i+1 < len(raw) {
				i++
			}
		case ',':
			if !quoted {
				keep(raw[start:i])
				start = i + 1
			}
		}
	}
	keep(raw[start:])
	return items
}
