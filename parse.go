package mime

import (
	"strings"

	"github.com/mensbeam/mime/internal/grammar"
)

// Parse parses a media type string, such as the value of a Content-Type
// header, into a MediaType. The grammar is deliberately tolerant: whitespace
// around the input and after the subtype is stripped, type and subtype are
// case-folded to lowercase, unterminated quoted values run to the end of the
// input, and malformed parameters are dropped rather than failing the whole
// value. A parameter name that appears more than once keeps only its first
// valid occurrence.
//
// Parse returns nil if the input does not contain a valid type and subtype.
// It never returns an error: a string that cannot be parsed is expected
// input, not an exceptional condition.
func Parse(s string) *MediaType {
	s = strings.Trim(s, grammar.Whitespace)

	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return nil
	}
	mtype := s[:slash]
	rest := s[slash+1:]

	subtype, tail := rest, ""
	if semi := strings.IndexByte(rest, ';'); semi >= 0 {
		subtype, tail = rest[:semi], rest[semi+1:]
	}
	subtype = strings.TrimRight(subtype, grammar.Whitespace)

	if !grammar.IsToken(mtype) || !grammar.IsToken(subtype) {
		return nil
	}

	mt := &MediaType{
		mtype:   strings.ToLower(mtype),
		subtype: strings.ToLower(subtype),
		params:  map[string]string{},
	}
	parseParams(mt, tail)
	return mt
}

// ParseBytes parses a media type from its wire form. Header bytes may carry
// values in the 0x80-0xFF range, so the bytes are decoded through the
// isomorphic codec before parsing. This is the entry point for any value
// sourced from a header field.
func ParseBytes(b []byte) *MediaType {
	return Parse(DecodeBytes(b))
}

// parseParams scans the raw parameter tail of a media type and records each
// valid name/value pair on mt. The scan always advances past a matched
// parameter whether or not it was kept, so it terminates on any input.
func parseParams(mt *MediaType, tail string) {
	i := 0
	for i < len(tail) {
		for i < len(tail) && (tail[i] == ';' || grammar.IsWhitespace(tail[i])) {
			i++
		}

		start := i
		for i < len(tail) && tail[i] != '=' && tail[i] != ';' {
			i++
		}
		name := tail[start:i]

		var value string
		ok := false
		if i < len(tail) && tail[i] == '=' {
			i++
			if i < len(tail) && tail[i] == '"' {
				value, i = scanQuoted(tail, i+1)
				ok = true
			} else {
				start = i
				for i < len(tail) && tail[i] != ';' {
					i++
				}
				value = strings.TrimRight(tail[start:i], grammar.Whitespace)
				// A bare value must be non-empty and confined to the
				// quoted-string token characters; anything else drops
				// the whole parameter.
				ok = value != "" && grammar.IsValue(value)
			}
		}

		if !ok || !grammar.IsToken(name) {
			continue
		}
		name = strings.ToLower(name)
		if _, dup := mt.params[name]; dup {
			continue
		}
		mt.setParameter(name, value)
	}
}

// scanQuoted consumes a quoted parameter value starting just after the
// opening quote. Backslash escapes are resolved, a missing closing quote
// matches to the end of the input, and anything between the closing quote
// and the next semicolon is discarded. It returns the unescaped value and
// the position of the terminating semicolon (or end of input).
func scanQuoted(tail string, i int) (string, int) {
	var sb strings.Builder
	for i < len(tail) {
		c := tail[i]
		if c == '\\' && i+1 < len(tail) {
			sb.WriteByte(tail[i+1])
			i += 2
			continue
		}
		i++
		if c == '"' {
			break
		}
		sb.WriteByte(c)
	}
	for i < len(tail) && tail[i] != ';' {
		i++
	}
	return sb.String(), i
}
