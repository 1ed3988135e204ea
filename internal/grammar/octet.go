// Package grammar provides the low-level character classification used by the
// media type parser. The classes are derived from the HTTP "Basic Rules":
//
//	token = 1*<any CHAR except CTLs or separators>
//	separators = "(" | ")" | "<" | ">" | "@" | "," | ";" | ":" | "\" | <">
//	           | "/" | "[" | "]" | "?" | "=" | "{" | "}" | SP | HT
//
// plus the quoted-string token class (tab, printable ASCII, and 0x80-0xFF),
// which is what a parameter value may contain.
package grammar

import "strings"

type octetClass byte

const (
	classToken octetClass = 1 << iota
	classSpace
	classValue
)

// Whitespace is the set of characters stripped from the ends of a media type
// string and from the tail of a subtype or bare parameter value.
const Whitespace = "\t\n\r "

var octetClasses [256]octetClass

func init() {
	for c := 0; c < 256; c++ {
		var t octetClass
		if (c >= '0' && c <= '9') ||
			(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
			strings.ContainsRune("!#$%&'*+-.^_`|~", rune(c)) {
			t |= classToken
		}
		if c == '\t' || c == '\n' || c == '\r' || c == ' ' {
			t |= classSpace
		}
		if c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			t |= classValue
		}
		octetClasses[c] = t
	}
}

// IsTokenChar reports whether b may appear in an HTTP token.
func IsTokenChar(b byte) bool {
	return octetClasses[b]&classToken != 0
}

// IsToken reports whether s is a valid, non-empty HTTP token. Any byte outside
// ASCII fails the test, so multibyte input is rejected without decoding it.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if octetClasses[s[i]]&classToken == 0 {
			return false
		}
	}
	return true
}

// IsWhitespace reports whether b is tab, LF, CR, or space.
func IsWhitespace(b byte) bool {
	return octetClasses[b]&classSpace != 0
}

// IsValue reports whether every code point of s may appear in a parameter
// value: tab, printable ASCII, or the Latin-1 supplement. Other control
// characters and anything above U+00FF fail. The empty string passes; callers
// decide whether an empty value is meaningful.
func IsValue(s string) bool {
	for _, r := range s {
		if r > 0xFF || octetClasses[r]&classValue == 0 {
			return false
		}
	}
	return true
}
