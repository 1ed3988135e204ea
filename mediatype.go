package mime

import (
	"sort"
	"strings"

	"github.com/mensbeam/mime/internal/grammar"
)

// Well-known header field names consumed by this package.
const (
	ContentType = "Content-Type"
	Accept      = "Accept"
)

// Well-known parameter names.
const (
	ParamCharset = "charset"

	// quality is the Accept-header weight parameter, which negotiation
	// strips before comparing types.
	paramQuality = "q"
)

// MediaType represents a parsed and normalized MIME media type, such as the
// value of a Content-Type header. Instances are produced only by Parse,
// ParseBytes, and Extract; a successfully returned MediaType always has a
// valid, lowercase type and subtype and a set of unique, lowercase-named
// parameters in the order they first appeared. This object is intended to be
// read-only.
type MediaType struct {
	mtype   string            // the major type, e.g. "text"
	subtype string            // the subtype, e.g. "html"
	names   []string          // parameter names in order of first appearance
	params  map[string]string // parameter values, keyed by lowercase name
}

// Type returns the major type, e.g. "text" for "text/html". It is always a
// non-empty lowercase token.
func (mt *MediaType) Type() string { return mt.mtype }

// Subtype returns the subtype, e.g. "html" for "text/html". It is always a
// non-empty lowercase token.
func (mt *MediaType) Subtype() string { return mt.subtype }

// Essence returns the type and subtype joined with a slash, without any
// parameters.
func (mt *MediaType) Essence() string { return mt.mtype + "/" + mt.subtype }

// Parameter returns the value of the named parameter, or the empty string if
// the parameter is not set. Names are matched case-insensitively since all
// stored names are lowercase.
func (mt *MediaType) Parameter(name string) string {
	return mt.params[strings.ToLower(name)]
}

// Parameters returns a copy of the parameter map. Iteration order of the map
// is undefined; use ParameterNames for the original parameter order.
func (mt *MediaType) Parameters() map[string]string {
	ps := make(map[string]string, len(mt.params))
	for n, v := range mt.params {
		ps[n] = v
	}
	return ps
}

// ParameterNames returns the parameter names in the order they first appeared
// in the parsed input.
func (mt *MediaType) ParameterNames() []string {
	ns := make([]string, len(mt.names))
	copy(ns, mt.names)
	return ns
}

// Charset is a short name for
//
//	mt.Parameter("charset")
//
// This is useful for Content-Type values.
func (mt *MediaType) Charset() string {
	return mt.params[ParamCharset]
}

// String returns the canonical serialization of the media type: the essence
// followed by each parameter as ";name=value" in parameter order. A value
// that is not a valid token is emitted as a quoted-string with backslash and
// double-quote escaped. The result is normalized and may differ from the
// text the media type was parsed from.
func (mt *MediaType) String() string {
	var sb strings.Builder
	sb.WriteString(mt.Essence())
	for _, n := range mt.names {
		sb.WriteByte(';')
		sb.WriteString(n)
		sb.WriteByte('=')
		writeValue(&sb, mt.params[n])
	}
	return sb.String()
}

func writeValue(sb *strings.Builder, v string) {
	if grammar.IsToken(v) {
		sb.WriteString(v)
		return
	}
	sb.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(v[i])
	}
	sb.WriteByte('"')
}

// Clone returns a deep copy of the media type.
func (mt *MediaType) Clone() *MediaType {
	c := &MediaType{
		mtype:   mt.mtype,
		subtype: mt.subtype,
		names:   make([]string, len(mt.names)),
		params:  make(map[string]string, len(mt.params)),
	}
	copy(c.names, mt.names)
	for n, v := range mt.params {
		c.params[n] = v
	}
	return c
}

// setParameter records a parameter, preserving first-appearance order. It is
// how the parser accumulates parameters and how extraction backfills a
// carried charset; nothing else mutates a MediaType after construction.
func (mt *MediaType) setParameter(name, value string) {
	if _, ok := mt.params[name]; !ok {
		mt.names = append(mt.names, name)
	}
	mt.params[name] = value
}

// removeParameter drops a parameter by name, if present.
func (mt *MediaType) removeParameter(name string) (string, bool) {
	v, ok := mt.params[name]
	if !ok {
		return "", false
	}
	delete(mt.params, name)
	for i, n := range mt.names {
		if n == name {
			mt.names = append(mt.names[:i], mt.names[i+1:]...)
			break
		}
	}
	return v, true
}

// sortParameters reorders the parameters lexicographically by name.
// Negotiation uses this to build order-insensitive comparison keys.
func (mt *MediaType) sortParameters() {
	sort.Strings(mt.names)
}
