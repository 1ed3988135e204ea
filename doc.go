// Package mime parses, normalizes, classifies, and negotiates Internet media
// types ("MIME types") using the tolerant grammar of HTTP's Content-Type and
// Accept headers.
//
// The standard library's mime.ParseMediaType is strict: it rejects values
// with malformed parameters, duplicate names, or stray quoting, all of which
// turn up constantly in header values from the wild. This package instead
// follows the lenient rules that browsers apply, salvaging whatever part of
// a value is usable. A value with a valid type and subtype always parses;
// broken parameters are dropped individually, unterminated quotes run to the
// end of the value, and the first valid occurrence of a parameter name wins
// over later duplicates.
//
// The entry points are Parse for text that is already Unicode and ParseBytes
// for values taken from a wire header, whose bytes are decoded through the
// isomorphic byte/text codec (DecodeBytes and EncodeBytes) so the 0x80-0xFF
// range maps cleanly onto the Latin-1 Supplement. Both return a *MediaType,
// an immutable value exposing the lowercase type and subtype, the essence,
// the ordered parameter set, a canonical String serialization, and
// classification predicates such as IsImage, IsJSON, and IsScriptable.
//
// Two higher-level algorithms consume parsed types. Extract resolves the
// ordered list of Content-Type values from a message into the single
// governing media type, carrying a charset forward across values that share
// an essence. Negotiate picks the best of the caller's supported types
// against an Accept header, honoring quality values and matching by
// decreasing specificity from exact type with parameters down to */*. Both
// can be fed directly from any HTTP stack through the small HeaderSource
// interface.
//
// Everything here is a pure function over its inputs: no I/O, no global
// mutable state, and every operation is safe to call from concurrent
// goroutines without synchronization.
package mime
