package mime

// HeaderSource is the collaborator interface Extract and Negotiate use to
// reach into an HTTP message without depending on any particular transport
// library. GetHeaderValues returns every value of the named header field in
// the order the fields occur in the message, one entry per field occurrence.
type HeaderSource interface {
	GetHeaderValues(name string) []string
}

// Extract resolves the ordered Content-Type header values of a message into
// the single media type that governs it. Each value is split per SplitList
// and parsed as header bytes; values that do not parse, and the pure
// wildcard */*, are skipped. The last parseable value wins. When consecutive
// values share an essence and a later one omits the charset parameter, the
// charset carried from the earlier value is backfilled onto the result, so
//
//	Content-Type: text/html; charset=UTF-8
//	Content-Type: text/html; foo=bar
//
// yields text/html;foo=bar;charset=UTF-8. A value with a new essence resets
// the carried charset to its own (if any).
//
// Extract returns nil if no value was acceptable. The charset backfill here
// is the only place a MediaType's parameters change after parsing, and it
// happens before the value is returned.
func Extract(values []string) *MediaType {
	var (
		result  *MediaType
		essence string
		charset string
		carried bool
	)
	for _, v := range SplitList(values...) {
		mt := ParseBytes([]byte(v))
		if mt == nil || mt.Essence() == "*/*" {
			continue
		}
		result = mt
		if mt.Essence() != essence {
			essence = mt.Essence()
			charset, carried = mt.params[ParamCharset]
		} else if _, own := mt.params[ParamCharset]; !own && carried {
			mt.setParameter(ParamCharset, charset)
		}
	}
	return result
}

// ExtractFrom applies Extract to the Content-Type values of src.
func ExtractFrom(src HeaderSource) *MediaType {
	return Extract(src.GetHeaderValues(ContentType))
}
