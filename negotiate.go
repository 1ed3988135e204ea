package mime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrBadLocalType is returned by Negotiate when a caller-supplied local type
// does not parse or has a wildcard type or subtype. The local type list is
// under the caller's control, so this is a contract violation rather than
// bad input data.
var ErrBadLocalType = errors.New("local type must be a concrete, valid media type")

// qvaluePattern matches the quality value grammar: 0 to 1 with up to three
// decimal places, where anything above 1 is not expressible.
var qvaluePattern = regexp.MustCompile(`^(?:0(?:\.[0-9]{1,3})?|1(?:\.0{1,3})?)$`)

// Negotiate selects from localTypes, the caller's supported media types in
// order of preference, the one best matching the remote Accept header. The
// accept arguments are raw Accept header values, combined and split per
// SplitList.
//
// Each Accept item is parsed as header bytes; items that do not parse are
// ignored. A q parameter carrying a valid quality value sets the item's
// weight, any other q is discarded, and absent or invalid q means 1.0.
// Remaining parameters participate in matching: a local type matches the
// most specific remote entry available, from exact type/subtype with
// parameters down through type/* to */*.
//
// The local type with the highest matched weight wins; on equal weights the
// earlier entry in localTypes wins. The winner is returned as the original
// string the caller supplied, not a normalized form. If nothing matches, or
// everything matched only at q=0, Negotiate returns "" and no error.
// ErrBadLocalType is returned if any entry of localTypes fails to parse or
// names a wildcard.
func Negotiate(localTypes []string, accept ...string) (string, error) {
	prefs := make(map[string]float64)
	for _, item := range SplitList(accept...) {
		mt := ParseBytes([]byte(item))
		if mt == nil {
			continue
		}
		q := takeQuality(mt)
		mt.sortParameters()
		prefs[mt.String()] = q
	}

	var (
		best  string
		bestQ float64
	)
	for _, local := range localTypes {
		mt := ParseBytes([]byte(local))
		if mt == nil || mt.mtype == "*" || mt.subtype == "*" {
			return "", fmt.Errorf("%w: %q", ErrBadLocalType, local)
		}
		takeQuality(mt)
		mt.sortParameters()

		q, ok := matchQuality(mt, prefs)
		if ok && q > bestQ {
			best, bestQ = local, q
		}
	}
	return best, nil
}

// NegotiateFrom applies Negotiate to the Accept values of src.
func NegotiateFrom(localTypes []string, src HeaderSource) (string, error) {
	return Negotiate(localTypes, src.GetHeaderValues(Accept)...)
}

// takeQuality strips the q parameter from mt and returns its weight. An
// invalid q is treated as if it were absent, which means full weight.
func takeQuality(mt *MediaType) float64 {
	v, ok := mt.removeParameter(paramQuality)
	if ok && qvaluePattern.MatchString(v) {
		q, _ := strconv.ParseFloat(v, 64)
		return q
	}
	return 1.0
}

// matchQuality looks mt up in the remote preference map, trying candidate
// keys in decreasing order of specificity: the exact type with parameters,
// the exact type alone, then the type/* and */* wildcards with and without
// the parameters. The first hit decides the weight; no hit means the type is
// not acceptable. mt must already have its q stripped and its parameters
// sorted so its serialization lines up with the preference keys.
func matchQuality(mt *MediaType, prefs map[string]float64) (float64, bool) {
	essence := mt.Essence()
	candidates := []string{essence, mt.mtype + "/*", "*/*"}
	if len(mt.names) > 0 {
		params := mt.String()[len(essence):]
		candidates = []string{
			essence + params, essence,
			mt.mtype + "/*" + params, mt.mtype + "/*",
			"*/*" + params, "*/*",
		}
	}
	for _, c := range candidates {
		if q, ok := prefs[c]; ok {
			return q, true
		}
	}
	return 0, false
}
