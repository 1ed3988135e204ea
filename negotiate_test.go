package mime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensbeam/mime"
)

func TestNegotiateBasic(t *testing.T) {
	t.Parallel()

	best, err := mime.Negotiate(
		[]string{"text/plain", "text/html"},
		"text/html, text/plain;q=0.1")
	require.NoError(t, err)
	assert.Equal(t, "text/html", best)

	// Unparsable Accept items are ignored.
	best, err = mime.Negotiate([]string{"text/html"}, "garbage, text/html")
	require.NoError(t, err)
	assert.Equal(t, "text/html", best)

	// Nothing acceptable is a clean miss, not an error.
	best, err = mime.Negotiate([]string{"text/html"}, "application/json")
	require.NoError(t, err)
	assert.Equal(t, "", best)

	best, err = mime.Negotiate([]string{"text/html"})
	require.NoError(t, err)
	assert.Equal(t, "", best)
}

func TestNegotiateLocalOrder(t *testing.T) {
	t.Parallel()

	// Equal weights fall back to local preference order.
	best, err := mime.Negotiate(
		[]string{"application/json", "application/xml"},
		"application/xml", "application/json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", best)

	best, err = mime.Negotiate(
		[]string{"application/xml", "application/json"},
		"application/xml", "application/json")
	require.NoError(t, err)
	assert.Equal(t, "application/xml", best)
}

func TestNegotiateBadLocalType(t *testing.T) {
	t.Parallel()

	_, err := mime.Negotiate([]string{"*/*"}, "text/html")
	assert.ErrorIs(t, err, mime.ErrBadLocalType)

	_, err = mime.Negotiate([]string{"text/*"}, "text/html")
	assert.ErrorIs(t, err, mime.ErrBadLocalType)

	_, err = mime.Negotiate([]string{"bogus"}, "text/html")
	assert.ErrorIs(t, err, mime.ErrBadLocalType)

	_, err = mime.Negotiate([]string{"text/html", ""}, "text/html")
	assert.ErrorIs(t, err, mime.ErrBadLocalType)
}

func TestNegotiateQualityValues(t *testing.T) {
	t.Parallel()

	// q=0 means never acceptable.
	best, err := mime.Negotiate([]string{"text/html"}, "text/html;q=0")
	require.NoError(t, err)
	assert.Equal(t, "", best)

	// A q outside the grammar counts as absent, so full weight.
	best, err = mime.Negotiate(
		[]string{"text/html", "text/plain"},
		"text/plain;q=0.9, text/html;q=1.5")
	require.NoError(t, err)
	assert.Equal(t, "text/html", best)

	best, err = mime.Negotiate(
		[]string{"text/html", "text/plain"},
		"text/plain;q=0.9, text/html;q=0.1234")
	require.NoError(t, err)
	assert.Equal(t, "text/html", best)

	// Up to three decimal places are honored.
	best, err = mime.Negotiate(
		[]string{"text/html", "text/plain"},
		"text/html;q=0.999, text/plain;q=1.000")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", best)

	// The last occurrence of an identical Accept entry wins.
	best, err = mime.Negotiate(
		[]string{"text/html", "text/plain"},
		"text/html;q=0.2, text/html;q=0.9, text/plain;q=0.95")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", best)
}

func TestNegotiateWildcardPreferences(t *testing.T) {
	t.Parallel()

	best, err := mime.Negotiate(
		[]string{"image/png", "text/html"},
		"text/*;q=0.5, */*;q=0.1")
	require.NoError(t, err)
	assert.Equal(t, "text/html", best)

	best, err = mime.Negotiate([]string{"image/png"}, "*/*;q=0.1")
	require.NoError(t, err)
	assert.Equal(t, "image/png", best)

	// An exact entry beats a wildcard entry for the same local type.
	best, err = mime.Negotiate(
		[]string{"text/html", "image/png"},
		"text/html;q=0.2, */*;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, "image/png", best)
}

func TestNegotiateParameters(t *testing.T) {
	t.Parallel()

	// A parameterized local type matches its parameterized Accept entry at
	// full specificity.
	best, err := mime.Negotiate(
		[]string{"text/plain;format=flowed", "text/plain"},
		"text/plain;format=flowed, text/plain;q=0.4")
	require.NoError(t, err)
	assert.Equal(t, "text/plain;format=flowed", best)

	// Parameter order does not matter on either side.
	best, err = mime.Negotiate(
		[]string{"text/plain;b=2;a=1"},
		"text/plain;a=1;b=2;q=0.7")
	require.NoError(t, err)
	assert.Equal(t, "text/plain;b=2;a=1", best)

	// A parameterized local type still matches a bare Accept entry for its
	// essence.
	best, err = mime.Negotiate(
		[]string{"text/plain;format=flowed"},
		"text/plain;q=0.5")
	require.NoError(t, err)
	assert.Equal(t, "text/plain;format=flowed", best)

	// The winner comes back exactly as the caller wrote it.
	best, err = mime.Negotiate(
		[]string{"Text/Plain; Format=Flowed"},
		"text/plain;format=Flowed")
	require.NoError(t, err)
	assert.Equal(t, "Text/Plain; Format=Flowed", best)
}

func TestNegotiateFrom(t *testing.T) {
	t.Parallel()

	src := headerMap{
		"Accept": {"text/html;q=0.9", "application/json"},
	}
	best, err := mime.NegotiateFrom([]string{"text/html", "application/json"}, src)
	require.NoError(t, err)
	assert.Equal(t, "application/json", best)

	best, err = mime.NegotiateFrom([]string{"text/html"}, headerMap{})
	require.NoError(t, err)
	assert.Equal(t, "", best)
}
