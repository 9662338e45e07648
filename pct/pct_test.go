package pct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinniefalco/uri/internal/chars"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{"", "abc", "a b/c?d", "héllo", "100% sure"}
	for _, s := range cases {
		enc := EncodeToString(s, chars.Path, Options{})
		dec, err := DecodeString(enc, Options{})
		require.NoError(t, err)
		assert.Equal(t, s, dec, "round trip for %q", s)
	}
}

func TestEncodeKnownVector(t *testing.T) {
	got := EncodeToString("a b/c?d", chars.PChar, Options{})
	assert.Equal(t, "a%20b%2Fc%3Fd", got)
}

func TestMeasureMatchesEncodedLength(t *testing.T) {
	s := "a b/c?d"
	got := Measure(s, chars.PChar)
	assert.Equal(t, len(EncodeToString(s, chars.PChar, Options{})), got)
}

func TestReencodeCanonicalizesCase(t *testing.T) {
	got := string(Reencode(nil, "%2f%41", chars.Path, Options{}))
	// %2f decodes to '/' which is in chars.Path, so it's un-escaped;
	// %41 decodes to 'A' which is also in chars.Path and is un-escaped too.
	assert.Equal(t, "/A", got)

	// Under chars.PChar '/' is disallowed, so %2f stays escaped with its
	// hex digits upper-cased.
	got = string(Reencode(nil, "%2f", chars.PChar, Options{}))
	assert.Equal(t, "%2F", got)
}

func TestReencodeEscapesDisallowedOctet(t *testing.T) {
	got := string(Reencode(nil, "%41", chars.Query, Options{}))
	assert.Equal(t, "A", got)

	got = string(Reencode(nil, "A", func(byte) bool { return false }, Options{}))
	assert.Equal(t, "%41", got)
}

func TestValidateMissingHexDigit(t *testing.T) {
	_, err := Validate("100%", Options{})
	require.Error(t, err)
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrMissingHexDigit, e.Code)
}

func TestValidateBadHexDigit(t *testing.T) {
	_, err := Validate("10%gg", Options{})
	require.Error(t, err)
	e := err.(*Error)
	assert.Equal(t, ErrBadHexDigit, e.Code)
}

func TestValidateIllegalNull(t *testing.T) {
	_, err := Validate("a%00b", Options{})
	require.Error(t, err)
	e := err.(*Error)
	assert.Equal(t, ErrIllegalNull, e.Code)

	n, err := Validate("a%00b", Options{AllowNull: true})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDecodePlusToSpace(t *testing.T) {
	out, err := DecodeString("a+b", Options{PlusToSpace: true})
	require.NoError(t, err)
	assert.Equal(t, "a b", out)

	out, err = DecodeString("a+b", Options{})
	require.NoError(t, err)
	assert.Equal(t, "a+b", out)
}

func TestEncodeEmptyString(t *testing.T) {
	assert.Equal(t, "", EncodeToString("", chars.Path, Options{}))
}
