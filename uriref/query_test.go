package uriref

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinniefalco/uri/internal/part"
)

func TestSetQueryEmptyRemovesDelimiter(t *testing.T) {
	u := MustParse("http://example.com/x?a=1")
	u.SetQuery("")
	assert.False(t, u.HasQuery())
	assert.Equal(t, 0, u.ParamCount())
	assert.Equal(t, "http://example.com/x", u.String())

	u2 := MustParse("http://example.com/x")
	u2.SetEncodedQuery("")
	assert.False(t, u2.HasQuery())
	assert.Equal(t, 0, u2.ParamCount())
}

func TestSetQueryNonEmptyRoundTrips(t *testing.T) {
	u := MustParse("http://example.com/x")
	u.SetQuery("a=1&b=2")
	assert.True(t, u.HasQuery())
	assert.Equal(t, "a=1&b=2", u.EncodedQuery())
}

func TestRemoveQueryResetsDecodedLen(t *testing.T) {
	u := MustParse("http://example.com/x?a=1")
	u.RemoveQuery()
	assert.Equal(t, 0, u.DecodedLen(part.Query))
}
