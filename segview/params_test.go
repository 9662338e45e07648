package segview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinniefalco/uri/uriref"
)

func TestParamsReadAccess(t *testing.T) {
	u := uriref.MustParse("http://example.com/x?a=1&b=2&flag")
	p := NewParams(u)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, Param{Key: "a", Value: "1", HasValue: true}, p.At(0))
	assert.Equal(t, Param{Key: "flag", Value: "", HasValue: false}, p.At(2))
}

func TestParamsPushBackAndClear(t *testing.T) {
	u := uriref.MustParse("http://example.com/x")
	p := NewParams(u)
	p.PushBack(Param{Key: "a", Value: "1", HasValue: true})
	assert.Equal(t, "a=1", u.EncodedQuery())
	p.PushBack(Param{Key: "b", HasValue: false})
	assert.Equal(t, "a=1&b", u.EncodedQuery())

	p.Clear()
	assert.False(t, u.HasQuery())
}

func TestParamsEncodesOnWrite(t *testing.T) {
	u := uriref.MustParse("http://example.com/x")
	p := NewParams(u)
	p.PushBack(Param{Key: "a b", Value: "c&d", HasValue: true})
	assert.Equal(t, "a%20b=c%26d", u.EncodedQuery())
}

func TestParamsReplace(t *testing.T) {
	u := uriref.MustParse("http://example.com/x?a=1&b=2&c=3")
	p := NewParams(u)
	p.Replace(1, 2, Param{Key: "x", Value: "9", HasValue: true})
	assert.Equal(t, "a=1&x=9&c=3", u.EncodedQuery())
}
