package uriref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmpty(t *testing.T) {
	u := New()
	assert.Equal(t, "", u.String())
	assert.Equal(t, 0, u.Len())
}

func TestCloneDoesNotAliasBuffer(t *testing.T) {
	u := MustParse("http://example.com/a")
	c := u.Clone()
	c.SetPath("/b")
	assert.Equal(t, "http://example.com/a", u.String())
	assert.Equal(t, "http://example.com/b", c.String())
}

func TestResizeGrowsAndShrinks(t *testing.T) {
	u := New()
	u.SetScheme("http")
	u.SetHost("example.com")
	require.Equal(t, "http://example.com", u.String())
	u.SetPath("/foo/bar")
	assert.Equal(t, "http://example.com/foo/bar", u.String())
	u.SetPath("/x")
	assert.Equal(t, "http://example.com/x", u.String())
}

func TestURLTooLarge(t *testing.T) {
	u := New()
	_, err := u.resizeOne(0, MaxBufferSize+1)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, CodeURLTooLarge, e.Code)
}
