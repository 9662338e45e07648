package segview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinniefalco/uri/uriref"
)

func TestSegmentsReadAccess(t *testing.T) {
	u := uriref.MustParse("http://example.com/a/b%20c/d")
	s := New(u)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, "a", s.At(0))
	assert.Equal(t, "b c", s.At(1))
	assert.Equal(t, "b%20c", s.EncodedAt(1))
	assert.Equal(t, []string{"a", "b c", "d"}, s.All())
}

func TestSegmentsPushBackAndPopBack(t *testing.T) {
	u := uriref.MustParse("http://example.com/a")
	s := New(u)
	s.PushBack("b")
	assert.Equal(t, "/a/b", u.EncodedPath())
	s.PopBack()
	assert.Equal(t, "/a", u.EncodedPath())
}

func TestSegmentsInsertAtFront(t *testing.T) {
	u := uriref.MustParse("http://example.com/b/c")
	s := New(u)
	s.Insert(0, "a")
	assert.Equal(t, "/a/b/c", u.EncodedPath())
}

func TestSegmentsReplaceRange(t *testing.T) {
	u := uriref.MustParse("/a/b/c")
	s := New(u)
	s.Replace(1, 2, "x", "y")
	assert.Equal(t, "/a/x/y/c", u.EncodedPath())
}

func TestSegmentsEraseAll(t *testing.T) {
	u := uriref.MustParse("/a/b")
	s := New(u)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSegmentsEncodesOnWrite(t *testing.T) {
	u := uriref.MustParse("/a")
	s := New(u)
	s.PushBack("b c")
	assert.Equal(t, "b%20c", s.EncodedAt(1))
}

func TestSegmentsRootlessColonEscape(t *testing.T) {
	u := uriref.MustParse("relative/path")
	s := New(u)
	s.Replace(0, 1, "a:b")
	assert.Equal(t, "./a:b/path", u.EncodedPath())
}

func TestSegmentsInsertEmptyIntoEmptyPath(t *testing.T) {
	u := uriref.MustParse("")
	s := New(u)
	s.InsertEncoded(0, "")
	assert.Equal(t, "./", u.EncodedPath())
	assert.False(t, s.IsAbsolute())
}

func TestSegmentsInsertEmptyAtFrontPreservesSegment(t *testing.T) {
	u := uriref.MustParse("path/to/file.txt")
	s := New(u)
	s.InsertEncoded(0, "")
	assert.Equal(t, ".//path/to/file.txt", u.EncodedPath())
}

func TestRootPathHasZeroSegments(t *testing.T) {
	u := uriref.MustParse("http://example.com/")
	s := New(u)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, u.SegmentCount(), s.Len())
}

func TestClearOnRootPathPreservesAbsolute(t *testing.T) {
	u := uriref.MustParse("http://example.com/")
	s := New(u)
	s.Clear()
	assert.Equal(t, "/", u.EncodedPath())
	assert.True(t, s.IsAbsolute())
	assert.Equal(t, 0, s.Len())
}

func TestClearOnRootlessPathLeavesEmptyPath(t *testing.T) {
	u := uriref.MustParse("a/b")
	s := New(u)
	s.Clear()
	assert.Equal(t, "", u.EncodedPath())
	assert.Equal(t, 0, s.Len())
}
