package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinniefalco/uri/uriref"
)

func TestLiteralBeatsParam(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/users/{id}", "byID"))
	require.NoError(t, r.Insert("/users/me", "me"))

	res, err := r.Route("/users/me")
	require.NoError(t, err)
	assert.Equal(t, "me", res.Resource)
	assert.Empty(t, res.Bindings)

	res, err = r.Route("/users/42")
	require.NoError(t, err)
	assert.Equal(t, "byID", res.Resource)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "id", res.Bindings[0].ID)
	assert.Equal(t, "42", res.Bindings[0].Value)
}

func TestPlusMatchesGreedySuffix(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/files/{p+}", "files"))

	res, err := r.Route("/files/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "files", res.Resource)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "a/b/c", res.Bindings[0].Value)
}

func TestPlusRequiresAtLeastOneSegment(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/files/{p+}", "files"))

	_, err := r.Route("/files")
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestStarMatchesZeroSegments(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/static/{rest*}", "static"))

	res, err := r.Route("/static")
	require.NoError(t, err)
	assert.Equal(t, "static", res.Resource)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "", res.Bindings[0].Value)

	res, err = r.Route("/static/a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", res.Bindings[0].Value)
}

func TestOptionalSegmentBothForms(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/a/{x?}", "opt"))

	res, err := r.Route("/a")
	require.NoError(t, err)
	assert.Equal(t, "opt", res.Resource)
	assert.Empty(t, res.Bindings)

	res, err = r.Route("/a/b")
	require.NoError(t, err)
	assert.Equal(t, "opt", res.Resource)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "b", res.Bindings[0].Value)
}

func TestReinsertOverwrites(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/a/b", "first"))
	require.NoError(t, r.Insert("/a/b", "second"))

	res, err := r.Route("/a/b")
	require.NoError(t, err)
	assert.Equal(t, "second", res.Resource)
}

func TestDotDotReclaimsLeafDuringInsertion(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/a/b/../c", "c"))

	_, err := r.Route("/a/b")
	assert.ErrorIs(t, err, ErrMismatch)

	res, err := r.Route("/a/c")
	require.NoError(t, err)
	assert.Equal(t, "c", res.Resource)
}

func TestDotSkipped(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/a/./b", "ab"))

	res, err := r.Route("/a/b")
	require.NoError(t, err)
	assert.Equal(t, "ab", res.Resource)
}

func TestDotDotPastRootPanics(t *testing.T) {
	r := New(Options{})
	defer func() {
		r := recover()
		require.NotNil(t, r)
		e, ok := r.(*uriref.Error)
		require.True(t, ok)
		assert.Equal(t, uriref.CodeInvalidArgument, e.Code)
	}()
	r.Insert("../escape", "x")
}

func TestMismatchOnUnknownPath(t *testing.T) {
	r := New(Options{})
	require.NoError(t, r.Insert("/a/b", "x"))
	_, err := r.Route("/a/c")
	assert.ErrorIs(t, err, ErrMismatch)

	e, ok := err.(*uriref.Error)
	require.True(t, ok)
	assert.Equal(t, uriref.CodeMismatch, e.Code)
}
