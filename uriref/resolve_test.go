package uriref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferenceQueryOnly(t *testing.T) {
	base := MustParse("http://a/b/c/d;p?q")
	ref := MustParse("?y")
	out, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://a/b/c/d;p?y", out.String())
}

func TestResolveReferenceMergeRelative(t *testing.T) {
	base := MustParse("http://a/b/c/d;p?q")
	ref := MustParse("g")
	out, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://a/b/c/g", out.String())
}

func TestResolveReferenceDotDotMerge(t *testing.T) {
	base := MustParse("http://a/b/c/d;p?q")
	ref := MustParse("../../../g")
	out, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://a/g", out.String())
}

func TestResolveReferenceAbsolutePath(t *testing.T) {
	base := MustParse("http://a/b/c/d;p?q")
	ref := MustParse("/g")
	out, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://a/g", out.String())
}

func TestResolveReferenceFullURL(t *testing.T) {
	base := MustParse("http://a/b/c/d;p?q")
	ref := MustParse("http://x/y")
	out, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://x/y", out.String())
}

func TestResolveReferenceEmptyRefKeepsBasePath(t *testing.T) {
	base := MustParse("http://a/b/c/d;p?q")
	ref := MustParse("")
	out, err := base.ResolveReference(ref)
	require.NoError(t, err)
	assert.Equal(t, "http://a/b/c/d;p?q", out.String())
}

func TestResolveReferenceFailsWithoutBaseScheme(t *testing.T) {
	base := MustParse("/just/a/path")
	ref := MustParse("g")
	_, err := base.ResolveReference(ref)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, CodeNotABase, e.Code)
}
