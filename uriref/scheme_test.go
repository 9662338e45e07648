package uriref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSchemeRejectsInvalid(t *testing.T) {
	u := New()
	assert.Panics(t, func() { u.SetScheme("1bad") })
	assert.Panics(t, func() { u.SetScheme("") })
}

func TestRemoveSchemeGuardsColonSegment(t *testing.T) {
	u := New()
	u.SetScheme("file")
	u.SetPath("C:/Windows")
	require.Equal(t, "file:C:/Windows", u.String())
	u.RemoveScheme()
	assert.Equal(t, "./C:/Windows", u.String())
}

func TestRemoveSchemeNoGuardWhenAbsolute(t *testing.T) {
	u := MustParse("http:/a:b/c")
	u.RemoveScheme()
	assert.Equal(t, "/a:b/c", u.String())
}

func TestRemoveSchemeNoGuardWithAuthority(t *testing.T) {
	u := MustParse("http://example.com/a:b")
	u.RemoveScheme()
	assert.Equal(t, "//example.com/a:b", u.String())
}
