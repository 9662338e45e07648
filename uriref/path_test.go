package uriref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPathEncodesReserved(t *testing.T) {
	u := New()
	u.SetPath("a b/c?d")
	assert.Equal(t, "a%20b/c%3Fd", u.EncodedPath())
}

func TestSetPathPrependsSlashWithAuthority(t *testing.T) {
	u := New()
	u.SetScheme("http")
	u.SetHost("example.com")
	u.SetPath("x/y")
	assert.Equal(t, "http://example.com/x/y", u.String())
}

func TestSetEncodedPathValidatesInput(t *testing.T) {
	u := New()
	assert.Panics(t, func() { u.SetEncodedPath("%ZZ") })
}
