package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanScheme(t *testing.T) {
	cases := []struct {
		s    string
		end  int
		ok   bool
	}{
		{"https://example.com", 6, true},
		{"file:C:/Windows", 5, true},
		{"C:/Windows", 2, true},
		{"", 0, false},
		{"1http:", 0, false},
	}
	for _, c := range cases {
		end, ok := ScanScheme(c.s)
		assert.Equal(t, c.ok, ok, "ScanScheme(%q) ok", c.s)
		if ok {
			assert.Equal(t, c.end, end, "ScanScheme(%q) end", c.s)
		}
	}
}

func TestScanUserInfo(t *testing.T) {
	end := ScanUserInfo("User:Pa%73s@Example.COM/", 0)
	assert.Equal(t, len("User:Pa%73s@"), end)

	end = ScanUserInfo("example.com/", 0)
	assert.Equal(t, 0, end)
}

func TestSplitAuthority(t *testing.T) {
	end, has := SplitAuthority("//example.com:80/path")
	assert.True(t, has)
	assert.Equal(t, len("//example.com:80"), end)

	_, has = SplitAuthority("/path")
	assert.False(t, has)
}
