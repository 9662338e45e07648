package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseV4(t *testing.T) {
	addr, err := ParseV4("192.168.0.1")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{192, 168, 0, 1}, addr)
	assert.Equal(t, "192.168.0.1", FormatV4(addr))
}

func TestParseV4Invalid(t *testing.T) {
	for _, s := range []string{"1.2.3", "1.2.3.4.5", "1.2.3.256", "1.2.3.04", "a.b.c.d", ""} {
		_, err := ParseV4(s)
		assert.Error(t, err, "ParseV4(%q)", s)
	}
}

func TestLooksLikeV4(t *testing.T) {
	assert.True(t, LooksLikeV4("1.2.3.4"))
	assert.False(t, LooksLikeV4("example.com"))
	assert.False(t, LooksLikeV4("1.2"))
}

func TestParseV6Full(t *testing.T) {
	addr, err := ParseV6("2001:db8:0:0:0:0:0:1")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", FormatV6(addr))
}

func TestParseV6Contracted(t *testing.T) {
	addr, err := ParseV6("2001:db8::1")
	require.NoError(t, err)
	want, _ := ParseV6("2001:db8:0:0:0:0:0:1")
	assert.Equal(t, want, addr)
}

func TestParseV6EmbeddedV4(t *testing.T) {
	addr, err := ParseV6("::FFFF:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, byte(1), addr[12])
	assert.Equal(t, byte(2), addr[13])
	assert.Equal(t, byte(3), addr[14])
	assert.Equal(t, byte(4), addr[15])
	assert.Equal(t, byte(0xFF), addr[10])
	assert.Equal(t, byte(0xFF), addr[11])
}

func TestParseV6Loopback(t *testing.T) {
	addr, err := ParseV6("::1")
	require.NoError(t, err)
	var want [16]byte
	want[15] = 1
	assert.Equal(t, want, addr)
}

func TestParseV6RejectsDoubleContraction(t *testing.T) {
	_, err := ParseV6("2001::db8::1")
	assert.Error(t, err)
}

func TestParseV6RejectsOverlongGroup(t *testing.T) {
	_, err := ParseV6("12345::1")
	assert.Error(t, err)
}

func TestParseV6RejectsOutOfRangeGroup(t *testing.T) {
	_, err := ParseV6("fffff::1")
	assert.Error(t, err)
}

func TestParseV6RejectsBadV4Tail(t *testing.T) {
	_, err := ParseV6("::ffff:1.2.3.999")
	assert.Error(t, err)
}

func TestFormatV6AllZero(t *testing.T) {
	var addr [16]byte
	assert.Equal(t, "::", FormatV6(addr))
}
