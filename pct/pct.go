// Package pct implements percent-encoding measurement, encoding,
// re-encoding, decoding and validation over a per-part allowed-character
// set, per RFC 3986 section 2.1.
package pct

import (
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
)

// Options configures the percent-codec's behavior.
type Options struct {
	// PlusToSpace causes Decode to turn '+' into a literal space, as used
	// by application/x-www-form-urlencoded query strings.
	PlusToSpace bool

	// AllowNull permits a literal NUL byte, or a "%00" triplet, to appear
	// in the decoded output. When false, Validate and Decode fail with
	// ErrIllegalNull on either.
	AllowNull bool

	// LowerCase causes Encode/Reencode to emit lower-case hex digits
	// instead of the RFC 3986-recommended upper case.
	LowerCase bool
}

// Error is the error type returned by Validate and Decode.
type Error struct {
	Code string // one of ErrMissingHexDigit, ErrBadHexDigit, ErrIllegalNull
	Pos  int    // byte offset into the input at which the error occurred
}

func (e *Error) Error() string {
	return e.Code + " at byte " + itoa(e.Pos)
}

// Stable error codes.
const (
	ErrMissingHexDigit = "missing_pct_hexdig"
	ErrBadHexDigit     = "bad_pct_hexdig"
	ErrIllegalNull     = "illegal_null"
)

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Measure returns the number of bytes Encode(s, allowed, opts) would
// produce: 1 for every byte in allowed, 3 for every other byte.
func Measure(s string, allowed chars.Set) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if allowed(s[i]) {
			n++
		} else {
			n += 3
		}
	}
	return n
}

// Encode percent-encodes every byte of s not in allowed, appending the
// result to dst and returning the extended slice. Existing "%HH" triplets
// in s are treated as three ordinary bytes: '%' is itself escaped unless
// allowed accepts it verbatim (it is disallowed by every defined part
// allowed-set, so "%" is always escaped by this function). Use Reencode
// to treat "%HH" triplets in already-encoded input as single logical
// octets.
func Encode(dst []byte, s string, allowed chars.Set, opts Options) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowed(c) {
			dst = append(dst, c)
			continue
		}
		dst = appendTriplet(dst, c, opts.LowerCase)
	}
	return dst
}

// Reencode re-encodes s, which may already contain "%HH" triplets, under
// allowed: a decoded octet that is in allowed is emitted literally
// (un-escaped); anything else is emitted as a canonical-case triplet.
// Malformed "%" sequences are escaped byte-by-byte ('%' itself always
// becomes "%25").
func Reencode(dst []byte, s string, allowed chars.Set, opts Options) []byte {
	for i := 0; i < len(s); {
		if s[i] == '%' {
			if v, ok := chars.DecodedByteAt(s, i); ok {
				if allowed(v) {
					dst = append(dst, v)
				} else {
					dst = appendTriplet(dst, v, opts.LowerCase)
				}
				i += 3
				continue
			}
			dst = appendTriplet(dst, '%', opts.LowerCase)
			i++
			continue
		}
		c := s[i]
		if allowed(c) {
			dst = append(dst, c)
		} else {
			dst = appendTriplet(dst, c, opts.LowerCase)
		}
		i++
	}
	return dst
}

func appendTriplet(dst []byte, c byte, lower bool) []byte {
	const hexUpper = "0123456789ABCDEF"
	const hexLower = "0123456789abcdef"
	hex := hexUpper
	if lower {
		hex = hexLower
	}
	return append(dst, '%', hex[c>>4], hex[c&0xF])
}

// Validate scans s for well-formed percent-encoding and returns the number
// of bytes the fully decoded form would occupy.
//
// It fails with ErrMissingHexDigit if '%' is followed by fewer than two
// bytes, ErrBadHexDigit if either of those bytes is not a hex digit, and
// (unless opts.AllowNull) ErrIllegalNull if a literal NUL byte appears or
// a "%00" triplet decodes to one.
func Validate(s string, opts Options) (decodedLen int, err error) {
	for i := 0; i < len(s); {
		switch {
		case s[i] == '%':
			if i+1 >= len(s) || i+2 >= len(s) {
				return 0, &Error{Code: ErrMissingHexDigit, Pos: i}
			}
			hi, okHi := chars.HexDigit(s[i+1])
			lo, okLo := chars.HexDigit(s[i+2])
			if !okHi || !okLo {
				return 0, &Error{Code: ErrBadHexDigit, Pos: i}
			}
			v := hi<<4 + lo
			if v == 0 && !opts.AllowNull {
				return 0, &Error{Code: ErrIllegalNull, Pos: i}
			}
			decodedLen++
			i += 3
		case s[i] == 0:
			if !opts.AllowNull {
				return 0, &Error{Code: ErrIllegalNull, Pos: i}
			}
			decodedLen++
			i++
		default:
			decodedLen++
			i++
		}
	}
	return decodedLen, nil
}

// Decode expands every "%HH" triplet in s to its raw byte and appends the
// result to dst, applying opts.PlusToSpace and opts.AllowNull, and returns
// the extended slice and the number of bytes written. It first calls
// Validate and returns its error unchanged on failure.
func Decode(dst []byte, s string, opts Options) ([]byte, int, error) {
	if _, err := Validate(s, opts); err != nil {
		return dst, 0, err
	}
	out, n := DecodeUnchecked(dst, s, opts)
	return out, n, nil
}

// DecodeUnchecked expands every "%HH" triplet in s to its raw byte and
// appends the result to dst, assuming s has already been validated by
// Validate. Behavior on malformed input is unspecified (but safe: it will
// not read out of bounds).
func DecodeUnchecked(dst []byte, s string, opts Options) ([]byte, int) {
	start := len(dst)
	for i := 0; i < len(s); {
		switch {
		case s[i] == '%' && i+2 < len(s):
			if v, ok := chars.DecodedByteAt(s, i); ok {
				dst = append(dst, v)
				i += 3
				continue
			}
			dst = append(dst, s[i])
			i++
		case s[i] == '+' && opts.PlusToSpace:
			dst = append(dst, ' ')
			i++
		default:
			dst = append(dst, s[i])
			i++
		}
	}
	return dst, len(dst) - start
}

// EncodeToString is a convenience wrapper around Encode.
func EncodeToString(s string, allowed chars.Set, opts Options) string {
	var b strings.Builder
	b.Grow(Measure(s, allowed))
	buf := Encode(nil, s, allowed, opts)
	b.Write(buf)
	return b.String()
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(s string, opts Options) (string, error) {
	buf, _, err := Decode(nil, s, opts)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
