// Package ipaddr parses and prints the IPv4 and IPv6 textual address forms
// that a URI's host sub-component may use: dotted-quad IPv4 (RFC 3986
// IPv4address) and bracketed IPv6 including "::" contraction and a
// trailing embedded IPv4 tail (RFC 4291, RFC 3986 IPv6address).
package ipaddr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
)

// ErrSyntax is returned when the input does not conform to the requested
// address grammar.
var ErrSyntax = errors.New("syntax")

// ParseV4 parses a dotted-quad IPv4 address (exactly four decimal octets
// separated by '.', each 0-255, no leading zero padding beyond a single
// digit) and returns its 4-byte big-endian image.
func ParseV4(s string) (addr [4]byte, err error) {
	start := 0
	for k := 0; k < 4; k++ {
		if k > 0 {
			if start >= len(s) || s[start] != '.' {
				return addr, ErrSyntax
			}
			start++
		}
		end := start
		for end < len(s) && chars.IsDigit(s[end]) {
			end++
		}
		n := end - start
		if n == 0 || n > 3 || (n > 1 && s[start] == '0') {
			return addr, ErrSyntax
		}
		v, convErr := strconv.Atoi(s[start:end])
		if convErr != nil || v > 255 {
			return addr, ErrSyntax
		}
		addr[k] = byte(v)
		start = end
	}
	if start != len(s) {
		return addr, ErrSyntax
	}
	return addr, nil
}

// LooksLikeV4 reports whether s has the textual shape of a dotted-quad
// IPv4 address without fully validating octet ranges: at least 7 bytes,
// matching digits and dots in the right places. It is used by setters
// that must decide whether a reg-name-looking string should instead be
// parsed as an address.
func LooksLikeV4(s string) bool {
	if len(s) < 7 {
		return false
	}
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if len(g) == 0 || len(g) > 3 {
			return false
		}
		for i := 0; i < len(g); i++ {
			if !chars.IsDigit(g[i]) {
				return false
			}
		}
	}
	return true
}

// FormatV4 renders addr in dotted-quad form.
func FormatV4(addr [4]byte) string {
	var b strings.Builder
	for i, o := range addr {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(o)))
	}
	return b.String()
}

// ParseV6 parses the body of a bracketed IPv6 literal (without the
// surrounding '[' ']'), including "::" contraction and a trailing
// embedded-IPv4 tail such as "::FFFF:1.2.3.4", and returns its 16-byte
// big-endian image.
//
// It rejects more than one "::", groups with more than four hex digits,
// groups whose value exceeds 0xFFFF, and a malformed IPv4 tail.
func ParseV6(s string) (addr [16]byte, err error) {
	groups := strings.Split(s, ":")

	// A leading or trailing "::" produces two adjacent empty strings in the
	// split (a bare "::" produces three); a "::" in the middle produces a
	// single empty string, which the group loop below catches. An adjacent
	// pair is counted once, so a bare "::" is one contraction.
	doubleColonAt := -1
	for i := 0; i < len(groups)-1; i++ {
		if groups[i] == "" && groups[i+1] == "" {
			if doubleColonAt != -1 {
				return addr, ErrSyntax
			}
			doubleColonAt = i
			i++
		}
	}

	// Leading/trailing "::" leaves a stray empty leading/trailing group;
	// strip exactly the ones the contraction accounts for.
	if len(groups) > 0 && groups[0] == "" && (doubleColonAt == 0 || (len(groups) > 1 && groups[1] == "")) {
		groups = groups[1:]
		if doubleColonAt > 0 {
			doubleColonAt--
		}
	}
	if len(groups) > 0 && groups[len(groups)-1] == "" && doubleColonAt == len(groups)-2 {
		groups = groups[:len(groups)-1]
	}

	// Detect and extract an embedded IPv4 tail in the last group.
	var v4 [4]byte
	haveV4 := false
	if len(groups) > 0 && strings.Contains(groups[len(groups)-1], ".") {
		v4, err = ParseV4(groups[len(groups)-1])
		if err != nil {
			return addr, ErrSyntax
		}
		haveV4 = true
		groups = groups[:len(groups)-1]
	}

	hexGroups := make([]uint16, 0, 8)
	contractionIdx := -1
	for i, g := range groups {
		if g == "" {
			if contractionIdx != -1 {
				return addr, ErrSyntax
			}
			contractionIdx = i
			continue
		}
		if len(g) == 0 || len(g) > 4 {
			return addr, ErrSyntax
		}
		v, convErr := strconv.ParseUint(g, 16, 32)
		if convErr != nil || v > 0xFFFF {
			return addr, ErrSyntax
		}
		hexGroups = append(hexGroups, uint16(v))
	}

	want := 8
	if haveV4 {
		want = 6
	}
	if contractionIdx == -1 {
		if len(hexGroups) != want {
			return addr, ErrSyntax
		}
	} else if len(hexGroups) >= want {
		return addr, ErrSyntax
	}

	// Lay out hexGroups into the 8 (or 6, for a v4 tail) 16-bit words,
	// leaving a run of zero words where the contraction was.
	words := make([]uint16, want)
	if contractionIdx == -1 {
		copy(words, hexGroups)
	} else {
		before := hexGroups[:contractionIdx]
		after := hexGroups[contractionIdx:]
		copy(words, before)
		copy(words[want-len(after):], after)
	}

	for i, w := range words {
		addr[i*2] = byte(w >> 8)
		addr[i*2+1] = byte(w)
	}
	if haveV4 {
		addr[12], addr[13], addr[14], addr[15] = v4[0], v4[1], v4[2], v4[3]
	}
	return addr, nil
}

// FormatV6 renders addr in its canonical compressed form: the longest run
// of zero 16-bit groups (length >= 2) is replaced by "::"; ties are broken
// by the leftmost run.
func FormatV6(addr [16]byte) string {
	var words [8]uint16
	for i := range words {
		words[i] = uint16(addr[i*2])<<8 | uint16(addr[i*2+1])
	}

	bestStart, bestLen := -1, 0
	i := 0
	for i < 8 {
		if words[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && words[j] == 0 {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var b strings.Builder
	for i := 0; i < 8; {
		if i == bestStart {
			b.WriteString("::")
			i += bestLen
			continue
		}
		if b.Len() > 0 && b.String()[b.Len()-1] != ':' {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(words[i]), 16))
		i++
	}
	if b.Len() == 0 {
		return "::"
	}
	return b.String()
}
