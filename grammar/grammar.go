// Package grammar composes the per-part character classes of internal/chars
// into scanners for the grammar productions of RFC 3986: scheme,
// authority, host, port, userinfo, path, query, fragment, and the
// path-template segment grammar the router uses.
//
// Scanning style follows bford-cofo's cri/form.go (scanScheme,
// scanUserInfo): a scan function takes a string and a start offset and
// returns the offset just past what it consumed, or a sentinel on failure,
// rather than building an AST.
package grammar

import (
	"errors"

	"github.com/vinniefalco/uri/internal/chars"
)

// ErrSyntax is the package's syntax error value. The scanners in this file
// do not return it: they report a failed scan through their results.
var ErrSyntax = errors.New("syntax")

// ScanScheme scans a scheme name at the start of s and returns the index
// just past it and just past the following ':'; ok is false if s does not
// begin with a valid scheme name followed by ':'.
//
// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
func ScanScheme(s string) (end int, ok bool) {
	if len(s) == 0 || !chars.IsAlpha(s[0]) {
		return 0, false
	}
	i := 1
	for i < len(s) && chars.Scheme(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return 0, false
	}
	return i + 1, true
}

// ScanUserInfo scans the userinfo sub-component starting at start (just
// past "//") and returns the index just past the terminating '@', or
// start unchanged if no valid userinfo (ending in '@') is present.
func ScanUserInfo(s string, start int) (end int) {
	for i := start; i < len(s); i++ {
		switch {
		case s[i] == '@':
			return i + 1
		case chars.UserInfo(s[i]) || chars.IsPercentEncodedAt(s, i):
			if chars.IsPercentEncodedAt(s, i) {
				i += 2
			}
		default:
			return start
		}
	}
	return start
}

// ScanPort scans a run of ASCII digits starting at start.
func ScanPort(s string, start int) (end int) {
	i := start
	for i < len(s) && chars.IsDigit(s[i]) {
		i++
	}
	return i
}

// ScanPath scans the longest run of bytes in s, starting at start, that
// are either allowed in a path or a well-formed percent-encoded triplet.
func ScanPath(s string, start int) (end int) {
	i := start
	for i < len(s) {
		if chars.Path(s[i]) {
			i++
			continue
		}
		if chars.IsPercentEncodedAt(s, i) {
			i += 3
			continue
		}
		break
	}
	return i
}

// SplitAuthority locates the authority component, if any, at the start of
// ref (a path-or-more string that may begin with "//"). It returns the
// index just past the authority (i.e. at the start of the path) and true
// if ref begins with "//".
func SplitAuthority(ref string) (end int, hasAuthority bool) {
	if len(ref) < 2 || ref[0] != '/' || ref[1] != '/' {
		return 0, false
	}
	i := 2
	for i < len(ref) && ref[i] != '/' && ref[i] != '?' && ref[i] != '#' {
		i++
	}
	return i, true
}
