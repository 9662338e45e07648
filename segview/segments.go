// Package segview provides sequence-view projections over a URL's path
// and query: Segments (path segments, split on '/') and Params (query
// parameters, split on '&' and '='). Every mutating method lowers onto
// one primitive per view, following
// original_source/include/boost/url/impl/segments_ref.hpp's
// edit_segments, which measures the replacement range, computes the
// right prefix/suffix to keep the path's grammatical form intact, and
// performs one resize.
package segview

import (
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/pct"
	"github.com/vinniefalco/uri/uriref"
)

// Segments is a view over a URL's path, split into '/'-delimited
// segments. It holds no state of its own; every method re-reads the
// URL's current path and writes a new one back. Any other projection or
// iterator into the same URL is invalidated by a mutating call.
type Segments struct {
	u *uriref.URL
}

// New returns a Segments view over u.
func New(u *uriref.URL) *Segments { return &Segments{u: u} }

// Len returns the number of path segments.
func (s *Segments) Len() int { return s.u.SegmentCount() }

// IsAbsolute reports whether the path starts with '/'.
func (s *Segments) IsAbsolute() bool { return s.u.IsPathAbsolute() }

// EncodedAt returns the i'th segment in percent-encoded form.
func (s *Segments) EncodedAt(i int) string {
	segs := s.split()
	return segs[i]
}

// At returns the i'th segment, percent-decoded.
func (s *Segments) At(i int) string {
	d, _ := pct.DecodeString(s.EncodedAt(i), pct.Options{})
	return d
}

// All returns every segment, percent-decoded, in order.
func (s *Segments) All() []string {
	segs := s.split()
	out := make([]string, len(segs))
	for i, e := range segs {
		out[i], _ = pct.DecodeString(e, pct.Options{})
	}
	return out
}

// Clear removes every segment. An absolute path is left as "/" (zero
// segments); any other path is left empty.
func (s *Segments) Clear() { s.editRange(0, s.Len(), nil, true) }

// Assign replaces every segment with values (plain text, encoded on
// write).
func (s *Segments) Assign(values []string) { s.editRange(0, s.Len(), values, false) }

// Insert inserts values (plain text) before position pos.
func (s *Segments) Insert(pos int, values ...string) { s.editRange(pos, pos, values, false) }

// InsertEncoded is like Insert but values are already percent-encoded.
func (s *Segments) InsertEncoded(pos int, values ...string) { s.editRange(pos, pos, values, true) }

// Erase removes the segments in [first, last).
func (s *Segments) Erase(first, last int) { s.editRange(first, last, nil, true) }

// Replace replaces the segments in [first, last) with values (plain
// text).
func (s *Segments) Replace(first, last int, values ...string) {
	s.editRange(first, last, values, false)
}

// PushBack appends a segment (plain text).
func (s *Segments) PushBack(value string) { n := s.Len(); s.editRange(n, n, []string{value}, false) }

// PopBack removes the last segment.
func (s *Segments) PopBack() { n := s.Len(); s.editRange(n-1, n, nil, true) }

func (s *Segments) split() []string {
	p := s.u.EncodedPath()
	if p == "" || p == "/" {
		return nil
	}
	trimmed := strings.TrimPrefix(p, "/")
	return strings.Split(trimmed, "/")
}

// editRange is the one primitive every mutating method above lowers
// onto: it splices values into the segment sequence at [first, last) and
// reassembles the path, choosing a prefix that preserves the path's
// grammatical form.
func (s *Segments) editRange(first, last int, values []string, encoded bool) {
	segs := s.split()
	encNew := make([]string, len(values))
	for i, v := range values {
		if encoded {
			encNew[i] = v
		} else {
			encNew[i] = pct.EncodeToString(v, chars.Segment, pct.Options{})
		}
	}

	merged := make([]string, 0, len(segs)-(last-first)+len(encNew))
	merged = append(merged, segs[:first]...)
	merged = append(merged, encNew...)
	merged = append(merged, segs[last:]...)

	wasAbsolute := s.u.IsPathAbsolute()
	hasAuthority := s.u.HasAuthority()
	hasScheme := s.u.HasScheme()

	if len(merged) == 0 {
		// An empty segment list still has to round-trip through the path
		// form it started in: a root path ("/", zero segments) must stay
		// "/" rather than vanish into "" (no path at all), since an
		// authority-bearing URL's path being absolute is part of its
		// identity, not just a rendering choice.
		if wasAbsolute {
			s.u.SetEncodedPath("/")
		} else {
			s.u.SetEncodedPath("")
		}
		return
	}

	prefix := computePrefix(wasAbsolute, hasAuthority, hasScheme, merged)
	body := merged
	// A leading empty element only collapses into the prefix's implied
	// '/' when it predates this edit (it was already part of the
	// original segment list); an empty element this edit just wrote at
	// position 0 is real content the caller asked for and must survive.
	leadingEmptyIsNew := first == 0 && len(encNew) > 0
	if prefix == "/" && len(body) > 0 && body[0] == "" && !leadingEmptyIsNew {
		body = body[1:]
	}
	path := prefix + strings.Join(body, "/")
	s.u.SetEncodedPath(path)
}

// computePrefix picks the leading bytes needed to keep the reassembled
// path parseable as the same path form it started as: path-abempty when
// an authority is present, path-absolute when it was absolute, path-
// noscheme (escaped with "./") when the first segment would otherwise
// read as a scheme or is itself empty (an empty first segment written
// directly as a leading '/' would read as path-absolute, a genuine
// semantic difference under reference resolution, not just a
// serialization nuance), and plain path-rootless otherwise.
func computePrefix(wasAbsolute, hasAuthority, hasScheme bool, segs []string) string {
	if hasAuthority || wasAbsolute {
		return "/"
	}
	if len(segs) == 0 {
		return ""
	}
	if segs[0] == "" {
		return "./"
	}
	if !hasScheme && strings.Contains(segs[0], ":") {
		return "./"
	}
	return ""
}
