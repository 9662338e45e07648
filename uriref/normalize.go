package uriref

import (
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// Normalize applies all five normalization steps in sequence: scheme,
// authority, path, query, fragment. It is idempotent:
// Normalize(Normalize(u)) produces the same serialization as
// Normalize(u).
func (u *URL) Normalize() *URL {
	Try(u.normalizeScheme())
	Try(u.normalizeAuthority())
	Try(u.normalizePath())
	Try(u.normalizeQuery())
	Try(u.normalizeFragment())
	return u
}

func (u *URL) normalizeScheme() error {
	sp := u.t.Get(part.Scheme)
	for i := sp.Offset; i < sp.Offset+sp.Len-1; i++ { // -1: exclude trailing ':'
		if c := u.buf[i]; c >= 'A' && c <= 'Z' {
			u.buf[i] = c + ('a' - 'A')
		}
	}
	return nil
}

func (u *URL) normalizeAuthority() error {
	if err := u.reencodePart(part.User, chars.UserInfo); err != nil {
		return err
	}
	if err := u.reencodePart(part.Pass, chars.UserInfo); err != nil {
		return err
	}
	if u.t.HostType == part.HostName {
		old := u.EncodedHost()
		enc := pct.Reencode(nil, old, chars.RegName, pct.Options{})
		lowered := make([]byte, len(enc))
		for i, c := range enc {
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			lowered[i] = c
		}
		w, err := u.resizeOne(part.Host, len(lowered))
		if err != nil {
			return err
		}
		copy(w, lowered)
	}
	return nil
}

// reencodePart re-encodes part id under allowed, preserving any
// delimiter prefix/suffix bytes that are not part of the encoded payload
// (User's "//" prefix, Pass's ":"/"@" wrapping).
func (u *URL) reencodePart(id part.ID, allowed chars.Set) error {
	raw := u.partString(id)
	prefix, body, suffix := splitDelims(id, raw)
	enc := pct.Reencode(nil, body, allowed, pct.Options{})
	newRaw := prefix + string(enc) + suffix
	w, err := u.resizeOne(id, len(newRaw))
	if err != nil {
		return err
	}
	copy(w, newRaw)
	return nil
}

func splitDelims(id part.ID, raw string) (prefix, body, suffix string) {
	switch id {
	case part.User:
		return "//", strings.TrimPrefix(raw, "//"), ""
	case part.Pass:
		if strings.HasPrefix(raw, ":") {
			return ":", strings.TrimSuffix(strings.TrimPrefix(raw, ":"), "@"), "@"
		}
		return "", "", raw // bare "@" or empty, nothing to re-encode
	default:
		return "", raw, ""
	}
}

func (u *URL) normalizePath() error {
	old := u.EncodedPath()
	enc := string(pct.Reencode(nil, old, chars.Path, pct.Options{}))
	removed := removeDotSegments(enc)
	w, err := u.resizeOne(part.Path, len(removed))
	if err != nil {
		return err
	}
	copy(w, removed)
	u.recountSegments()
	u.t.DecodedLen[part.Path], _ = pct.Validate(removed, pct.Options{AllowNull: true})
	return nil
}

func (u *URL) normalizeQuery() error {
	old := u.EncodedQuery()
	if !u.HasQuery() {
		return nil
	}
	enc := pct.Reencode(nil, old, chars.Query, pct.Options{})
	w, err := u.resizeOne(part.Query, 1+len(enc))
	if err != nil {
		return err
	}
	w[0] = '?'
	copy(w[1:], enc)
	return nil
}

func (u *URL) normalizeFragment() error {
	if !u.HasFragment() {
		return nil
	}
	old := u.EncodedFragment()
	enc := pct.Reencode(nil, old, chars.Fragment, pct.Options{})
	w, err := u.resizeOne(part.Fragment, 1+len(enc))
	if err != nil {
		return err
	}
	w[0] = '#'
	copy(w[1:], enc)
	return nil
}

// removeDotSegments implements RFC 3986 section 5.2.4 over an
// already-encoded path string.
func removeDotSegments(path string) string {
	in := path
	var out strings.Builder
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			removeLastSegment(&out)
		case in == "/..":
			in = "/"
			removeLastSegment(&out)
		case in == ".":
			in = ""
		case in == "..":
			in = ""
		default:
			i := 0
			if strings.HasPrefix(in, "/") {
				i = 1
			}
			j := strings.IndexByte(in[i:], '/')
			if j < 0 {
				out.WriteString(in)
				in = ""
			} else {
				out.WriteString(in[:i+j])
				in = in[i+j:]
			}
		}
	}
	return out.String()
}

func removeLastSegment(out *strings.Builder) {
	s := out.String()
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		out.Reset()
		return
	}
	out.Reset()
	out.WriteString(s[:i])
}
