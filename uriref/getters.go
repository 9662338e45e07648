package uriref

import (
	"strings"

	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// HasScheme reports whether the URL has a non-empty scheme part.
func (u *URL) HasScheme() bool { return u.t.Get(part.Scheme).Len > 0 }

// EncodedScheme returns the scheme without its trailing ':'.
func (u *URL) EncodedScheme() string {
	s := u.partString(part.Scheme)
	return strings.TrimSuffix(s, ":")
}

// HasAuthority reports whether the URL has an authority component.
func (u *URL) HasAuthority() bool { return u.t.HasAuthority() }

// EncodedUser returns the userinfo username, percent-encoded form.
func (u *URL) EncodedUser() string {
	s := u.partString(part.User)
	return strings.TrimPrefix(s, "//")
}

// User returns the userinfo username, percent-decoded.
func (u *URL) User() string {
	s, _ := pct.DecodeString(u.EncodedUser(), pct.Options{})
	return s
}

// HasPassword reports whether a password (as opposed to just a bare "@"
// userinfo terminator) is present.
func (u *URL) HasPassword() bool {
	return strings.HasPrefix(u.partString(part.Pass), ":")
}

// HasUserInfo reports whether any userinfo (even an empty username with
// no password) terminates in "@".
func (u *URL) HasUserInfo() bool { return u.t.Get(part.Pass).Len > 0 }

// EncodedPassword returns the userinfo password, percent-encoded form.
func (u *URL) EncodedPassword() string {
	s := u.partString(part.Pass)
	s = strings.TrimSuffix(s, "@")
	return strings.TrimPrefix(s, ":")
}

// Password returns the userinfo password, percent-decoded.
func (u *URL) Password() string {
	s, _ := pct.DecodeString(u.EncodedPassword(), pct.Options{})
	return s
}

// HostType reports the syntactic form of the host sub-component.
func (u *URL) HostType() part.HostType { return u.t.HostType }

// EncodedHost returns the host, percent-encoded form, including the
// surrounding "[" "]" for an IP-literal.
func (u *URL) EncodedHost() string { return u.partString(part.Host) }

// Host returns the host, percent-decoded (reg-names only; IP-literals are
// returned as-is since they have no percent-encoding).
func (u *URL) Host() string {
	h := u.EncodedHost()
	if u.t.HostType == part.HostName {
		s, _ := pct.DecodeString(h, pct.Options{})
		return s
	}
	return h
}

// IPAddress returns the 16-byte image of the host's IP address; it is
// valid (and meaningful) only when HostType is HostIPv4 or HostIPv6.
func (u *URL) IPAddress() [16]byte { return u.t.IPAddress }

// HasPort reports whether a ':' port delimiter is present, regardless of
// whether it is followed by digits.
func (u *URL) HasPort() bool { return u.t.Get(part.Port).Len > 0 }

// PortText returns the port's textual digits (possibly empty, for an
// explicit empty port like "host:").
func (u *URL) PortText() string {
	return strings.TrimPrefix(u.partString(part.Port), ":")
}

// Port returns the numeric port, and whether PortText parsed to a valid
// 16-bit number.
func (u *URL) Port() (uint16, bool) { return u.t.Port, u.t.HasPort }

// EncodedPath returns the path, percent-encoded form.
func (u *URL) EncodedPath() string { return u.partString(part.Path) }

// Path returns the path, percent-decoded.
func (u *URL) Path() string {
	s, _ := pct.DecodeString(u.EncodedPath(), pct.Options{})
	return s
}

// IsPathAbsolute reports whether the path starts with '/'.
func (u *URL) IsPathAbsolute() bool {
	return strings.HasPrefix(u.EncodedPath(), "/")
}

// SegmentCount returns the number of path segments.
func (u *URL) SegmentCount() int { return u.t.SegCount }

// HasQuery reports whether a '?' query delimiter is present.
func (u *URL) HasQuery() bool { return u.t.Get(part.Query).Len > 0 }

// EncodedQuery returns the query without its leading '?', percent-encoded
// form.
func (u *URL) EncodedQuery() string {
	return strings.TrimPrefix(u.partString(part.Query), "?")
}

// Query returns the query, percent-decoded (with the key/value structure
// preserved as raw text; use Params for structured access).
func (u *URL) Query() string {
	s, _ := pct.DecodeString(u.EncodedQuery(), pct.Options{PlusToSpace: false})
	return s
}

// ParamCount returns the number of "k=v" query parameters.
func (u *URL) ParamCount() int { return u.t.ParamCount }

// HasFragment reports whether a '#' fragment delimiter is present.
func (u *URL) HasFragment() bool { return u.t.Get(part.Fragment).Len > 0 }

// EncodedFragment returns the fragment without its leading '#',
// percent-encoded form.
func (u *URL) EncodedFragment() string {
	return strings.TrimPrefix(u.partString(part.Fragment), "#")
}

// Fragment returns the fragment, percent-decoded.
func (u *URL) Fragment() string {
	s, _ := pct.DecodeString(u.EncodedFragment(), pct.Options{})
	return s
}

// DecodedLen returns the number of bytes part id would occupy if fully
// percent-decoded.
func (u *URL) DecodedLen(id part.ID) int { return u.t.DecodedLen[id] }
