package uriref

import (
	"strconv"
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/ipaddr"
	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// ensureAuthority synthesizes the leading "//" authority marker in the
// user part if it is not already present: setting a password (or host,
// or port) on a URL without an authority must create one.
func (u *URL) ensureAuthority() error {
	if u.HasAuthority() {
		return nil
	}
	_, err := u.resizeOne(part.User, 2)
	if err != nil {
		return err
	}
	copy(u.buf[u.t.Get(part.User).Offset:], "//")
	u.t.DecodedLen[part.User] = 2
	return nil
}

// SetUser sets the userinfo username to name (plain text, percent-encoded
// on write under the userinfo allowed set). It synthesizes an authority
// and a "@" userinfo terminator if neither is present yet.
func (u *URL) SetUser(name string) *URL {
	Try(u.setUser(name, false))
	return u
}

// SetEncodedUser is like SetUser but name is taken as already
// percent-encoded, canonical input; it is validated but not re-encoded.
func (u *URL) SetEncodedUser(name string) *URL {
	Try(u.setUser(name, true))
	return u
}

func (u *URL) setUser(name string, encoded bool) error {
	enc := name
	if !encoded {
		enc = pct.EncodeToString(name, chars.UserInfo, pct.Options{})
	} else if _, err := pct.Validate(name, pct.Options{}); err != nil {
		return err
	}
	if err := u.ensureAuthority(); err != nil {
		return err
	}
	if u.t.Get(part.Pass).Len == 0 {
		if _, err := u.resizeOne(part.Pass, 1); err != nil {
			return err
		}
		u.buf[u.t.Get(part.Pass).Offset] = '@'
		u.t.DecodedLen[part.Pass] = 1
	}
	w, err := u.resizeOne(part.User, 2+len(enc))
	if err != nil {
		return err
	}
	w[0], w[1] = '/', '/'
	copy(w[2:], enc)
	u.t.DecodedLen[part.User], _ = pct.Validate(string(w), pct.Options{AllowNull: true})
	return nil
}

// SetPassword sets the userinfo password to pw (plain text). It implies a
// username (even if empty) and an authority, synthesizing both as
// needed.
func (u *URL) SetPassword(pw string) *URL {
	Try(u.setPassword(pw, false))
	return u
}

// SetEncodedPassword is like SetPassword but pw is already
// percent-encoded canonical input.
func (u *URL) SetEncodedPassword(pw string) *URL {
	Try(u.setPassword(pw, true))
	return u
}

func (u *URL) setPassword(pw string, encoded bool) error {
	enc := pw
	if !encoded {
		enc = pct.EncodeToString(pw, chars.UserInfo, pct.Options{})
	} else if _, err := pct.Validate(pw, pct.Options{}); err != nil {
		return err
	}
	if err := u.ensureAuthority(); err != nil {
		return err
	}
	w, err := u.resizeOne(part.Pass, 1+len(enc)+1)
	if err != nil {
		return err
	}
	w[0] = ':'
	copy(w[1:], enc)
	w[len(w)-1] = '@'
	u.t.DecodedLen[part.Pass], _ = pct.Validate(string(w), pct.Options{AllowNull: true})
	return nil
}

// RemoveUser removes the userinfo username, leaving any password intact.
func (u *URL) RemoveUser() *URL {
	Try(func() error {
		_, err := u.resizeOne(part.User, 2)
		if err != nil {
			return err
		}
		copy(u.buf[u.t.Get(part.User).Offset:], "//")
		u.t.DecodedLen[part.User] = 2
		return nil
	}())
	return u
}

// RemovePassword removes the userinfo password. A username, if present,
// keeps its "@" terminator; if there was no username either, the userinfo
// disappears entirely.
func (u *URL) RemovePassword() *URL {
	Try(func() error {
		if u.EncodedUser() != "" {
			w, err := u.resizeOne(part.Pass, 1)
			if err != nil {
				return err
			}
			w[0] = '@'
			u.t.DecodedLen[part.Pass] = 1
			return nil
		}
		_, err := u.shrinkToZero(part.Pass)
		if err != nil {
			return err
		}
		u.t.DecodedLen[part.Pass] = 0
		return nil
	}())
	return u
}

// SetHost sets the host to text, dispatching on its syntactic shape: a
// "[...]"-wrapped literal is parsed as IPv6 or
// IPvFuture; otherwise, if text looks like a dotted-quad IPv4 address
// (length >= 7 and matching), it is parsed as IPv4; otherwise it is
// treated as a reg-name and percent-encoded under the reg-name allowed
// set (with '.' excluded from that set if text textually resembles an
// IPv4 literal, so the encoded result does not look like one after
// round-trip).
func (u *URL) SetHost(text string) *URL {
	Try(u.setHost(text))
	return u
}

func (u *URL) setHost(text string) error {
	if err := u.ensureAuthority(); err != nil {
		return err
	}

	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		body := text[1 : len(text)-1]
		if len(body) > 0 && (body[0] == 'v' || body[0] == 'V') {
			return u.writeHost(text, part.HostIPvFuture, [16]byte{})
		}
		addr, err := ipaddr.ParseV6(body)
		if err != nil {
			return newError(CodeSyntax, "invalid IPv6 literal %q", text)
		}
		return u.writeHost("["+ipaddr.FormatV6(addr)+"]", part.HostIPv6, addr)
	}

	if len(text) >= 7 {
		if addr, err := ipaddr.ParseV4(text); err == nil {
			var img [16]byte
			copy(img[:4], addr[:])
			return u.writeHost(ipaddr.FormatV4(addr), part.HostIPv4, img)
		}
	}

	allowed := chars.RegName
	if ipaddr.LooksLikeV4(text) {
		allowed = chars.RegNameNoDot
	}
	enc := pct.EncodeToString(text, allowed, pct.Options{})
	return u.writeHost(enc, part.HostName, [16]byte{})
}

// SetEncodedHost is like SetHost but text is taken as already
// percent-encoded reg-name content, or a literal IP address/bracketed
// literal; no further encoding is applied to a reg-name.
func (u *URL) SetEncodedHost(text string) *URL {
	Try(u.setEncodedHost(text))
	return u
}

func (u *URL) setEncodedHost(text string) error {
	if err := u.ensureAuthority(); err != nil {
		return err
	}
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		body := text[1 : len(text)-1]
		if len(body) > 0 && (body[0] == 'v' || body[0] == 'V') {
			return u.writeHost(text, part.HostIPvFuture, [16]byte{})
		}
		addr, err := ipaddr.ParseV6(body)
		if err != nil {
			return newError(CodeSyntax, "invalid IPv6 literal %q", text)
		}
		return u.writeHost(text, part.HostIPv6, addr)
	}
	if addr, err := ipaddr.ParseV4(text); err == nil {
		var img [16]byte
		copy(img[:4], addr[:])
		return u.writeHost(text, part.HostIPv4, img)
	}
	if _, err := pct.Validate(text, pct.Options{}); err != nil {
		return err
	}
	return u.writeHost(text, part.HostName, [16]byte{})
}

func (u *URL) writeHost(encoded string, ht part.HostType, addr [16]byte) error {
	w, err := u.resizeOne(part.Host, len(encoded))
	if err != nil {
		return err
	}
	copy(w, encoded)
	u.t.HostType = ht
	u.t.IPAddress = addr
	u.t.DecodedLen[part.Host], _ = pct.Validate(string(w), pct.Options{AllowNull: true})
	return nil
}

// RemoveHost clears the host, setting its type to HostNone. This differs
// from SetHost(""), which leaves an empty reg-name behind.
func (u *URL) RemoveHost() *URL {
	Try(func() error {
		_, err := u.shrinkToZero(part.Host)
		if err != nil {
			return err
		}
		u.t.HostType = part.HostNone
		u.t.IPAddress = [16]byte{}
		u.t.DecodedLen[part.Host] = 0
		return nil
	}())
	return u
}

// SetPort sets the numeric port.
func (u *URL) SetPort(n uint16) *URL {
	Try(u.setPortText(strconv.Itoa(int(n))))
	return u
}

// SetPortText sets the port's textual form directly; it need not be
// numeric (e.g. "" for an explicit empty port). The port setter accepts
// either a 16-bit integer or a numeric string and records the exact
// text.
func (u *URL) SetPortText(text string) *URL {
	Try(u.setPortText(text))
	return u
}

func (u *URL) setPortText(text string) error {
	for i := 0; i < len(text); i++ {
		if !chars.IsDigit(text[i]) {
			return newError(CodeSyntax, "port %q is not numeric", text)
		}
	}
	if err := u.ensureAuthority(); err != nil {
		return err
	}
	w, err := u.resizeOne(part.Port, 1+len(text))
	if err != nil {
		return err
	}
	w[0] = ':'
	copy(w[1:], text)
	u.t.DecodedLen[part.Port] = len(w)
	if n, convErr := strconv.ParseUint(text, 10, 16); convErr == nil && text != "" {
		u.t.Port = uint16(n)
		u.t.HasPort = true
	} else {
		u.t.Port = 0
		u.t.HasPort = false
	}
	return nil
}

// RemovePort removes the port delimiter and any text.
func (u *URL) RemovePort() *URL {
	Try(func() error {
		_, err := u.shrinkToZero(part.Port)
		if err != nil {
			return err
		}
		u.t.Port = 0
		u.t.HasPort = false
		u.t.DecodedLen[part.Port] = 0
		return nil
	}())
	return u
}

// RemoveAuthority removes the entire authority (user, pass, host, port),
// applying the "/." guard that prevents a path now starting with "//"
// from being reinterpreted as an authority.
func (u *URL) RemoveAuthority() *URL {
	Try(u.removeAuthority())
	return u
}

func (u *URL) removeAuthority() error {
	if _, err := u.resize(part.User, part.Path, 0); err != nil {
		return err
	}
	u.t.HostType = part.HostNone
	u.t.IPAddress = [16]byte{}
	u.t.Port = 0
	u.t.HasPort = false
	u.t.DecodedLen[part.User] = 0
	u.t.DecodedLen[part.Pass] = 0
	u.t.DecodedLen[part.Host] = 0
	u.t.DecodedLen[part.Port] = 0
	if strings.HasPrefix(u.EncodedPath(), "//") {
		return u.prependPathLiteral("/.")
	}
	return nil
}

// RemoveOrigin removes both scheme and authority in one step, applying
// whichever guard ("./" or "/.") the resulting path shape requires.
func (u *URL) RemoveOrigin() *URL {
	Try(u.removeOrigin())
	return u
}

func (u *URL) removeOrigin() error {
	if _, err := u.resize(part.Scheme, part.Path, 0); err != nil {
		return err
	}
	u.t.HostType = part.HostNone
	u.t.IPAddress = [16]byte{}
	u.t.Port = 0
	u.t.HasPort = false
	u.t.DecodedLen[part.Scheme] = 0
	u.t.DecodedLen[part.User] = 0
	u.t.DecodedLen[part.Pass] = 0
	u.t.DecodedLen[part.Host] = 0
	u.t.DecodedLen[part.Port] = 0
	p := u.EncodedPath()
	switch {
	case strings.HasPrefix(p, "//"):
		return u.prependPathLiteral("/.")
	case !strings.HasPrefix(p, "/") && firstSegmentHasColon(p):
		return u.prependPathLiteral("./")
	}
	return nil
}

// SetPathAbsolute toggles whether the path starts with '/'. Setting it to
// false on a URL with an authority and a non-empty path is a no-op that
// returns false, per the invariant that an authority-bearing URL's path
// is always absolute.
func (u *URL) SetPathAbsolute(absolute bool) bool {
	isAbs := u.IsPathAbsolute()
	if absolute == isAbs {
		return true
	}
	if !absolute && u.HasAuthority() && u.EncodedPath() != "" {
		return false
	}
	if absolute {
		Try(u.prependPathLiteral("/"))
		return true
	}
	old := u.EncodedPath()
	Try(func() error {
		_, err := u.resizeOne(part.Path, len(old)-1)
		if err != nil {
			return err
		}
		copy(u.buf[u.t.Get(part.Path).Offset:], old[1:])
		u.t.DecodedLen[part.Path]--
		return nil
	}())
	return true
}
