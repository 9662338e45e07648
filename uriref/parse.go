package uriref

import (
	"strconv"
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/ipaddr"
	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// Parse parses s as a URI-reference and returns the resulting URL. It
// validates percent-encoding in every part but otherwise preserves the
// input bytes unchanged: Parse(s).String() == s for any well-formed s.
func Parse(s string) (u *URL, err error) {
	defer Recover(&err)
	u = parseInto(s)
	return u, nil
}

// MustParse is Parse's throwing form.
func MustParse(s string) *URL {
	u, err := Parse(s)
	Try(err)
	return u
}

func parseInto(s string) *URL {
	u := &URL{}
	rest := s

	// scheme
	schemeEnd := 0
	if end, ok := scanSchemeLoose(rest); ok {
		schemeEnd = end
	}
	scheme := rest[:schemeEnd]
	rest = rest[schemeEnd:]

	// authority
	var userText, passText, hostText, portText string
	if strings.HasPrefix(rest, "//") {
		i := 2
		for i < len(rest) && rest[i] != '/' && rest[i] != '?' && rest[i] != '#' {
			i++
		}
		authority := rest[2:i]
		rest = rest[i:]

		userinfo := ""
		hostport := authority
		hasUserInfo := false
		if at := lastUnbracketedAt(authority); at >= 0 {
			userinfo = authority[:at]
			hostport = authority[at+1:]
			hasUserInfo = true
		}
		if hasUserInfo {
			if c := strings.IndexByte(userinfo, ':'); c >= 0 {
				userText = "//" + userinfo[:c]
				passText = ":" + userinfo[c+1:] + "@"
			} else {
				userText = "//" + userinfo
				passText = "@"
			}
		} else {
			userText = "//"
		}

		hostText, portText = splitHostPort(hostport)
	}

	// path, query, fragment
	path, rest2 := splitAt(rest, "?#")
	query := ""
	fragment := ""
	if strings.HasPrefix(rest2, "?") {
		q, r3 := splitAt(rest2, "#")
		query = q
		rest2 = r3
	}
	if strings.HasPrefix(rest2, "#") {
		fragment = rest2
	}

	// lay out the buffer in part order
	u.buf = make([]byte, 0, len(s)+1)
	off := 0
	place := func(id part.ID, text string) {
		u.t.Set(id, part.Span{Offset: off, Len: len(text)})
		u.buf = append(u.buf, text...)
		off += len(text)
	}
	place(part.Scheme, scheme)
	place(part.User, userText)
	place(part.Pass, passText)
	place(part.Host, hostText)
	place(part.Port, portText)
	place(part.Path, path)
	place(part.Query, query)
	place(part.Fragment, fragment)
	u.terminate()

	u.setHostTypeAndAddress(hostText)
	u.recountSegments()
	u.recountParams()
	u.recomputeDecodedLens()
	if portText != "" {
		digits := portText[1:]
		if n, err := strconv.ParseUint(digits, 10, 16); err == nil {
			u.t.Port = uint16(n)
			u.t.HasPort = true
		}
	}
	return u
}

// scanSchemeLoose performs the same scan as grammar.ScanScheme: it accepts
// any valid scheme name followed by ':' and does not look at what follows
// the ':'. A rootless path containing ':' in its first segment is not
// mistaken for a scheme only if the bytes before ':' are not a valid
// scheme name.
func scanSchemeLoose(s string) (end int, ok bool) {
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

// lastUnbracketedAt returns the index of the last '@' in s that is not
// inside a bracketed IPv6 literal, or -1 if there is none.
func lastUnbracketedAt(s string) int {
	depth := 0
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '@':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// splitHostPort splits an authority's host:port remainder into the
// buffer's host text (no delimiter) and port text (including its leading
// ':' when present).
func splitHostPort(hostport string) (host, port string) {
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return hostport, "" // malformed; caller will fail validation downstream
		}
		host = hostport[:end+1]
		rest := hostport[end+1:]
		if strings.HasPrefix(rest, ":") {
			port = rest
		}
		return host, port
	}
	if c := strings.LastIndexByte(hostport, ':'); c >= 0 {
		return hostport[:c], hostport[c:]
	}
	return hostport, ""
}

// splitAt splits s at the first occurrence of any byte in cutset,
// returning the prefix and the suffix starting at the cut byte.
func splitAt(s, cutset string) (string, string) {
	i := strings.IndexAny(s, cutset)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

func (u *URL) setHostTypeAndAddress(hostText string) {
	switch {
	case hostText == "":
		u.t.HostType = part.HostNone
	case strings.HasPrefix(hostText, "["):
		body := strings.TrimSuffix(strings.TrimPrefix(hostText, "["), "]")
		if strings.HasPrefix(body, "v") || strings.HasPrefix(body, "V") {
			u.t.HostType = part.HostIPvFuture
		} else if addr, err := ipaddr.ParseV6(body); err == nil {
			u.t.HostType = part.HostIPv6
			copy(u.t.IPAddress[:], addr[:])
		} else {
			u.t.HostType = part.HostIPvFuture
		}
	case ipaddr.LooksLikeV4(hostText):
		if addr, err := ipaddr.ParseV4(hostText); err == nil {
			u.t.HostType = part.HostIPv4
			copy(u.t.IPAddress[:4], addr[:])
		} else {
			u.t.HostType = part.HostName
		}
	default:
		u.t.HostType = part.HostName
	}
}

func (u *URL) recountSegments() {
	p := u.partString(part.Path)
	if p == "" || p == "/" {
		u.t.SegCount = 0
		return
	}
	n := strings.Count(p, "/")
	if !strings.HasPrefix(p, "/") {
		n++
	}
	u.t.SegCount = n
}

func (u *URL) recountParams() {
	q := u.partString(part.Query)
	if q == "" || q == "?" {
		u.t.ParamCount = 0
		return
	}
	u.t.ParamCount = strings.Count(q[1:], "&") + 1
}

// recomputeDecodedLens validates the percent-encoding of every part and
// records its decoded length. It panics (via Try) with the first
// validation failure, which Parse's deferred Recover turns back into an
// error — a malformed triplet or stray '%' anywhere in the input must
// fail Parse, not be silently measured as its raw length.
func (u *URL) recomputeDecodedLens() {
	for id := part.ID(0); id < part.Count; id++ {
		s := u.partString(id)
		n, err := pct.Validate(s, pct.Options{AllowNull: true})
		Try(err)
		u.t.DecodedLen[id] = n
	}
}

func (u *URL) partString(id part.ID) string {
	sp := u.t.Get(id)
	return string(u.buf[sp.Offset:sp.End()])
}
