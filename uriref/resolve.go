package uriref

import "strings"

// ResolveReference resolves ref against u (the base), per RFC 3986
// section 5.2.2, and returns the resulting absolute URL. u must have a
// scheme; if it does not, resolution fails with CodeNotABase.
func (u *URL) ResolveReference(ref *URL) (result *URL, err error) {
	defer Recover(&err)
	if !u.HasScheme() {
		return nil, newError(CodeNotABase, "base URL has no scheme")
	}

	out := New()

	switch {
	case ref.HasScheme():
		out.SetScheme(ref.EncodedScheme())
		copyAuthority(out, ref)
		out.SetEncodedPath(ref.EncodedPath())
		out.normalizePath()
		copyQuery(out, ref)
		copyFragment(out, ref)

	case ref.HasAuthority():
		out.SetScheme(u.EncodedScheme())
		copyAuthority(out, ref)
		out.SetEncodedPath(ref.EncodedPath())
		out.normalizePath()
		copyQuery(out, ref)
		copyFragment(out, ref)

	case ref.EncodedPath() == "":
		out.SetScheme(u.EncodedScheme())
		copyAuthority(out, u)
		out.SetEncodedPath(u.EncodedPath())
		if ref.HasQuery() {
			copyQuery(out, ref)
		} else {
			copyQuery(out, u)
		}
		out.normalizePath()
		copyFragment(out, ref)

	case strings.HasPrefix(ref.EncodedPath(), "/"):
		out.SetScheme(u.EncodedScheme())
		copyAuthority(out, u)
		out.SetEncodedPath(ref.EncodedPath())
		out.normalizePath()
		copyQuery(out, ref)
		copyFragment(out, ref)

	default:
		out.SetScheme(u.EncodedScheme())
		copyAuthority(out, u)
		out.SetEncodedPath(mergePaths(u, ref))
		out.normalizePath()
		copyQuery(out, ref)
		copyFragment(out, ref)
	}

	return out, nil
}

// mergePaths implements RFC 3986 section 5.3's merge step: drop the last
// segment of the base path (if any) and append ref's path.
func mergePaths(base, ref *URL) string {
	bp := base.EncodedPath()
	rp := ref.EncodedPath()
	if base.HasAuthority() && bp == "" {
		return "/" + rp
	}
	i := strings.LastIndexByte(bp, '/')
	if i < 0 {
		return rp
	}
	return bp[:i+1] + rp
}

func copyAuthority(out, src *URL) {
	if !src.HasAuthority() {
		return
	}
	if src.HasUserInfo() {
		out.SetEncodedUser(src.EncodedUser())
		if src.HasPassword() {
			out.SetEncodedPassword(src.EncodedPassword())
		}
	} else {
		Try(out.ensureAuthority())
	}
	out.SetEncodedHost(src.EncodedHost())
	if src.HasPort() {
		out.SetPortText(src.PortText())
	}
}

func copyQuery(out, src *URL) {
	if src.HasQuery() {
		out.SetEncodedQuery(src.EncodedQuery())
	}
}

func copyFragment(out, src *URL) {
	if src.HasFragment() {
		out.SetEncodedFragment(src.EncodedFragment())
	}
}
