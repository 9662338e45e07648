package uriref

import (
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/part"
)

// SetScheme sets the scheme to name, which must be a valid scheme name
// with no trailing ':'. It panics (the throwing form) if name is not a
// valid scheme name or the buffer would exceed MaxBufferSize.
func (u *URL) SetScheme(name string) *URL {
	Try(u.setScheme(name))
	return u
}

func (u *URL) setScheme(name string) error {
	if len(name) == 0 || !chars.IsAlpha(name[0]) {
		return newError(CodeSyntax, "scheme %q must start with a letter", name)
	}
	for i := 1; i < len(name); i++ {
		if !chars.Scheme(name[i]) {
			return newError(CodeSyntax, "scheme %q contains invalid character %q", name, name[i])
		}
	}
	w, err := u.resizeOne(part.Scheme, len(name)+1)
	if err != nil {
		return err
	}
	copy(w, name)
	w[len(name)] = ':'
	u.t.DecodedLen[part.Scheme] = len(w)
	return nil
}

// RemoveScheme removes the scheme, applying the "./" guard that prevents
// a rootless path whose first segment contains ':' from being
// reinterpreted as a scheme once the real scheme is gone.
func (u *URL) RemoveScheme() *URL {
	Try(u.removeScheme())
	return u
}

func (u *URL) removeScheme() error {
	needsGuard := !u.HasAuthority() && !u.IsPathAbsolute() && firstSegmentHasColon(u.EncodedPath())
	if _, err := u.shrinkToZero(part.Scheme); err != nil {
		return err
	}
	u.t.DecodedLen[part.Scheme] = 0
	if needsGuard {
		return u.prependPathLiteral("./")
	}
	return nil
}

func firstSegmentHasColon(path string) bool {
	seg := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		seg = path[:i]
	}
	return strings.IndexByte(seg, ':') >= 0
}

// shrinkToZero resizes part id to zero length; it is used by the removers
// for every part, which all collapse to nothing.
func (u *URL) shrinkToZero(id part.ID) ([]byte, error) {
	return u.resizeOne(id, 0)
}

// prependPathLiteral inserts prefix (already-encoded) at the start of the
// path part.
func (u *URL) prependPathLiteral(prefix string) error {
	old := u.partString(part.Path)
	w, err := u.resizeOne(part.Path, len(prefix)+len(old))
	if err != nil {
		return err
	}
	copy(w, prefix)
	copy(w[len(prefix):], old)
	u.t.DecodedLen[part.Path] += len(prefix)
	return nil
}
