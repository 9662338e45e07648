package uriref

import (
	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// SetPath sets the path to text (plain, percent-decoded text), encoding
// it on write under the path allowed set. If the URL has no authority and
// text's first segment would otherwise be mistaken for a scheme, or an
// authority-bearing URL's new path would not start with '/', the
// necessary guard prefix is applied automatically.
func (u *URL) SetPath(text string) *URL {
	Try(u.setPath(pct.EncodeToString(text, chars.Path, pct.Options{})))
	return u
}

// SetEncodedPath is like SetPath but text is taken as already
// percent-encoded, canonical path text.
func (u *URL) SetEncodedPath(text string) *URL {
	if _, err := pct.Validate(text, pct.Options{}); err != nil {
		Try(err)
	}
	Try(u.setPath(text))
	return u
}

func (u *URL) setPath(encoded string) error {
	if u.HasAuthority() && encoded != "" && encoded[0] != '/' {
		encoded = "/" + encoded
	}
	w, err := u.resizeOne(part.Path, len(encoded))
	if err != nil {
		return err
	}
	copy(w, encoded)
	u.recountSegments()
	u.t.DecodedLen[part.Path], _ = pct.Validate(encoded, pct.Options{AllowNull: true})
	if !u.HasAuthority() && !u.HasScheme() && firstSegmentHasColon(encoded) && encoded != "" && encoded[0] != '/' {
		return u.prependPathLiteral("./")
	}
	return nil
}
