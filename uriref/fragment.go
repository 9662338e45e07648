package uriref

import (
	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// SetFragment sets the fragment to text (plain text), encoding it on
// write under the fragment allowed set.
func (u *URL) SetFragment(text string) *URL {
	Try(u.setFragment(pct.EncodeToString(text, chars.Fragment, pct.Options{})))
	return u
}

// SetEncodedFragment is like SetFragment but text is taken as already
// percent-encoded, canonical fragment text (no leading '#').
func (u *URL) SetEncodedFragment(text string) *URL {
	if _, err := pct.Validate(text, pct.Options{}); err != nil {
		Try(err)
	}
	Try(u.setFragment(text))
	return u
}

func (u *URL) setFragment(encoded string) error {
	w, err := u.resizeOne(part.Fragment, 1+len(encoded))
	if err != nil {
		return err
	}
	w[0] = '#'
	copy(w[1:], encoded)
	u.t.DecodedLen[part.Fragment], _ = pct.Validate(string(w), pct.Options{AllowNull: true})
	return nil
}

// RemoveFragment removes the fragment, including its leading '#'.
func (u *URL) RemoveFragment() *URL {
	Try(func() error {
		_, err := u.shrinkToZero(part.Fragment)
		if err != nil {
			return err
		}
		u.t.DecodedLen[part.Fragment] = 0
		return nil
	}())
	return u
}
