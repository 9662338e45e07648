package uriref

import (
	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/internal/part"
	"github.com/vinniefalco/uri/pct"
)

// SetQuery sets the query to text (plain text), encoding it on write
// under the query allowed set.
func (u *URL) SetQuery(text string) *URL {
	Try(u.setQuery(pct.EncodeToString(text, chars.Query, pct.Options{})))
	return u
}

// SetEncodedQuery is like SetQuery but text is taken as already
// percent-encoded, canonical query text (no leading '?').
func (u *URL) SetEncodedQuery(text string) *URL {
	if _, err := pct.Validate(text, pct.Options{}); err != nil {
		Try(err)
	}
	Try(u.setQuery(text))
	return u
}

func (u *URL) setQuery(encoded string) error {
	// An empty query can only be represented by the query's absence: a
	// bare "?" with zero parameters would violate the invariant that the
	// query part is present iff the parameter count is nonzero.
	if encoded == "" {
		return u.removeQuery()
	}
	w, err := u.resizeOne(part.Query, 1+len(encoded))
	if err != nil {
		return err
	}
	w[0] = '?'
	copy(w[1:], encoded)
	u.recountParams()
	u.t.DecodedLen[part.Query], _ = pct.Validate(string(w), pct.Options{AllowNull: true})
	return nil
}

// RemoveQuery removes the query, including its leading '?'.
func (u *URL) RemoveQuery() *URL {
	Try(u.removeQuery())
	return u
}

func (u *URL) removeQuery() error {
	_, err := u.shrinkToZero(part.Query)
	if err != nil {
		return err
	}
	u.t.ParamCount = 0
	u.t.DecodedLen[part.Query] = 0
	return nil
}
