package segview

import (
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
	"github.com/vinniefalco/uri/pct"
	"github.com/vinniefalco/uri/uriref"
)

// Param is one "key=value" query parameter. HasValue distinguishes a
// bare key ("k") from a key with an empty value ("k=").
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// paramChars is chars.Query minus '&' and '=', which the generic query
// grammar allows but a key=value&key=value codec must reserve as its own
// delimiters.
func paramChars(c byte) bool {
	return c != '&' && c != '=' && chars.Query(c)
}

func (p Param) encode() string {
	k := pct.EncodeToString(p.Key, paramChars, pct.Options{})
	if !p.HasValue {
		return k
	}
	return k + "=" + pct.EncodeToString(p.Value, paramChars, pct.Options{})
}

// Params is a view over a URL's query, split into '&'-delimited
// key[=value] parameters.
type Params struct {
	u *uriref.URL
}

// NewParams returns a Params view over u.
func NewParams(u *uriref.URL) *Params { return &Params{u: u} }

// Len returns the number of parameters.
func (p *Params) Len() int { return p.u.ParamCount() }

// At returns the i'th parameter, percent-decoded.
func (p *Params) At(i int) Param {
	raw := p.split()[i]
	key, value, hasValue := splitKV(raw)
	dk, _ := pct.DecodeString(key, pct.Options{PlusToSpace: true})
	dv, _ := pct.DecodeString(value, pct.Options{PlusToSpace: true})
	return Param{Key: dk, Value: dv, HasValue: hasValue}
}

// All returns every parameter, percent-decoded, in order.
func (p *Params) All() []Param {
	n := p.Len()
	out := make([]Param, n)
	for i := 0; i < n; i++ {
		out[i] = p.At(i)
	}
	return out
}

// Clear removes every parameter, erasing the query entirely (spec
// section 4.6: an empty parameter sequence cannot be represented by a
// bare "?", so clearing removes the query delimiter too).
func (p *Params) Clear() {
	p.u.RemoveQuery()
}

// Assign replaces every parameter with values.
func (p *Params) Assign(values []Param) { p.editRange(0, p.Len(), values) }

// Insert inserts values before position pos.
func (p *Params) Insert(pos int, values ...Param) { p.editRange(pos, pos, values) }

// Erase removes the parameters in [first, last).
func (p *Params) Erase(first, last int) { p.editRange(first, last, nil) }

// Replace replaces the parameters in [first, last) with values.
func (p *Params) Replace(first, last int, values ...Param) { p.editRange(first, last, values) }

// PushBack appends a parameter.
func (p *Params) PushBack(value Param) { n := p.Len(); p.editRange(n, n, []Param{value}) }

// PopBack removes the last parameter.
func (p *Params) PopBack() { n := p.Len(); p.editRange(n-1, n, nil) }

func (p *Params) split() []string {
	q := p.u.EncodedQuery()
	if q == "" {
		return nil
	}
	return strings.Split(q, "&")
}

func splitKV(raw string) (key, value string, hasValue bool) {
	if i := strings.IndexByte(raw, '='); i >= 0 {
		return raw[:i], raw[i+1:], true
	}
	return raw, "", false
}

// editRange is params' single lowering primitive, mirroring Segments's.
func (p *Params) editRange(first, last int, values []Param) {
	raw := p.split()
	encNew := make([]string, len(values))
	for i, v := range values {
		encNew[i] = v.encode()
	}
	merged := make([]string, 0, len(raw)-(last-first)+len(encNew))
	merged = append(merged, raw[:first]...)
	merged = append(merged, encNew...)
	merged = append(merged, raw[last:]...)

	if len(merged) == 0 {
		p.u.RemoveQuery()
		return
	}
	p.u.SetEncodedQuery(strings.Join(merged, "&"))
}
