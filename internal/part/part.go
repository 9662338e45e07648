// Package part defines the offset/length table that the URL engine keeps
// over its character buffer, indexed by eight part ids (the seven
// grammatical components of a URI-reference, with userinfo split into
// user and password), plus the per-URL scalar state (host type, scheme id,
// port number, segment/param counts, decoded-size tally) that rides beside
// it.
//
// The seven-part, offset-table shape follows tg123-phabrik's naming.Uri
// and common.Uri structs, generalized from a read-only value type into a
// mutable table that an owning buffer can resize in place.
package part

// ID identifies one of the eight parts of a URI-reference in the table.
type ID int

const (
	Scheme ID = iota
	User
	Pass
	Host
	Port
	Path
	Query
	Fragment

	Count // number of part ids; also used as the table's terminal sentinel
)

func (id ID) String() string {
	switch id {
	case Scheme:
		return "scheme"
	case User:
		return "user"
	case Pass:
		return "pass"
	case Host:
		return "host"
	case Port:
		return "port"
	case Path:
		return "path"
	case Query:
		return "query"
	case Fragment:
		return "fragment"
	default:
		return "invalid"
	}
}

// HostType identifies the syntactic form of a URL's host sub-component.
type HostType int

const (
	HostNone HostType = iota
	HostIPv4
	HostIPv6
	HostIPvFuture
	HostName
)

// Span is a byte offset and length into the owning buffer.
type Span struct {
	Offset int
	Len    int
}

// End returns the offset one past the end of the span.
func (s Span) End() int { return s.Offset + s.Len }

// Table is the offset/length table over a URL's character buffer, plus the
// scalar state that rides beside it.
type Table struct {
	Spans [Count]Span

	// DecodedLen[id] is the number of bytes part id would occupy if every
	// percent-encoded triplet in it were expanded to a single raw byte.
	DecodedLen [Count]int

	HostType   HostType
	IPAddress  [16]byte // valid when HostType is HostIPv4 or HostIPv6
	Port       uint16
	HasPort    bool // true if Port's textual form parsed to a valid number
	SegCount   int  // number of path segments
	ParamCount int  // number of query parameters
}

// Get returns the span recorded for part id.
func (t *Table) Get(id ID) Span { return t.Spans[id] }

// Set records the span for part id.
func (t *Table) Set(id ID, sp Span) { t.Spans[id] = sp }

// HasAuthority reports whether the authority component (user/pass/host/
// port) is present, per the invariant that user always starts with "//"
// whenever any authority sub-part is non-empty.
func (t *Table) HasAuthority() bool {
	return t.Spans[User].Len > 0
}

// Shift adds delta to the offset of every part from first (inclusive) to
// the end of the table, used after a resize has moved the buffer's tail.
func (t *Table) Shift(first ID, delta int) {
	for id := first; id < Count; id++ {
		t.Spans[id].Offset += delta
	}
}
