// Package uriref implements the mutable URL engine: a single contiguous
// character buffer representing a complete URI-reference, with a part
// table (internal/part) that lets every grammatical component be read,
// replaced, inserted into, erased, or normalized in place while
// maintaining RFC 3986 validity, percent-encoding invariants, and a
// decoded-size tally per component.
//
// The buffer-plus-offset-table shape is grounded on bford-cofo's
// composable-encoding packages (cbs/cbe: a value is a contiguous byte run
// with a small header describing its extent) generalized from one opaque
// blob to eight named, independently resizable spans; the resize/shrink
// primitives and their alias-safety protocol follow
// original_source/include/boost/url/impl/segments_ref.hpp's
// edit_segments, which lowers every mutating operation onto one resize
// call.
package uriref

import (
	"github.com/vinniefalco/uri/internal/part"
)

// MaxBufferSize is the largest buffer this engine will grow to. Setters
// that would exceed it fail with CodeURLTooLarge instead of overflowing.
const MaxBufferSize = 1<<31 - 1

// URL is a mutable, owned URI-reference: a single contiguous byte buffer
// plus a part table describing the byte range of each of its eight parts
// (the seven grammatical components, with userinfo split into user and
// password).
//
// A URL owns its buffer exclusively. It is not safe for concurrent use by
// multiple goroutines without external synchronization, though distinct
// URL values, or a single URL accessed only for reads, may be shared
// freely. The zero value is a valid empty URI-reference.
type URL struct {
	buf []byte
	t   part.Table
}

// New returns an empty URL (the empty URI-reference "").
func New() *URL {
	u := &URL{}
	u.terminate()
	return u
}

// String returns the URL's exact serialization.
func (u *URL) String() string {
	return string(u.buf)
}

// Len returns the length of the URL's serialization in bytes.
func (u *URL) Len() int { return len(u.buf) }

// Clone returns a deep copy of u; the copy's buffer does not alias u's.
func (u *URL) Clone() *URL {
	c := &URL{t: u.t}
	c.buf = make([]byte, len(u.buf), len(u.buf)+1)
	copy(c.buf, u.buf)
	c.terminate()
	return c
}

func growCap(want int) int {
	c := 16
	for c < want {
		c *= 2
	}
	return c
}

// terminate ensures the underlying array has room for, and carries, a NUL
// byte immediately past len(u.buf), for interoperability with C-string
// consumers.
func (u *URL) terminate() {
	if cap(u.buf) <= len(u.buf) {
		nb := make([]byte, len(u.buf), growCap(len(u.buf)+1))
		copy(nb, u.buf)
		u.buf = nb
	}
	u.buf[:len(u.buf)+1][len(u.buf)] = 0
}

// splice removes oldLen bytes at offset and replaces them with newLen
// (uninitialized) bytes, moving the tail of the buffer and reallocating
// if necessary. It returns the spliced-in range of the (possibly new)
// buffer for the caller to write into.
func (u *URL) splice(offset, oldLen, newLen int) ([]byte, error) {
	delta := newLen - oldLen
	if delta == 0 {
		return u.buf[offset : offset+newLen], nil
	}
	oldTotal := len(u.buf)
	newTotal := oldTotal + delta
	if newTotal < 0 || newTotal > MaxBufferSize {
		return nil, newError(CodeURLTooLarge, "buffer would grow to %d bytes", newTotal)
	}
	if delta > 0 {
		if cap(u.buf) < newTotal+1 {
			nb := make([]byte, newTotal, growCap(newTotal+1))
			copy(nb, u.buf[:offset])
			copy(nb[offset+newLen:], u.buf[offset+oldLen:oldTotal])
			u.buf = nb
		} else {
			u.buf = u.buf[:newTotal]
			copy(u.buf[offset+newLen:], u.buf[offset+oldLen:oldTotal])
		}
	} else {
		copy(u.buf[offset+newLen:], u.buf[offset+oldLen:oldTotal])
		u.buf = u.buf[:newTotal]
	}
	u.terminate()
	return u.buf[offset : offset+newLen], nil
}

// resize makes the byte range covered by parts [first, last) exactly
// newLen bytes long, moving the buffer's tail and reallocating if needed,
// and collapsing any intermediate parts (first < id < last) to zero
// length at the new boundary. It returns a slice of the (possibly
// reallocated) buffer at which the caller must write the new content,
// and updates every part's offset accordingly.
//
// This is the sole primitive every public mutator is built from.
func (u *URL) resize(first, last part.ID, newLen int) ([]byte, error) {
	firstSpan := u.t.Get(first)
	lastOffset := len(u.buf)
	if last < part.Count {
		lastOffset = u.t.Get(last).Offset
	}
	oldLen := lastOffset - firstSpan.Offset
	delta := newLen - oldLen

	write, err := u.splice(firstSpan.Offset, oldLen, newLen)
	if err != nil {
		return nil, err
	}

	u.t.Set(first, part.Span{Offset: firstSpan.Offset, Len: newLen})
	boundary := firstSpan.Offset + newLen
	for id := first + 1; id < last; id++ {
		u.t.Set(id, part.Span{Offset: boundary, Len: 0})
	}
	if delta != 0 {
		u.t.Shift(last, delta)
	}
	return write, nil
}

// resizeOne is the single-part specialization of resize.
func (u *URL) resizeOne(id part.ID, newLen int) ([]byte, error) {
	return u.resize(id, id+1, newLen)
}

// shrink is resize for callers that know newLen <= the range's current
// length. It runs the same checks as resize and returns no error: since a
// non-growing resize cannot fail, an error here panics.
func (u *URL) shrink(first, last part.ID, newLen int) []byte {
	w, err := u.resize(first, last, newLen)
	if err != nil {
		// shrink never grows the buffer, so splice cannot report
		// url_too_large; a failure here means a caller broke the
		// non-growing contract.
		panic(err)
	}
	return w
}
