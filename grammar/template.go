package grammar

import (
	"fmt"
	"strings"

	"github.com/vinniefalco/uri/internal/chars"
)

// Modifier is the optional repetition marker on a parameter segment
// template.
type Modifier byte

const (
	// ModNone marks a single-parameter segment with no modifier.
	ModNone Modifier = 0
	// ModOptional ('?') matches the parameter zero or one times.
	ModOptional Modifier = '?'
	// ModPlus ('+') matches the parameter one or more times.
	ModPlus Modifier = '+'
	// ModStar ('*') matches the parameter zero or more times.
	ModStar Modifier = '*'
)

// rank gives the tie-break ordering used by the router among sibling
// children: literal < unique (no modifier) < optional < plus < star.
func (m Modifier) rank(literal bool) int {
	if literal {
		return 0
	}
	switch m {
	case ModNone:
		return 1
	case ModOptional:
		return 2
	case ModPlus:
		return 3
	case ModStar:
		return 4
	default:
		return 5
	}
}

// Segment is one parsed path-template segment: either a literal string or
// a replacement field "{id modifier?}".
type Segment struct {
	Literal  string // valid iff !IsParam
	IsParam  bool
	ID       string // parameter name; may be empty ("{}" / "{*}" etc.)
	Modifier Modifier
}

// Rank returns this segment's position in the router's sibling ordering:
// literal < unique < optional < plus < star.
func (s Segment) Rank() int { return s.Modifier.rank(!s.IsParam) }

// Equal reports whether two templates are the same for trie purposes: two
// literals are equal iff their strings match; two parameters are equal iff
// their modifiers match (parameter names need not match, matching
// router.hpp's seg equality, which compares modifiers not identifiers).
func (s Segment) Equal(o Segment) bool {
	if s.IsParam != o.IsParam {
		return false
	}
	if !s.IsParam {
		return s.Literal == o.Literal
	}
	return s.Modifier == o.Modifier
}

func (s Segment) String() string {
	if !s.IsParam {
		return s.Literal
	}
	if s.Modifier == ModNone {
		return "{" + s.ID + "}"
	}
	return fmt.Sprintf("{%s%c}", s.ID, s.Modifier)
}

// ParseSegment parses one "/"-delimited path-template component: either a
// literal (any path-segment character, percent-encoding included) or a
// replacement field "{id modifier?}" where id is an optional identifier
// and modifier is one of "? * +".
func ParseSegment(tok string) (Segment, error) {
	if tok == "" {
		return Segment{Literal: ""}, nil
	}
	if tok[0] != '{' {
		if tok[len(tok)-1] == '}' {
			return Segment{}, fmt.Errorf("grammar: unbalanced %q", tok)
		}
		for i := 0; i < len(tok); i++ {
			if !chars.Segment(tok[i]) && !chars.IsPercentEncodedAt(tok, i) {
				return Segment{}, fmt.Errorf("grammar: invalid literal segment %q", tok)
			}
		}
		return Segment{Literal: tok}, nil
	}
	if tok[len(tok)-1] != '}' {
		return Segment{}, fmt.Errorf("grammar: unbalanced %q", tok)
	}
	body := tok[1 : len(tok)-1]

	mod := ModNone
	id := body
	if n := len(body); n > 0 {
		switch body[n-1] {
		case '?', '+', '*':
			mod = Modifier(body[n-1])
			id = body[:n-1]
		}
	}
	for i := 0; i < len(id); i++ {
		if !chars.IsAlpha(id[i]) && !chars.IsDigit(id[i]) && id[i] != '_' {
			return Segment{}, fmt.Errorf("grammar: invalid parameter id %q", id)
		}
	}
	return Segment{IsParam: true, ID: id, Modifier: mod}, nil
}

// ParseTemplate tokenizes a "/"-delimited path template into Segments.
// A leading "/" is ignored; an empty template yields a single empty
// literal segment ("").
func ParseTemplate(path string) ([]Segment, error) {
	path = strings.TrimPrefix(path, "/")
	toks := strings.Split(path, "/")
	segs := make([]Segment, 0, len(toks))
	for _, tok := range toks {
		seg, err := ParseSegment(tok)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// MatchLiteral reports whether a literal template segment matches a
// request path segment s. Matching is over the encoded (raw) form, as the
// router operates on percent-encoded request segments.
func (s Segment) MatchLiteral(req string) bool {
	return !s.IsParam && s.Literal == req
}
