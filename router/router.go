// Package router implements a path-template router: a trie of literal,
// parameter, and modified (optional/plus/star) segment templates matched
// against a concrete request path by a recursive NFA evaluator, per
// original_source/include/boost/url/router.hpp.
package router

import (
	"strings"

	"github.com/vinniefalco/uri/grammar"
	"github.com/vinniefalco/uri/uriref"
)

// ErrMismatch is returned by Route when no registered template matches
// the request path.
var ErrMismatch = &uriref.Error{Code: uriref.CodeMismatch, Msg: "router: mismatch"}

// DefaultMaxDepth bounds the matcher's recursion depth against untrusted
// or pathologically nested templates.
const DefaultMaxDepth = 64

// Options configures a Router.
type Options struct {
	// MaxDepth is the maximum recursion depth Route will descend before
	// failing closed. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Binding is one matched parameter: the template id it was captured
// under, and its raw (still percent-encoded) matched text. A plus/star
// binding's value is the '/'-joined text of every segment it consumed.
type Binding struct {
	ID    string
	Value string
}

// MatchResult is the outcome of a successful Route call.
type MatchResult struct {
	Resource any
	Bindings []Binding
}

type node struct {
	seg      grammar.Segment
	children []*node
	resource any
	has      bool
}

// Router is a trie of path templates, each associated with an opaque
// resource value.
type Router struct {
	root *node
	opts Options
}

// New returns an empty Router.
func New(opts Options) *Router {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Router{root: &node{}, opts: opts}
}

// Insert registers template (a "/"-delimited path template) for
// resource, overwriting any resource already registered at that exact
// template.
//
// "." segments are skipped; ".." pops to the parent template node,
// discarding the current node first if it is a childless, resourceless
// leaf. A ".." with no parent to pop to (i.e. past the template root)
// decrements an excursion counter; nothing increments it, so any such
// ".." leaves the counter non-zero at the end of insertion and Insert
// panics with CodeInvalidArgument.
func (r *Router) Insert(template string, resource any) error {
	toks := tokenize(template)
	cur := r.root
	stack := []*node{}
	level := 0

	for _, tok := range toks {
		switch tok {
		case ".":
			continue
		case "..":
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !cur.has && len(cur.children) == 0 {
					parent.removeChild(cur)
				}
				cur = parent
			} else {
				level--
			}
		default:
			seg, err := grammar.ParseSegment(tok)
			if err != nil {
				return err
			}
			stack = append(stack, cur)
			cur = cur.findOrCreateChild(seg)
		}
	}
	if level != 0 {
		panic(&uriref.Error{
			Code: uriref.CodeInvalidArgument,
			Msg:  "router: template \"" + template + "\" navigates above its own root",
		})
	}
	cur.resource = resource
	cur.has = true
	return nil
}

func tokenize(template string) []string {
	template = strings.TrimPrefix(template, "/")
	if template == "" {
		return nil
	}
	return strings.Split(template, "/")
}

func (n *node) removeChild(target *node) {
	for i, c := range n.children {
		if c == target {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// findOrCreateChild finds an existing child whose template is Equal to
// seg, or creates one, keeping children sorted by Segment.Rank so that
// sibling iteration order matches the tie-break rule: literal < unique <
// optional < plus < star.
func (n *node) findOrCreateChild(seg grammar.Segment) *node {
	for _, c := range n.children {
		if c.seg.Equal(seg) {
			return c
		}
	}
	child := &node{seg: seg}
	i := 0
	for i < len(n.children) && n.children[i].seg.Rank() <= seg.Rank() {
		i++
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

// Route matches path (a "/"-delimited concrete request path, still
// percent-encoded) against the trie and returns the first resource
// reached, tie-broken by sibling rank, plus the ordered parameter
// bindings captured along the way. It fails with ErrMismatch if nothing
// matches.
func (r *Router) Route(path string) (MatchResult, error) {
	segs := tokenize(path)
	n, bindings, ok := tryMatch(r.root, segs, 0, r.opts.MaxDepth)
	if !ok {
		return MatchResult{}, ErrMismatch
	}
	return MatchResult{Resource: n.resource, Bindings: bindings}, nil
}

func tryMatch(n *node, segs []string, depth, maxDepth int) (*node, []Binding, bool) {
	if depth > maxDepth {
		return nil, nil, false
	}

	if len(segs) == 0 {
		if n.has {
			return n, nil, true
		}
		for _, c := range n.children {
			if c.seg.Modifier != grammar.ModOptional && c.seg.Modifier != grammar.ModStar {
				continue
			}
			if m, b, ok := tryMatch(c, segs, depth+1, maxDepth); ok {
				if c.seg.Modifier == grammar.ModStar && c.seg.IsParam {
					b = append([]Binding{{ID: c.seg.ID, Value: ""}}, b...)
				}
				return m, b, true
			}
		}
		return nil, nil, false
	}

	s := segs[0]
	rest := segs[1:]
	for _, c := range n.children {
		switch c.seg.Modifier {
		case grammar.ModNone:
			if !segmentAccepts(c.seg, s) {
				continue
			}
			if m, b, ok := tryMatch(c, rest, depth+1, maxDepth); ok {
				return m, prepend(c.seg, s, b), true
			}
		case grammar.ModOptional:
			if segmentAccepts(c.seg, s) {
				if m, b, ok := tryMatch(c, rest, depth+1, maxDepth); ok {
					return m, prepend(c.seg, s, b), true
				}
			}
			if m, b, ok := tryMatch(c, segs, depth+1, maxDepth); ok {
				return m, b, true
			}
		case grammar.ModPlus, grammar.ModStar:
			minTake := 1
			if c.seg.Modifier == grammar.ModStar {
				minTake = 0
			}
			for take := len(segs); take >= minTake; take-- {
				if m, b, ok := tryMatch(c, segs[take:], depth+1, maxDepth); ok {
					value := strings.Join(segs[:take], "/")
					if c.seg.IsParam {
						b = append([]Binding{{ID: c.seg.ID, Value: value}}, b...)
					}
					return m, b, true
				}
			}
		}
	}
	return nil, nil, false
}

func segmentAccepts(seg grammar.Segment, s string) bool {
	if seg.IsParam {
		return true
	}
	return seg.MatchLiteral(s)
}

func prepend(seg grammar.Segment, value string, rest []Binding) []Binding {
	if !seg.IsParam {
		return rest
	}
	return append([]Binding{{ID: seg.ID, Value: value}}, rest...)
}
