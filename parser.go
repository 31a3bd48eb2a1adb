// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"errors"
	"fmt"
	"io"
)

// ErrNotContainer is reported by New when the parent is not an object or an
// array.
var ErrNotContainer = errors.New("parent is not an object or array")

// Parse parses text as a single JSON document and returns the root of its
// tree. The document may be an object, an array or a bare value. In case of
// a grammar violation, the returned error has type [*SyntaxError].
func Parse(text []byte) (*Node, error) {
	root := new(Node)
	if err := parseInto(text, root); err != nil {
		release(root)
		return nil, err
	}
	return root, nil
}

// ParseString parses s as a single JSON document (see Parse).
func ParseString(s string) (*Node, error) { return Parse([]byte(s)) }

// ParseReader reads all of r and parses it as a single JSON document (see
// Parse). An error reading r is returned with no location.
func ParseReader(r io.Reader) (*Node, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(text)
}

// MustParse parses s as a single JSON document, and panics if it is not
// valid. It is intended for documents embedded in programs and tests.
func MustParse(s string) *Node {
	n, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("jnode: invalid document: %v", err))
	}
	return n
}

// New parses text and returns the resulting node.
//
// If parent == nil, text is parsed as a complete document, as with Parse.
// Otherwise parent must be an object or array, and text is parsed as a
// fragment that is appended as its last child: a member `"name": value` for
// an object, or a bare value for an array. A fragment may consist of several
// comma-separated members or elements, which are all appended in order; New
// returns the first of them.
//
// If text is not valid, New reports an error and parent is not modified.
func New(parent *Node, text string) (*Node, error) {
	if parent == nil {
		return ParseString(text)
	}
	if parent.typ != Object && parent.typ != Array {
		return nil, ErrNotContainer
	}

	node := &Node{parent: parent}
	last := parent.lastChild()
	if last == nil {
		parent.child = node
	} else {
		last.next = node
	}
	if err := parseInto([]byte(text), node); err != nil {
		if last == nil {
			parent.child = nil
		} else {
			last.next = nil
		}
		release(node)
		return nil, err
	}
	return node, nil
}

// parseInto parses text into the tree rooted at node, which must be freshly
// allocated and Undefined. The parse succeeds when the input is consumed
// with the cursor back at the level where it started.
func parseInto(text []byte, node *Node) (err error) {
	p := &parser{text: text, sc: NewScanner(text)}
	defer p.recoverParseError(&err)
	p.parse(node)
	return nil
}

type parser struct {
	text []byte
	sc   *Scanner
}

func (p *parser) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		if err, ok := serr.(*SyntaxError); ok {
			*errp = err
			return
		}
		panic(serr)
	}
}

// parse drives the scanner over the input, maintaining node as the cursor.
// Each token either refines the cursor node, descends to a new child,
// advances to a new sibling, or ascends to the parent.
func (p *parser) parse(node *Node) {
	base := node.parent
	for {
		if err := p.sc.Next(); err != nil {
			var perr posError
			if errors.As(err, &perr) {
				p.syntaxError(perr.pos, perr.err, "%v", perr.err)
			}
			p.syntaxError(p.sc.Pos(), err, "%v", err)
		}
		tok := p.sc.Token()
		left := p.sc.Span().Pos
		empty := p.sc.Empty()

		switch tok {
		case LBrace, LSquare:
			if node.inObject() && !node.named {
				p.syntaxError(left, nil, "missing member name before %v", tok)
			} else if node.typ != Undefined {
				p.syntaxError(left, nil, "missing comma before %v", tok)
			} else if !empty {
				p.syntaxError(left, nil, "unexpected text before %v", tok)
			}
			node.typ = containerType(tok)
			node.child = &Node{parent: node}
			node = node.child

		case Colon:
			if !node.inObject() || node.named {
				p.syntaxError(left, nil, "unexpected %v", tok)
			}
			name, err := decodeName(p.sc.Text())
			if err != nil {
				p.syntaxError(left, err, "invalid member name: %v", err)
			}
			node.name, node.named = name, true

		case Comma:
			if node.parent == nil {
				p.syntaxError(left, nil, "unexpected %v", tok)
			} else if node.inObject() && !node.named {
				p.syntaxError(left, nil, "missing member name before %v", tok)
			}
			if node.typ == Undefined {
				if empty {
					p.syntaxError(left, nil, "missing value before %v", tok)
				}
				p.setValue(node, left)
			} else if !empty {
				p.syntaxError(left, nil, "unexpected text after value")
			}
			node.next = &Node{parent: node.parent}
			node = node.next

		case RBrace, RSquare:
			if node.parent == base || node.parent.typ != containerType(tok) {
				p.syntaxError(left, nil, "unexpected %v", tok)
			}
			if node.typ == Undefined {
				if empty {
					// Only the placeholder of an empty container may be left
					// without a value.
					if node.parent.child != node || node.named {
						p.syntaxError(left, nil, "missing value before %v", tok)
					}
				} else {
					if node.inObject() && !node.named {
						p.syntaxError(left, nil, "missing member name before %v", tok)
					}
					p.setValue(node, left)
				}
			} else if !empty {
				p.syntaxError(left, nil, "unexpected text after value")
			}
			node = node.parent
			if node.child.typ == Undefined {
				node.child = nil // empty container
			}

		case End:
			if !empty {
				if node.typ != Undefined {
					p.syntaxError(left, nil, "unexpected text after value")
				} else if node.inObject() && !node.named {
					p.syntaxError(left, nil, "missing member name")
				}
				p.setValue(node, left)
			}
			if node.typ == Undefined {
				p.syntaxError(left, nil, "unexpected %v", tok)
			} else if node.parent != base {
				p.syntaxError(left, nil, "unexpected %v", tok)
			}
			return

		default:
			panic(fmt.Sprintf("unknown token %v", tok))
		}
	}
}

// setValue classifies the content preceding the current token and stores it
// as the scalar value of node.
func (p *parser) setValue(node *Node, left int) {
	text := p.sc.Text()
	t := classify(text)
	if t == Undefined {
		p.syntaxError(left, nil, "invalid value %q", text)
	}
	v, err := decodeValue(t, text)
	if err != nil {
		p.syntaxError(left, err, "invalid string: %v", err)
	}
	node.typ, node.value = t, v
}

func (p *parser) syntaxError(pos int, err error, msg string, args ...any) {
	panic(&SyntaxError{
		LineCol: lineCol(p.text, pos),
		Offset:  pos,
		Message: fmt.Sprintf(msg, args...),
		err:     err,
	})
}

func containerType(tok Token) Type {
	switch tok {
	case LBrace, RBrace:
		return Object
	case LSquare, RSquare:
		return Array
	default:
		return Undefined
	}
}

// inObject reports whether n is positioned as a member of an object.
func (n *Node) inObject() bool { return n.parent != nil && n.parent.typ == Object }

// lastChild returns the last child of n, or nil if n has no children.
func (n *Node) lastChild() *Node {
	c := n.child
	if c == nil {
		return nil
	}
	for c.next != nil {
		c = c.next
	}
	return c
}

// release tears down the subtree rooted at n together with the siblings that
// follow it, severing every link so that nothing in the discarded nodes
// remains reachable through them. The walk is post-order and iterative.
func release(n *Node) {
	if n == nil {
		return
	}
	stop := n.parent
	for n != stop {
		next := n.child
		n.child = nil
		if next == nil {
			if n.next != nil {
				next = n.next
			} else {
				next = n.parent
			}
			*n = Node{}
		}
		n = next
	}
}
