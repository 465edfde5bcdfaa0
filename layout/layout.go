// Package layout turns semantic expression trees into visual box trees. All
// functions are pure: one immutable input tree in, a fresh box tree out, no
// shared state between calls.
package layout

import (
	"errors"
	"fmt"

	"mbx/box"
	"mbx/font"
	"mbx/mexpr"
)

// ErrMalformedNode reports a caller contract violation: a node does not have
// the shape its kind promises. This is an upstream construction bug and is
// never silently recovered.
var ErrMalformedNode = errors.New("malformed expression node")

// Options carries the font table and current style through recursive layout.
type Options struct {
	Font  *font.Metrics
	Style box.Style
}

// cramped returns options with the cramped style variant.
func (o Options) cramped() Options {
	o.Style = o.Style.Cramp()
	return o
}

// symbols that classify as large operators or binary operators; everything
// else is ordinary.
var symClasses = map[rune]string{
	'∑': "mop",
	'∏': "mop",
	'+': "mbin",
}

func classifySym(c rune) string {
	if cls, ok := symClasses[c]; ok {
		return cls
	}
	return "mord"
}

// Expression lays out an arbitrary expression subtree.
func Expression(n *mexpr.Node, opts Options) (*box.Box, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformedNode)
	}
	switch n.Kind {
	case mexpr.KindSym:
		return symbolBox(n.Char, opts)
	case mexpr.KindRow:
		children := make([]*box.Box, 0, len(n.Children))
		for _, c := range n.Children {
			b, err := Expression(c, opts)
			if err != nil {
				return nil, err
			}
			children = append(children, b)
		}
		return box.Span([]string{"mrow"}, children...), nil
	case mexpr.KindStyled:
		inner, err := Expression(n.Inner, opts)
		if err != nil {
			return nil, err
		}
		wrap := box.Span([]string{"styled"}, inner)
		wrap.Style = n.Style.String()
		return wrap, nil
	case mexpr.KindAccent:
		return Accent(n, opts)
	case mexpr.KindScripts:
		return Scripts(n, opts)
	default:
		return nil, fmt.Errorf("%w: unknown node kind %d", ErrMalformedNode, n.Kind)
	}
}

func symbolBox(c rune, opts Options) (*box.Box, error) {
	g, err := opts.Font.Glyph(c)
	if err != nil {
		return nil, err
	}
	m := opts.Style.Multiplier()
	return box.Symbol(c, g.Width*m, g.Height*m, g.Depth*m, g.Italic*m, g.Skew*m, classifySym(c)), nil
}

// PeelCharacter descends through styling-only wrappers (and single-element
// rows) to the innermost symbol. Reports false when the node is not a single
// visual character.
func PeelCharacter(n *mexpr.Node) (*mexpr.Node, bool) {
	switch n.Kind {
	case mexpr.KindSym:
		return n, true
	case mexpr.KindStyled:
		return PeelCharacter(n.Inner)
	case mexpr.KindRow:
		if len(n.Children) == 1 {
			return PeelCharacter(n.Children[0])
		}
		return nil, false
	default:
		return nil, false
	}
}

func primaryClass(b *box.Box) string {
	if len(b.Classes) > 0 {
		return b.Classes[0]
	}
	return "mord"
}
