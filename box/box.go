// Package box defines the visual box tree produced by layout and the generic
// compositors used to assemble it. A box records its extent around the
// baseline (Height above, Depth below), an advance Width, and optional
// rendering-only offsets that shift ink without changing the advance.
package box

import (
	"fmt"
	"strings"
)

// Kind discriminates box variants.
type Kind int

const (
	// KindSymbol is a single glyph.
	KindSymbol Kind = iota
	// KindSpan is a horizontal group of child boxes.
	KindSpan
	// KindKern is invisible horizontal or vertical spacing; may be negative.
	KindKern
	// KindVList is a baseline-aligned vertical stack.
	KindVList
	// KindSVG is a pre-rendered vector body (stretchy accents and the like).
	KindSVG
)

// Box is one node of the visual output tree.
type Box struct {
	Kind    Kind
	Classes []string

	Width  float64 // advance contributed to the parent, em
	Height float64 // extent above the baseline, em
	Depth  float64 // extent below the baseline, em
	Italic float64 // italic correction, em
	Skew   float64 // kern against the font skew character, em

	// Rendering-only offsets. Left shifts ink horizontally without changing
	// Width unless ZeroWidth is cleared; Top shifts ink down from the
	// position the parent assigned.
	Left float64
	Top  float64
	// ZeroWidth marks a box whose Width is excluded from parent sizing (the
	// box is visually centered or shifted via Left instead).
	ZeroWidth bool

	Char     rune   // KindSymbol
	SVGData  string // KindSVG: serialized svg element
	Style    string // paint-only inline CSS carried from styling wrappers
	Children []*Box // KindSpan, KindVList
}

// Symbol creates a glyph box.
func Symbol(char rune, width, height, depth, italic, skew float64, classes ...string) *Box {
	return &Box{
		Kind:    KindSymbol,
		Classes: classes,
		Char:    char,
		Width:   width,
		Height:  height,
		Depth:   depth,
		Italic:  italic,
		Skew:    skew,
	}
}

// Span groups children horizontally; extent is the union of child extents and
// width is the sum of contributing child widths.
func Span(classes []string, children ...*Box) *Box {
	s := &Box{Kind: KindSpan, Classes: classes, Children: children}
	for _, c := range children {
		if c.Height > s.Height {
			s.Height = c.Height
		}
		if c.Depth > s.Depth {
			s.Depth = c.Depth
		}
		if !c.ZeroWidth {
			s.Width += c.Width
		}
	}
	if n := len(children); n > 0 {
		s.Skew = children[0].Skew
		s.Italic = children[n-1].Italic
	}
	return s
}

// HKern creates horizontal spacing.
func HKern(size float64) *Box {
	return &Box{Kind: KindKern, Width: size}
}

// HasClass reports whether the box carries a class.
func (b *Box) HasClass(class string) bool {
	for _, c := range b.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Dump writes an indented description of the box tree, one box per line.
// Used by the boxes output format and in debug reports.
func (b *Box) Dump(sb *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	switch b.Kind {
	case KindSymbol:
		fmt.Fprintf(sb, "%ssymbol %q w=%.4f h=%.4f d=%.4f", pad, b.Char, b.Width, b.Height, b.Depth)
	case KindKern:
		fmt.Fprintf(sb, "%skern w=%.4f", pad, b.Width)
	case KindSVG:
		fmt.Fprintf(sb, "%ssvg w=%.4f h=%.4f", pad, b.Width, b.Height)
	case KindVList:
		fmt.Fprintf(sb, "%svlist w=%.4f h=%.4f d=%.4f", pad, b.Width, b.Height, b.Depth)
	default:
		fmt.Fprintf(sb, "%sspan w=%.4f h=%.4f d=%.4f", pad, b.Width, b.Height, b.Depth)
	}
	if len(b.Classes) > 0 {
		fmt.Fprintf(sb, " [%s]", strings.Join(b.Classes, " "))
	}
	if b.Left != 0 || b.Top != 0 {
		fmt.Fprintf(sb, " shift(%.4f,%.4f)", b.Left, b.Top)
	}
	sb.WriteByte('\n')
	for _, c := range b.Children {
		c.Dump(sb, indent+1)
	}
}

// String returns the dump of the whole tree.
func (b *Box) String() string {
	var sb strings.Builder
	b.Dump(&sb, 0)
	return sb.String()
}
