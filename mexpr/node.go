// Package mexpr defines the semantic expression tree the layout engine
// consumes: symbols, rows, styling wrappers, accents and script attachments.
// Nodes are built by the XML reader or programmatically; they are immutable
// once handed to layout.
package mexpr

// NodeKind discriminates expression node variants.
type NodeKind int

const (
	// KindSym is a single character.
	KindSym NodeKind = iota
	// KindRow is a horizontal sequence of children.
	KindRow
	// KindStyled is a purely stylistic wrapper (color, class); it carries no
	// metric information of its own.
	KindStyled
	// KindAccent puts a diacritical mark over (or around) Inner.
	KindAccent
	// KindScripts attaches super/subscripts to Inner.
	KindScripts
)

// Node is one node of the expression tree.
type Node struct {
	Kind NodeKind

	Char     rune    // KindSym
	Children []*Node // KindRow

	// Inner is the wrapped node for KindStyled, the accented base for
	// KindAccent and the script base for KindScripts.
	Inner *Node

	Style Declarations // KindStyled

	Label string // KindAccent: accent catalog label

	Sup *Node // KindScripts, may be nil
	Sub *Node // KindScripts, may be nil
}

// Sym creates a symbol node.
func Sym(c rune) *Node {
	return &Node{Kind: KindSym, Char: c}
}

// Row creates a horizontal sequence.
func Row(children ...*Node) *Node {
	return &Node{Kind: KindRow, Children: children}
}

// Styled wraps a node in styling declarations.
func Styled(inner *Node, style Declarations) *Node {
	return &Node{Kind: KindStyled, Inner: inner, Style: style}
}

// Accent puts the named accent over base.
func Accent(label string, base *Node) *Node {
	return &Node{Kind: KindAccent, Label: label, Inner: base}
}

// Scripts attaches superscript and/or subscript to base.
func Scripts(base, sup, sub *Node) *Node {
	return &Node{Kind: KindScripts, Inner: base, Sup: sup, Sub: sub}
}
