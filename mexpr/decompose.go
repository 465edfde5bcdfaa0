package mexpr

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// combiningAccents maps Unicode combining marks to catalog labels. Only marks
// the engine can compose are listed.
var combiningAccents = map[rune]string{
	'̀': "grave",
	'́': "acute",
	'̂': "hat",
	'̃': "tilde",
	'̄': "bar",
	'̆': "breve",
	'̇': "dot",
	'̈': "double-dot",
	'̊': "ring",
	'̌': "check",
	'⃗': "over-arrow",
	'⃝': "circle-overlay",
}

// Decompose turns a possibly precomposed character into an expression node:
// NFD-decomposable input with known combining marks becomes nested Accent
// nodes over the stripped base symbol (innermost mark first), anything else a
// plain symbol.
func Decompose(c rune) *Node {
	d := norm.NFD.String(string(c))
	base, size := utf8.DecodeRuneInString(d)
	if base == utf8.RuneError {
		return Sym(c)
	}

	node := Sym(base)
	for _, mark := range d[size:] {
		label, ok := combiningAccents[mark]
		if !ok {
			// Unknown mark: keep the original precomposed character, the
			// font may have it.
			return Sym(c)
		}
		node = Accent(label, node)
	}
	return node
}
