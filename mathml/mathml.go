// Package mathml emits the structured markup form of an expression. The
// emitter works from the semantic tree only: it never consults skew,
// clearance or stretchy sizing, since the markup expresses meaning and a
// downstream consumer does its own layout.
package mathml

import (
	"fmt"
	"unicode"

	"github.com/beevik/etree"

	"mbx/mexpr"
)

// Emit converts an expression node to a MathML element.
func Emit(n *mexpr.Node) (*etree.Element, error) {
	if n == nil {
		return nil, fmt.Errorf("cannot emit nil node")
	}
	switch n.Kind {
	case mexpr.KindSym:
		return symElement(n.Char), nil
	case mexpr.KindRow:
		row := etree.NewElement("mrow")
		for _, c := range n.Children {
			child, err := Emit(c)
			if err != nil {
				return nil, err
			}
			row.AddChild(child)
		}
		return row, nil
	case mexpr.KindStyled:
		inner, err := Emit(n.Inner)
		if err != nil {
			return nil, err
		}
		el := etree.NewElement("mstyle")
		if s := n.Style.String(); s != "" {
			el.CreateAttr("style", s)
		}
		el.AddChild(inner)
		return el, nil
	case mexpr.KindAccent:
		return accentElement(n)
	case mexpr.KindScripts:
		return scriptsElement(n)
	default:
		return nil, fmt.Errorf("cannot emit node kind %d", n.Kind)
	}
}

// Document wraps the expression in a <math> document.
func Document(n *mexpr.Node) (*etree.Document, error) {
	el, err := Emit(n)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	math := doc.CreateElement("math")
	math.CreateAttr("xmlns", "http://www.w3.org/1998/Math/MathML")
	math.AddChild(el)
	doc.Indent(2)
	return doc, nil
}

func symElement(c rune) *etree.Element {
	tag := "mi"
	if unicode.IsDigit(c) {
		tag = "mn"
	} else if !unicode.IsLetter(c) {
		tag = "mo"
	}
	el := etree.NewElement(tag)
	el.SetText(string(c))
	return el
}

// accentElement produces the over relation with the accent attribute set,
// using the unresolved semantic base and label.
func accentElement(n *mexpr.Node) (*etree.Element, error) {
	base, err := Emit(n.Inner)
	if err != nil {
		return nil, err
	}
	mark := etree.NewElement("mo")
	if kind, ok := mexpr.AccentByLabel(n.Label); ok && kind.Char != 0 {
		mark.SetText(string(kind.Char))
	} else {
		mark.SetText(n.Label)
	}
	if kind, ok := mexpr.AccentByLabel(n.Label); ok && kind.Stretchy {
		mark.CreateAttr("stretchy", "true")
	}

	over := etree.NewElement("mover")
	over.CreateAttr("accent", "true")
	over.AddChild(base)
	over.AddChild(mark)
	return over, nil
}

func scriptsElement(n *mexpr.Node) (*etree.Element, error) {
	base, err := Emit(n.Inner)
	if err != nil {
		return nil, err
	}
	var tag string
	switch {
	case n.Sup != nil && n.Sub != nil:
		tag = "msubsup"
	case n.Sup != nil:
		tag = "msup"
	case n.Sub != nil:
		tag = "msub"
	default:
		return nil, fmt.Errorf("scripts node has neither sup nor sub")
	}
	el := etree.NewElement(tag)
	el.AddChild(base)
	if n.Sub != nil {
		sub, err := Emit(n.Sub)
		if err != nil {
			return nil, err
		}
		el.AddChild(sub)
	}
	if n.Sup != nil {
		sup, err := Emit(n.Sup)
		if err != nil {
			return nil, err
		}
		el.AddChild(sup)
	}
	return el, nil
}
