package mexpr

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"golang.org/x/net/html/charset"
)

// Document is one expression document read from XML.
type Document struct {
	ID    string
	Title string
	Root  *Node
}

// ReadDocument parses an expression document:
//
//	<math id="..." title="...">
//	  <sym c="x"/> | <row>...</row> | <style style="...">...</style> |
//	  <accent label="wide-hat">...</accent> | <scripts>BASE <sup>..</sup> <sub>..</sub></scripts>
//	</math>
//
// Multiple top-level children are wrapped in an implicit row. A missing or
// invalid id attribute is replaced with a generated UUID.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read expression XML: %w", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "math" {
		return nil, fmt.Errorf("expression document must have a <math> root")
	}

	d := &Document{
		ID:    root.SelectAttrValue("id", ""),
		Title: root.SelectAttrValue("title", ""),
	}
	if _, err := uuid.Parse(d.ID); err != nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate document ID: %w", err)
		}
		d.ID = id.String()
	}

	children := root.ChildElements()
	switch len(children) {
	case 0:
		return nil, fmt.Errorf("expression document is empty")
	case 1:
		node, err := readNode(children[0])
		if err != nil {
			return nil, err
		}
		d.Root = node
	default:
		row := Row()
		for _, el := range children {
			node, err := readNode(el)
			if err != nil {
				return nil, err
			}
			row.Children = append(row.Children, node)
		}
		d.Root = row
	}
	return d, nil
}

func readNode(el *etree.Element) (*Node, error) {
	switch el.Tag {
	case "sym":
		return readSym(el)
	case "row":
		row := Row()
		for _, c := range el.ChildElements() {
			node, err := readNode(c)
			if err != nil {
				return nil, err
			}
			row.Children = append(row.Children, node)
		}
		return row, nil
	case "style":
		decls, err := ParseDeclarations(el.SelectAttrValue("style", ""))
		if err != nil {
			return nil, err
		}
		inner, err := readSingleChild(el)
		if err != nil {
			return nil, err
		}
		return Styled(inner, decls), nil
	case "accent":
		label := el.SelectAttrValue("label", "")
		if _, ok := AccentByLabel(label); !ok {
			return nil, fmt.Errorf("<accent> has unknown label %q", label)
		}
		inner, err := readSingleChild(el)
		if err != nil {
			return nil, err
		}
		return Accent(label, inner), nil
	case "scripts":
		return readScripts(el)
	default:
		return nil, fmt.Errorf("unknown expression element <%s>", el.Tag)
	}
}

func readSym(el *etree.Element) (*Node, error) {
	s := el.SelectAttrValue("c", "")
	if s == "" {
		s = el.Text()
	}
	c, size := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError || size != len(s) {
		return nil, fmt.Errorf("<sym> must carry exactly one character, got %q", s)
	}
	// Precomposed input (é) is split into base symbol plus accent nodes.
	return Decompose(c), nil
}

func readSingleChild(el *etree.Element) (*Node, error) {
	children := el.ChildElements()
	if len(children) != 1 {
		return nil, fmt.Errorf("<%s> must have exactly one child element", el.Tag)
	}
	return readNode(children[0])
}

func readScripts(el *etree.Element) (*Node, error) {
	var base, sup, sub *Node
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "sup":
			if sup != nil {
				return nil, fmt.Errorf("<scripts> has more than one <sup>")
			}
			inner, err := readSingleChild(c)
			if err != nil {
				return nil, err
			}
			sup = inner
		case "sub":
			if sub != nil {
				return nil, fmt.Errorf("<scripts> has more than one <sub>")
			}
			inner, err := readSingleChild(c)
			if err != nil {
				return nil, err
			}
			sub = inner
		default:
			if base != nil {
				return nil, fmt.Errorf("<scripts> has more than one base element")
			}
			node, err := readNode(c)
			if err != nil {
				return nil, err
			}
			base = node
		}
	}
	if base == nil {
		return nil, fmt.Errorf("<scripts> is missing a base element")
	}
	if sup == nil && sub == nil {
		return nil, fmt.Errorf("<scripts> needs at least one of <sup>, <sub>")
	}
	return Scripts(base, sup, sub), nil
}
