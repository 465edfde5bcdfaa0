// Package render turns laid-out box trees into preview artifacts: a single
// SVG document and, on request, a raster image. This is a debugging and
// inspection surface, not a production typesetter.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"mbx/box"
)

const sidePadding = 0.2 // em of whitespace around the composition

// BoxSVG serializes a box tree into one SVG document. em is the pixel size of
// one em.
func BoxSVG(b *box.Box, em float64) (*etree.Document, error) {
	if b == nil {
		return nil, fmt.Errorf("cannot render nil box")
	}
	w := (b.Width + 2*sidePadding) * em
	h := (b.Height + b.Depth + 2*sidePadding) * em

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", px(w))
	svg.CreateAttr("height", px(h))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", px(w), px(h)))

	baseline := (b.Height + sidePadding) * em
	if err := draw(svg, b, sidePadding*em, baseline, em, ""); err != nil {
		return nil, err
	}
	doc.Indent(2)
	return doc, nil
}

// draw paints one box with its baseline at y, left edge at x.
func draw(parent *etree.Element, b *box.Box, x, y, em float64, style string) error {
	x += b.Left * em
	y += b.Top * em
	if b.Style != "" {
		style = b.Style
	}

	switch b.Kind {
	case box.KindSymbol:
		t := parent.CreateElement("text")
		t.CreateAttr("x", px(x))
		t.CreateAttr("y", px(y))
		t.CreateAttr("font-size", px(em))
		if style != "" {
			t.CreateAttr("style", style)
		}
		t.SetText(string(b.Char))
	case box.KindSVG:
		return drawEmbedded(parent, b, x, y, em, style)
	case box.KindKern:
		// invisible
	case box.KindVList:
		top := y - b.Height*em
		for _, c := range b.Children {
			childBaseline := top + (c.Top+c.Height)*em
			// Top was already consumed computing the baseline.
			saved := c.Top
			c.Top = 0
			err := draw(parent, c, x, childBaseline, em, style)
			c.Top = saved
			if err != nil {
				return err
			}
		}
	default: // span
		pen := x
		for _, c := range b.Children {
			if err := draw(parent, c, pen, y, em, style); err != nil {
				return err
			}
			if !c.ZeroWidth {
				pen += c.Width * em
			}
		}
	}
	return nil
}

// drawEmbedded inlines a stretchy/static SVG body, scaling its viewBox to the
// box extent.
func drawEmbedded(parent *etree.Element, b *box.Box, x, y, em float64, style string) error {
	inner := etree.NewDocument()
	if err := inner.ReadFromString(b.SVGData); err != nil {
		return fmt.Errorf("unable to parse embedded svg: %w", err)
	}
	root := inner.Root()
	if root == nil {
		return fmt.Errorf("embedded svg has no root element")
	}
	vbW, vbH, err := parseViewBox(root.SelectAttrValue("viewBox", ""))
	if err != nil {
		return err
	}

	g := parent.CreateElement("g")
	top := y - b.Height*em
	g.CreateAttr("transform", fmt.Sprintf("translate(%s %s) scale(%s %s)",
		px(x), px(top), px(b.Width*em/vbW), px((b.Height+b.Depth)*em/vbH)))
	if style != "" {
		g.CreateAttr("style", style)
	}
	for _, c := range root.ChildElements() {
		g.AddChild(c.Copy())
	}
	return nil
}

func parseViewBox(s string) (w, h float64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("embedded svg has bad viewBox %q", s)
	}
	if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, fmt.Errorf("embedded svg has bad viewBox %q", s)
	}
	if h, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return 0, 0, fmt.Errorf("embedded svg has bad viewBox %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("embedded svg has degenerate viewBox %q", s)
	}
	return w, h, nil
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
