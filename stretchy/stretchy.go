// Package stretchy provides width-matching vector bodies for stretchable
// accents and the fixed vector assets used instead of font glyphs. Path data
// lives in a viewBox of abstract units (thousandths of an em vertically) and
// is stretched horizontally to the requested width.
package stretchy

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"mbx/box"
)

// ErrUnknownAsset is returned for labels with no vector representation.
var ErrUnknownAsset = errors.New("unknown stretchy asset")

type asset struct {
	path          string
	viewBoxWidth  float64
	viewBoxHeight float64
	minWidth      float64 // em
}

// Stretchable bodies keyed by accent label.
var assets = map[string]asset{
	"wide-hat": {
		path:          "M0 420 L460 20 L920 420 L874 420 L460 112 L46 420 Z",
		viewBoxWidth:  920,
		viewBoxHeight: 420,
		minWidth:      0.36,
	},
	"wide-tilde": {
		path:          "M0 260 C120 40 340 40 480 170 C620 300 840 300 960 80 L960 150 C840 370 620 370 480 240 C340 110 120 110 0 330 Z",
		viewBoxWidth:  960,
		viewBoxHeight: 330,
		minWidth:      0.42,
	},
	"over-line": {
		path:          "M0 20 H1000 V100 H0 Z",
		viewBoxWidth:  1000,
		viewBoxHeight: 120,
		minWidth:      0.3,
	},
	"over-brace": {
		path:          "M0 548 C60 280 220 80 500 60 C780 80 940 280 1000 548 L952 548 C880 320 740 140 500 124 C260 140 120 320 48 548 Z",
		viewBoxWidth:  1000,
		viewBoxHeight: 548,
		minWidth:      0.6,
	},
	"over-arrow": {
		path:          "M0 300 H780 L700 140 L760 100 L1000 330 L760 560 L700 520 L780 360 H0 Z",
		viewBoxWidth:  1000,
		viewBoxHeight: 522,
		minWidth:      0.55,
	},
	"over-harpoon": {
		path:          "M0 300 H800 L720 120 L780 90 L1000 330 H0 Z",
		viewBoxWidth:  1000,
		viewBoxHeight: 522,
		minWidth:      0.55,
	},
}

type staticAsset struct {
	path          string
	width, height float64 // em
	viewBoxWidth  float64
	viewBoxHeight float64
}

// Fixed vector assets used for combining marks whose font glyph renders
// inconsistently across backends.
var staticAssets = map[string]staticAsset{
	"vec": {
		path:          "M0 600 H340 L280 460 L330 420 L471 560 L330 700 L280 660 L340 620 H0 Z",
		width:         0.471,
		height:        0.714,
		viewBoxWidth:  471,
		viewBoxHeight: 714,
	},
}

// Span returns a stretchable accent body sized to the given width. Widths
// below the asset minimum are widened to it.
func Span(label string, width float64) (*box.Box, error) {
	a, ok := assets[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, label)
	}
	if width < a.minWidth {
		width = a.minWidth
	}
	height := a.viewBoxHeight / 1000
	return &box.Box{
		Kind:    box.KindSVG,
		Classes: []string{"stretchy"},
		Width:   width,
		Height:  height,
		SVGData: svgElement(a.path, a.viewBoxWidth, a.viewBoxHeight, width, height, true),
	}, nil
}

// Static returns a fixed vector asset by name.
func Static(name string) (*box.Box, error) {
	a, ok := staticAssets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, name)
	}
	return &box.Box{
		Kind:    box.KindSVG,
		Classes: []string{"static-svg"},
		Width:   a.width,
		Height:  a.height,
		SVGData: svgElement(a.path, a.viewBoxWidth, a.viewBoxHeight, a.width, a.height, false),
	}, nil
}

func svgElement(path string, vbW, vbH, emW, emH float64, stretch bool) string {
	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("width", formatEm(emW))
	svg.CreateAttr("height", formatEm(emH))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", formatNum(vbW), formatNum(vbH)))
	if stretch {
		svg.CreateAttr("preserveAspectRatio", "none")
	}
	p := svg.CreateElement("path")
	p.CreateAttr("d", path)

	s, err := doc.WriteToString()
	if err != nil {
		// etree string serialization cannot fail for a tree we just built
		panic(err)
	}
	return s
}

func formatEm(v float64) string {
	return formatNum(v) + "em"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
