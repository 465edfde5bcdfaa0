package render

import (
	"strings"
	"testing"

	"mbx/box"
)

func docString(t *testing.T, b *box.Box, em float64) string {
	t.Helper()
	doc, err := BoxSVG(b, em)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestBoxSVG(t *testing.T) {
	t.Run("symbol", func(t *testing.T) {
		s := docString(t, box.Symbol('x', 0.5, 0.4, 0, 0, 0), 10)
		for _, want := range []string{`<svg xmlns="http://www.w3.org/2000/svg"`, "<text", ">x</text>", `font-size="10.000"`} {
			if !strings.Contains(s, want) {
				t.Errorf("svg missing %q:\n%s", want, s)
			}
		}
	})

	t.Run("document_size_includes_padding", func(t *testing.T) {
		s := docString(t, box.Symbol('x', 0.5, 0.4, 0.1, 0, 0), 10)
		// width (0.5 + 2*0.2) * 10, height (0.4 + 0.1 + 2*0.2) * 10
		if !strings.Contains(s, `width="9.000"`) || !strings.Contains(s, `height="9.000"`) {
			t.Errorf("unexpected document size:\n%s", s)
		}
	})

	t.Run("span_advances_pen", func(t *testing.T) {
		row := box.Span([]string{"mrow"},
			box.Symbol('d', 0.5, 0.7, 0, 0, 0),
			box.Symbol('x', 0.6, 0.4, 0, 0, 0))
		s := docString(t, row, 10)
		// first glyph at the left padding, second one advance further
		if !strings.Contains(s, `x="2.000"`) || !strings.Contains(s, `x="7.000"`) {
			t.Errorf("pen positions missing:\n%s", s)
		}
	})

	t.Run("zero_width_child_does_not_advance", func(t *testing.T) {
		mark := box.Symbol('ˆ', 0.5, 0.7, 0, 0, 0)
		mark.ZeroWidth = true
		row := box.Span(nil, mark, box.Symbol('x', 0.6, 0.4, 0, 0, 0))
		s := docString(t, row, 10)
		if strings.Count(s, `x="2.000"`) != 2 {
			t.Errorf("both glyphs should start at the padding edge:\n%s", s)
		}
	})

	t.Run("style_propagates", func(t *testing.T) {
		styled := box.Span([]string{"styled"}, box.Symbol('x', 0.5, 0.4, 0, 0, 0))
		styled.Style = "color:red"
		s := docString(t, styled, 10)
		if !strings.Contains(s, `style="color:red"`) {
			t.Errorf("style not propagated to glyph:\n%s", s)
		}
	})

	t.Run("vlist_positions_by_top_offset", func(t *testing.T) {
		base := box.Symbol('x', 0.5, 0.4, 0, 0, 0)
		mark := box.Symbol('ˆ', 0.5, 0.2, 0, 0, 0)
		v := box.VStack(box.FirstBaseline, 0, []box.Layer{box.Elem(base), box.VKern(-0.1), box.Elem(mark)})
		s := docString(t, v, 10)
		// stack height 0.5 em; baseline at (0.5+0.2)*10 = 7. Base baseline
		// stays at 7, mark baseline at top + mark extent = 2 + 2 = 4.
		if !strings.Contains(s, `y="7.000"`) || !strings.Contains(s, `y="4.000"`) {
			t.Errorf("vlist baselines wrong:\n%s", s)
		}
	})

	t.Run("embedded_svg", func(t *testing.T) {
		b := &box.Box{
			Kind:    box.KindSVG,
			Width:   1.0,
			Height:  0.42,
			SVGData: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 920 420"><path d="M0 420 L460 20"/></svg>`,
		}
		s := docString(t, b, 10)
		if !strings.Contains(s, "<g transform=") || !strings.Contains(s, "<path") {
			t.Errorf("embedded svg not inlined:\n%s", s)
		}
	})

	t.Run("nil_box", func(t *testing.T) {
		if _, err := BoxSVG(nil, 10); err == nil {
			t.Fatalf("expected error, got none")
		}
	})

	t.Run("bad_embedded_viewbox", func(t *testing.T) {
		b := &box.Box{Kind: box.KindSVG, Width: 1, Height: 1,
			SVGData: `<svg xmlns="http://www.w3.org/2000/svg"><path d="M0 0"/></svg>`}
		if _, err := BoxSVG(b, 10); err == nil {
			t.Fatalf("expected error, got none")
		}
	})
}

func TestParseViewBox(t *testing.T) {
	tests := []struct {
		in   string
		w, h float64
		ok   bool
	}{
		{"0 0 920 420", 920, 420, true},
		{"0 0 1000 120", 1000, 120, true},
		{"", 0, 0, false},
		{"0 0 920", 0, 0, false},
		{"0 0 x 420", 0, 0, false},
		{"0 0 0 420", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, err := parseViewBox(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseViewBox(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (w != tt.w || h != tt.h) {
			t.Errorf("parseViewBox(%q) = %v,%v, want %v,%v", tt.in, w, h, tt.w, tt.h)
		}
	}
}
