package stretchy

import (
	"errors"
	"math"
	"strings"
	"testing"

	"mbx/box"
)

const eps = 1e-9

func TestSpan(t *testing.T) {
	t.Run("matches_requested_width", func(t *testing.T) {
		b, err := Span("wide-hat", 1.2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Kind != box.KindSVG {
			t.Fatalf("kind = %d, want svg", b.Kind)
		}
		if math.Abs(b.Width-1.2) > eps {
			t.Errorf("width = %v, want 1.2", b.Width)
		}
		if math.Abs(b.Height-0.42) > eps {
			t.Errorf("height = %v, want 0.42", b.Height)
		}
	})

	t.Run("narrow_base_clamped_to_minimum", func(t *testing.T) {
		b, err := Span("over-brace", 0.1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(b.Width-0.6) > eps {
			t.Errorf("width = %v, want minimum 0.6", b.Width)
		}
	})

	t.Run("svg_stretches", func(t *testing.T) {
		b, err := Span("over-line", 2.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{`preserveAspectRatio="none"`, `width="2em"`, `viewBox="0 0 1000 120"`} {
			if !strings.Contains(b.SVGData, want) {
				t.Errorf("svg missing %q:\n%s", want, b.SVGData)
			}
		}
	})

	t.Run("unknown_label", func(t *testing.T) {
		if _, err := Span("under-line", 1.0); !errors.Is(err, ErrUnknownAsset) {
			t.Fatalf("error = %v, want ErrUnknownAsset", err)
		}
	})
}

func TestStatic(t *testing.T) {
	b, err := Static("vec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(b.Width-0.471) > eps || math.Abs(b.Height-0.714) > eps {
		t.Errorf("size = %vx%v, want 0.471x0.714", b.Width, b.Height)
	}
	if strings.Contains(b.SVGData, "preserveAspectRatio") {
		t.Errorf("static asset must keep its aspect ratio:\n%s", b.SVGData)
	}

	if _, err := Static("hat"); !errors.Is(err, ErrUnknownAsset) {
		t.Fatalf("error = %v, want ErrUnknownAsset", err)
	}
}

func TestEveryAssetHasSaneGeometry(t *testing.T) {
	for label, a := range assets {
		if a.viewBoxWidth <= 0 || a.viewBoxHeight <= 0 {
			t.Errorf("asset %q has empty view box", label)
		}
		if a.minWidth <= 0 {
			t.Errorf("asset %q has no minimum width", label)
		}
		if len(a.path) == 0 {
			t.Errorf("asset %q has no path data", label)
		}
	}
}
