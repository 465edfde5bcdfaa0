package layout

import (
	"fmt"
	"math"

	"mbx/box"
	"mbx/mexpr"
	"mbx/stretchy"
)

// circleOverlayNudge is the extra downward shift of the circle-overlay mark,
// in em. Empirical: it centers the circle glyph on the base visually. Not
// derived from any metric.
const circleOverlayNudge = 0.2

// resolved holds the per-accent decisions shared by the composer and both
// emitters. Transient: rebuilt on every call, never stored.
type resolved struct {
	skew      float64
	clearance float64
	accent    *box.Box // positioned accent body
	base      *box.Box // base laid out in cramped style
}

// Accent composites an accent over its base following TeXbook rule 12. The
// node is either a bare accent or a scripts wrapper whose base is an accent;
// in the latter case the scripts are rebound to the accent's inner base
// before layout and the finished accent box is injected back afterwards.
func Accent(n *mexpr.Node, opts Options) (*box.Box, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformedNode)
	}

	group := n
	var wrapper *mexpr.Node
	if n.Kind == mexpr.KindScripts {
		wrapper = n
		group = n.Inner
	}
	if group == nil {
		return nil, fmt.Errorf("%w: scripts wrapper has no base", ErrMalformedNode)
	}
	if group.Kind != mexpr.KindAccent {
		return nil, fmt.Errorf("%w: accent layout got node kind %d", ErrMalformedNode, group.Kind)
	}
	kind, ok := mexpr.AccentByLabel(group.Label)
	if !ok {
		return nil, fmt.Errorf("unknown accent label %q", group.Label)
	}
	base := group.Inner
	if base == nil {
		return nil, fmt.Errorf("%w: accent %q has no base", ErrMalformedNode, group.Label)
	}

	// Attach the scripts directly to the inner base first, so raise and drop
	// are computed against the unaccented expression. The base subtree is
	// moved into the temporary wrapper, not copied.
	var scripted *box.Box
	if wrapper != nil {
		rebound := mexpr.Node{Kind: mexpr.KindScripts, Inner: base, Sup: wrapper.Sup, Sub: wrapper.Sub}
		var err error
		if scripted, err = Scripts(&rebound, opts); err != nil {
			return nil, err
		}
	}

	r, err := resolve(base, kind, opts)
	if err != nil {
		return nil, err
	}
	accentBox := compose(r)

	if wrapper != nil {
		// Inject the accent box into the base slot of the scripted box. The
		// attachment geometry was computed against the unaccented base and
		// stays; only the reported height is patched.
		scripted.Children[0] = accentBox
		scripted.Height = math.Max(accentBox.Height, scripted.Height)
		scripted.Classes[0] = "mord"
		return scripted, nil
	}
	return accentBox, nil
}

// resolve computes skew, clearance and the positioned accent body.
func resolve(base *mexpr.Node, kind mexpr.AccentKind, opts Options) (resolved, error) {
	cramped := opts.cramped()

	body, err := Expression(base, cramped)
	if err != nil {
		return resolved{}, err
	}

	skew, err := resolveSkew(base, kind, cramped)
	if err != nil {
		return resolved{}, err
	}

	// Vertical gap between base and mark, capped at the x-height so tall
	// bases do not push the mark arbitrarily high. Full-overlap marks sit
	// around the base: no gap at all.
	clearance := math.Min(body.Height, opts.Font.XHeight())
	if kind.FullOverlap {
		clearance = body.Height
	}

	accent, err := accentBody(kind, skew, body.Width, opts)
	if err != nil {
		return resolved{}, err
	}
	return resolved{skew: skew, clearance: clearance, accent: accent, base: body}, nil
}

// resolveSkew returns the horizontal skew correction: the base glyph's kern
// against the font's skew character, taken only for shifty accents over a
// single character box. Multi-character and non-character bases get no skew.
func resolveSkew(base *mexpr.Node, kind mexpr.AccentKind, cramped Options) (float64, error) {
	if !kind.Shifty {
		return 0, nil
	}
	leaf, ok := PeelCharacter(base)
	if !ok {
		return 0, nil
	}
	// Lay out the bare glyph alone; its box carries the skew metric.
	cb, err := Expression(leaf, cramped)
	if err != nil {
		return 0, err
	}
	return cb.Skew, nil
}

// accentBody selects and positions the mark: a base-width stretchable body
// for stretchy kinds, otherwise a fixed glyph or vector asset centered over
// the skew point.
func accentBody(kind mexpr.AccentKind, skew, baseWidth float64, opts Options) (*box.Box, error) {
	if kind.Stretchy {
		b, err := stretchy.Span(kind.Label, baseWidth)
		if err != nil {
			return nil, err
		}
		if skew > 0 {
			// Inset the stretched mark so it does not overhang the skewed
			// base on the left.
			b.Width -= 2 * skew
			b.Left = 2 * skew
		}
		b.ZeroWidth = true
		return b, nil
	}

	var mark *box.Box
	if kind.SVGAsset != "" {
		m, err := stretchy.Static(kind.SVGAsset)
		if err != nil {
			return nil, err
		}
		mark = m
	} else {
		g, err := opts.Font.Glyph(kind.Char)
		if err != nil {
			return nil, err
		}
		// Italic correction would skew the mark's bounds; the mark is
		// positioned purely by the centering math below.
		mark = box.Symbol(kind.Char, g.Width, g.Height, g.Depth, 0, g.Skew)
	}

	b := box.Span([]string{"accent-body"}, mark)
	left := skew
	if kind.FullOverlap {
		// Full-overlap marks contribute width and sit at the skew point
		// uncentered, nudged down onto the base.
		b.Classes = append(b.Classes, "accent-full")
		b.Top = circleOverlayNudge
	} else {
		left -= mark.Width / 2
		b.ZeroWidth = true
	}
	b.Left = left
	return b, nil
}

// compose stacks base and mark into one column sharing the base's baseline,
// with the clearance applied as negative spacing, and tags the result as an
// ordinary atomic expression.
func compose(r resolved) *box.Box {
	stack := box.VStack(box.FirstBaseline, 0, []box.Layer{
		box.Elem(r.base),
		box.VKern(-r.clearance),
		box.Elem(r.accent),
	})
	return box.Span([]string{"mord", "accent"}, stack)
}
