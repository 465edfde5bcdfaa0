package layout

import (
	"fmt"
	"math"

	"mbx/box"
	"mbx/mexpr"
)

// Scripts lays out a super/subscript attachment. The combined box's child
// slot 0 is always the base box; the accent rebinder relies on that.
//
// An accented base is handed to Accent, which reroutes the scripts to the
// accent's inner base so raise and drop stay independent of the mark's
// height.
func Scripts(n *mexpr.Node, opts Options) (*box.Box, error) {
	if n == nil || n.Kind != mexpr.KindScripts {
		return nil, fmt.Errorf("%w: scripts layout needs a scripts node", ErrMalformedNode)
	}
	if n.Inner == nil {
		return nil, fmt.Errorf("%w: scripts node has no base", ErrMalformedNode)
	}
	if n.Inner.Kind == mexpr.KindAccent {
		return Accent(n, opts)
	}
	if n.Sup == nil && n.Sub == nil {
		return nil, fmt.Errorf("%w: scripts node has neither sup nor sub", ErrMalformedNode)
	}

	baseBox, err := Expression(n.Inner, opts)
	if err != nil {
		return nil, err
	}

	var supBox, subBox *box.Box
	if n.Sup != nil {
		if supBox, err = Expression(n.Sup, Options{Font: opts.Font, Style: opts.Style.Sup()}); err != nil {
			return nil, err
		}
	}
	if n.Sub != nil {
		if subBox, err = Expression(n.Sub, Options{Font: opts.Font, Style: opts.Style.Sub()}); err != nil {
			return nil, err
		}
	}

	supShift, subShift := scriptShifts(baseBox, supBox != nil, subBox != nil, opts)

	var col *box.Box
	switch {
	case supBox != nil && subBox != nil:
		// One column, sub below sup, kern sized so both land on their shifts.
		gap := supShift + subShift - subBox.Height - supBox.Depth
		col = box.VStack(box.Shift, subShift, []box.Layer{
			box.Elem(subBox),
			box.VKern(gap),
			box.Elem(supBox),
		})
	case supBox != nil:
		col = box.VStack(box.Shift, -supShift, []box.Layer{box.Elem(supBox)})
	default:
		col = box.VStack(box.Shift, subShift, []box.Layer{box.Elem(subBox)})
	}

	// Superscripts start after the base's italic correction.
	kern := 0.0
	if supBox != nil {
		kern = baseBox.Italic
	}
	out := box.Span([]string{primaryClass(baseBox), "msupsub"}, baseBox, box.HKern(kern), col)
	return out, nil
}

// scriptShifts computes raise and drop amounts against the base box only
// (TeXbook appendix G analogues, reduced to what this engine needs).
func scriptShifts(base *box.Box, hasSup, hasSub bool, opts Options) (supShift, subShift float64) {
	p := opts.Font.Params
	if hasSup {
		pos := p.Sup2
		if opts.Style.Cramped {
			pos = p.Sup3
		} else if opts.Style.Size == box.SizeDisplay {
			pos = p.Sup1
		}
		supShift = math.Max(base.Height-p.SupDrop, pos)
	}
	if hasSub {
		pos := p.Sub1
		if hasSup {
			pos = p.Sub2
		}
		subShift = math.Max(base.Depth+p.SubDrop, pos)
	}
	return supShift, subShift
}
