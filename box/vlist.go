package box

// Positioning selects how a vertical stack derives its baseline.
type Positioning int

const (
	// FirstBaseline: the stack's baseline is the first (bottom) layer's
	// baseline.
	FirstBaseline Positioning = iota
	// Shift: the stack's baseline is the first layer's baseline moved down
	// by the given amount.
	Shift
)

// Layer is one element of a vertical stack: either a box or, when Box is nil,
// invisible vertical spacing of the given size (negative values overlap).
type Layer struct {
	Box  *Box
	Kern float64
}

// Elem wraps a box as a stack layer.
func Elem(b *Box) Layer {
	return Layer{Box: b}
}

// VKern creates a spacing layer.
func VKern(size float64) Layer {
	return Layer{Kern: size}
}

// VStack assembles layers bottom-to-top into a single baseline-aligned box.
// Each child's Top is set to the distance from the stack's top edge to the
// child's own top edge, so a renderer can paint children without re-deriving
// the geometry. Layers whose box is marked ZeroWidth do not contribute to the
// stack's width.
func VStack(pos Positioning, shift float64, layers []Layer) *Box {
	v := &Box{Kind: KindVList}
	if len(layers) == 0 {
		return v
	}

	// Find the bottom element establishing depth and the initial pen.
	var pen float64 // current distance above the stack baseline
	first := true
	for _, l := range layers {
		if l.Box == nil {
			pen += l.Kern
			continue
		}
		if first {
			v.Depth = l.Box.Depth
			pen = l.Box.Height
			first = false
		} else {
			pen += l.Box.Depth + l.Box.Height
		}
		if !l.Box.ZeroWidth && l.Box.Width > v.Width {
			v.Width = l.Box.Width
		}
		v.Children = append(v.Children, l.Box)
	}
	total := pen // extent above the first layer's baseline, independent of shift
	v.Height = total

	if pos == Shift {
		v.Height -= shift
		v.Depth += shift
	}

	// Second pass: distance from stack top to each child's top.
	top := total
	i := 0
	pen = 0
	for _, l := range layers {
		if l.Box == nil {
			pen += l.Kern
			continue
		}
		if i == 0 {
			pen = l.Box.Height
		} else {
			pen += l.Box.Depth + l.Box.Height
		}
		v.Children[i].Top += top - pen
		i++
	}
	return v
}
