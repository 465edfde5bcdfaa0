package box

// StyleSize is the nesting depth of a layout style.
type StyleSize int

const (
	SizeDisplay StyleSize = iota
	SizeText
	SizeScript
	SizeScriptScript
)

// Style is an immutable layout style: nesting size plus crampedness. Cramped
// styles suppress the extra superscript raise used in uncramped contexts.
type Style struct {
	Size    StyleSize
	Cramped bool
}

// TextStyle is the default style for inline math.
var TextStyle = Style{Size: SizeText}

// Cramp returns the cramped variant of the style.
func (s Style) Cramp() Style {
	s.Cramped = true
	return s
}

// Sup returns the style for superscripts: one size down, crampedness kept.
func (s Style) Sup() Style {
	return Style{Size: s.scriptSize(), Cramped: s.Cramped}
}

// Sub returns the style for subscripts: one size down, always cramped.
func (s Style) Sub() Style {
	return Style{Size: s.scriptSize(), Cramped: true}
}

func (s Style) scriptSize() StyleSize {
	if s.Size >= SizeScript {
		return SizeScriptScript
	}
	return SizeScript
}

// Multiplier returns the font size multiplier for the style.
func (s Style) Multiplier() float64 {
	switch s.Size {
	case SizeScript:
		return 0.7
	case SizeScriptScript:
		return 0.5
	default:
		return 1.0
	}
}
