package mexpr

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
)

// AccentKind classifies one accent label. The catalog is static: stretchiness
// and shiftiness are fixed per label, never derived at layout time.
type AccentKind struct {
	Label string
	// Char is the mark glyph for fixed accents.
	Char rune
	// Stretchy accents are rendered to match the base width instead of using
	// a fixed glyph.
	Stretchy bool
	// Shifty accents are skew-corrected against the base glyph's skew
	// character. True for all stretchy accents plus wide-hat and wide-tilde.
	Shifty bool
	// FullOverlap accents encircle the base: clearance is the full base
	// height and the mark contributes width instead of being centered.
	FullOverlap bool
	// SVGAsset names a fixed vector asset used instead of a font glyph, for
	// cross-renderer consistency of the mark.
	SVGAsset string
}

// shiftyFixed lists the only labels allowed to be shifty without being
// stretchy.
var shiftyFixed = map[string]bool{
	"wide-hat":   true,
	"wide-tilde": true,
}

var accentCatalog = map[string]AccentKind{
	// fixed glyph accents
	"acute":      {Label: "acute", Char: '´'},
	"grave":      {Label: "grave", Char: '`'},
	"tilde":      {Label: "tilde", Char: '˜'},
	"bar":        {Label: "bar", Char: '¯'},
	"breve":      {Label: "breve", Char: '˘'},
	"check":      {Label: "check", Char: 'ˇ'},
	"hat":        {Label: "hat", Char: 'ˆ'},
	"dot":        {Label: "dot", Char: '˙'},
	"double-dot": {Label: "double-dot", Char: '¨'},
	"ring":       {Label: "ring", Char: '˚'},

	// fixed vector-asset accent
	"vector-arrow": {Label: "vector-arrow", SVGAsset: "vec"},

	// full-overlap accent
	"circle-overlay": {Label: "circle-overlay", Char: '◯', FullOverlap: true},

	// stretchy accents
	"wide-hat":    {Label: "wide-hat", Stretchy: true, Shifty: true},
	"wide-tilde":  {Label: "wide-tilde", Stretchy: true, Shifty: true},
	"over-line":   {Label: "over-line", Stretchy: true, Shifty: true},
	"over-brace":  {Label: "over-brace", Stretchy: true, Shifty: true},
	"over-arrow":  {Label: "over-arrow", Stretchy: true, Shifty: true},
	"over-harpoon": {Label: "over-harpoon", Stretchy: true, Shifty: true},
}

// AccentByLabel resolves a label against the catalog.
func AccentByLabel(label string) (AccentKind, bool) {
	k, ok := accentCatalog[label]
	return k, ok
}

// AccentLabels returns all known labels in natural order.
func AccentLabels() []string {
	out := make([]string, 0, len(accentCatalog))
	for l := range accentCatalog {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	return out
}

// ValidateAccentCatalog checks catalog consistency. All violations are
// reported together.
func ValidateAccentCatalog() error {
	var errs error
	for label, k := range accentCatalog {
		if label != k.Label {
			errs = multierr.Append(errs, fmt.Errorf("accent %q: catalog key does not match label %q", label, k.Label))
		}
		if !k.Stretchy && k.Shifty && !shiftyFixed[label] {
			errs = multierr.Append(errs, fmt.Errorf("accent %q: fixed accents may not be shifty", label))
		}
		if !k.Stretchy && k.Char == 0 && k.SVGAsset == "" {
			errs = multierr.Append(errs, fmt.Errorf("accent %q: fixed accent needs a glyph or vector asset", label))
		}
		if k.Stretchy && k.FullOverlap {
			errs = multierr.Append(errs, fmt.Errorf("accent %q: stretchy accents cannot be full-overlap", label))
		}
	}
	return errs
}
