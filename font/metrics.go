// Package font provides font-relative metrics for math layout. All values are
// in em units of the base font size; glyph entries carry the kerning distance
// to the font's skew character used for accent positioning.
package font

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	_ "embed"
)

// ErrUnknownGlyph is returned when a glyph has no metrics entry. Layout cannot
// proceed without metrics, callers are expected to propagate this.
var ErrUnknownGlyph = errors.New("unknown glyph")

//go:embed metrics.yaml
var defaultMetrics []byte

// Glyph describes a single glyph in em units.
type Glyph struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Italic float64 `yaml:"italic"`
	Skew   float64 `yaml:"skew"`
}

// Params holds font-wide layout parameters (TeX font dimension analogues).
type Params struct {
	XHeight    float64 `yaml:"x_height"`
	AxisHeight float64 `yaml:"axis_height"`
	// superscript shifts: display, cramped, script
	Sup1 float64 `yaml:"sup1"`
	Sup2 float64 `yaml:"sup2"`
	Sup3 float64 `yaml:"sup3"`
	// subscript shifts: without and with superscript
	Sub1    float64 `yaml:"sub1"`
	Sub2    float64 `yaml:"sub2"`
	SupDrop float64 `yaml:"sup_drop"`
	SubDrop float64 `yaml:"sub_drop"`
}

// Metrics is an immutable metric table for one font.
type Metrics struct {
	Params Params
	glyphs map[rune]Glyph
}

type metricsFile struct {
	Params Params           `yaml:"params"`
	Glyphs map[string]Glyph `yaml:"glyphs"`
}

// Load parses a YAML metric table. Glyph keys must be single runes; all bad
// keys are reported together.
func Load(data []byte) (*Metrics, error) {
	var mf metricsFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("unable to parse font metrics: %w", err)
	}

	m := &Metrics{Params: mf.Params, glyphs: make(map[rune]Glyph, len(mf.Glyphs))}

	var errs error
	for key, g := range mf.Glyphs {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			errs = multierr.Append(errs, fmt.Errorf("glyph key %q is not a single rune", key))
			continue
		}
		m.glyphs[r] = g
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid font metrics: %w", errs)
	}
	if m.Params.XHeight <= 0 {
		return nil, errors.New("invalid font metrics: x_height must be positive")
	}
	return m, nil
}

// Open reads a metric table from file.
func Open(path string) (*Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read font metrics: %w", err)
	}
	return Load(data)
}

// Default returns the embedded metric table.
func Default() (*Metrics, error) {
	return Load(defaultMetrics)
}

// Glyph returns metrics for a rune.
func (m *Metrics) Glyph(r rune) (Glyph, error) {
	g, ok := m.glyphs[r]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
	}
	return g, nil
}

// Has reports whether the table has an entry for a rune.
func (m *Metrics) Has(r rune) bool {
	_, ok := m.glyphs[r]
	return ok
}

// XHeight returns the font's x-height in em units.
func (m *Metrics) XHeight() float64 {
	return m.Params.XHeight
}
