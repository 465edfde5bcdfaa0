package font

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const eps = 1e-9

func TestDefault(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(m.XHeight()-0.431) > eps {
		t.Errorf("x-height = %v, want 0.431", m.XHeight())
	}

	// spot checks against the embedded table
	tests := []struct {
		char rune
		want Glyph
	}{
		{'d', Glyph{Width: 0.520, Height: 0.694, Skew: 0.1667}},
		{'x', Glyph{Width: 0.572, Height: 0.431, Skew: 0.0278}},
		{'∑', Glyph{Width: 1.056, Height: 0.75, Depth: 0.25}},
	}
	for _, tt := range tests {
		g, err := m.Glyph(tt.char)
		if err != nil {
			t.Fatalf("glyph %q: %v", tt.char, err)
		}
		if math.Abs(g.Width-tt.want.Width) > eps || math.Abs(g.Height-tt.want.Height) > eps ||
			math.Abs(g.Depth-tt.want.Depth) > eps || math.Abs(g.Skew-tt.want.Skew) > eps {
			t.Errorf("glyph %q = %+v, want %+v", tt.char, g, tt.want)
		}
	}
}

func TestDefaultCoversAccentMarks(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range "´`˜¯˘ˇˆ˙¨˚◯" {
		if !m.Has(c) {
			t.Errorf("no metrics for accent mark %q", c)
		}
	}
}

func TestUnknownGlyph(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Glyph('ы'); !errors.Is(err, ErrUnknownGlyph) {
		t.Fatalf("error = %v, want ErrUnknownGlyph", err)
	}
	if m.Has('ы') {
		t.Errorf("Has reported a missing glyph")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad_yaml", "params: [", "unable to parse"},
		{"multi_rune_key", "params:\n  x_height: 0.431\nglyphs:\n  ab: {width: 0.5}\n", "not a single rune"},
		{"missing_x_height", "glyphs:\n  a: {width: 0.5}\n", "x_height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadReportsAllBadKeys(t *testing.T) {
	data := "params:\n  x_height: 0.431\nglyphs:\n  ab: {width: 0.5}\n  cd: {width: 0.5}\n"
	_, err := Load([]byte(data))
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if !strings.Contains(err.Error(), `"ab"`) || !strings.Contains(err.Error(), `"cd"`) {
		t.Errorf("error %q does not list both bad keys", err)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	if err := os.WriteFile(path, defaultMetrics, 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Has('x') {
		t.Errorf("loaded table is missing x")
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
