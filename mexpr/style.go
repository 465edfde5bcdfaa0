package mexpr

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a single CSS-style property on a styling wrapper.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered inline declaration list. Styling wrappers are
// metric-transparent: declarations affect paint only, never layout.
type Declarations []Declaration

// Get returns the last value for a property.
func (d Declarations) Get(property string) (string, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Property == property {
			return d[i].Value, true
		}
	}
	return "", false
}

// String reassembles the declarations into inline CSS form.
func (d Declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		parts = append(parts, decl.Property+":"+decl.Value)
	}
	return strings.Join(parts, ";")
}

// ParseDeclarations parses an inline declaration list ("color:#a00;
// font-style: italic").
func ParseDeclarations(s string) (Declarations, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	p := css.NewParser(parse.NewInputString(s), true)
	var out Declarations
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("unable to parse style %q: %w", s, err)
			}
			return out, nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			var parts []string
			for _, v := range p.Values() {
				if v.TokenType != css.WhitespaceToken {
					parts = append(parts, string(v.Data))
				}
			}
			out = append(out, Declaration{Property: string(data), Value: strings.Join(parts, " ")})
		}
	}
}
