// Package common keeps enums shared between the CLI surface and the
// composition pipeline so that neither has to import the other.
package common

import (
	"fmt"
	"strings"
)

// Specification of requested output type.
type OutputFmt int

const (
	OutputFmtMathml OutputFmt = iota
	OutputFmtBoxes
	OutputFmtSvg
	OutputFmtPng
)

var outputFmtNames = []string{"mathml", "boxes", "svg", "png"}

func (o OutputFmt) String() string {
	if o < 0 || int(o) >= len(outputFmtNames) {
		return fmt.Sprintf("OutputFmt(%d)", int(o))
	}
	return outputFmtNames[o]
}

// Ext returns output file extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtMathml:
		return ".mml"
	case OutputFmtBoxes:
		return ".boxes.txt"
	case OutputFmtSvg:
		return ".svg"
	case OutputFmtPng:
		return ".png"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Raster reports whether the format requires rasterization.
func (o OutputFmt) Raster() bool {
	return o == OutputFmtPng
}

// ParseOutputFmt converts a name to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(name, n) {
			return OutputFmt(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not a valid OutputFmt", name)
}

// OutputFmtNames returns names of all supported output formats.
func OutputFmtNames() []string {
	out := make([]string, len(outputFmtNames))
	copy(out, outputFmtNames)
	return out
}
