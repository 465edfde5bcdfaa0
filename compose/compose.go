package compose

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"mbx/box"
	"mbx/common"
	"mbx/layout"
	"mbx/mathml"
	"mbx/mexpr"
	"mbx/render"
	"mbx/state"
)

// processFile composes one expression document into the requested output
// artifact next to dst.
func processFile(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	doc, err := mexpr.ReadDocument(f)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", src, err)
	}
	env.Rpt.Store(filepath.Join("input", filepath.Base(src)), src)

	out := filepath.Join(dst, outputName(doc, src)+env.Format.Ext())
	if _, err := os.Stat(out); err == nil && !env.Overwrite {
		return fmt.Errorf("destination %s already exists", out)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}

	log.Debug("Composing", zap.String("source", src), zap.String("output", out), zap.String("id", doc.ID))

	data, err := produce(ctx, doc, env.Format)
	if err != nil {
		return fmt.Errorf("unable to compose %s: %w", src, err)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	env.Rpt.StoreData(filepath.Join("output", filepath.Base(out)), data)
	return nil
}

// produce renders the document into the requested format.
func produce(ctx context.Context, doc *mexpr.Document, format common.OutputFmt) ([]byte, error) {
	env := state.EnvFromContext(ctx)

	if format == common.OutputFmtMathml {
		// Semantic output works from the unresolved tree, no layout pass.
		mml, err := mathml.Document(doc.Root)
		if err != nil {
			return nil, err
		}
		s, err := mml.WriteToString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}

	b, err := layout.Expression(doc.Root, layout.Options{Font: env.Metrics, Style: box.TextStyle})
	if err != nil {
		return nil, err
	}

	switch format {
	case common.OutputFmtBoxes:
		return []byte(b.String()), nil
	case common.OutputFmtSvg, common.OutputFmtPng:
		svg, err := render.BoxSVG(b, env.Cfg.Render.EmPixels)
		if err != nil {
			return nil, err
		}
		s, err := svg.WriteToString()
		if err != nil {
			return nil, err
		}
		if format == common.OutputFmtSvg {
			return []byte(s), nil
		}
		img, err := render.RasterizeSVG([]byte(s), 0, 0)
		if err != nil {
			return nil, err
		}
		img = render.FitWidth(img, env.Cfg.Render.MaxWidth)
		var buf bytes.Buffer
		if err := render.EncodePNG(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// outputName derives the output base name: slugified document title, then
// source file name, then document ID.
func outputName(doc *mexpr.Document, src string) string {
	if s := slug.Make(doc.Title); len(s) > 0 {
		return s
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if s := slug.Make(base); len(s) > 0 {
		return s
	}
	return doc.ID
}
