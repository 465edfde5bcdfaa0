// Package compose implements the compose subcommand: it reads expression
// documents and produces the requested output artifacts.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mbx/common"
	"mbx/font"
	"mbx/state"
)

// Run is the compose subcommand action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compose")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format, err = common.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to mathml", zap.Error(err))
		env.Format = common.OutputFmtMathml
	}
	env.Overwrite = cmd.Bool("overwrite")

	if path := env.Cfg.Fonts.MetricsPath; len(path) > 0 {
		if env.Metrics, err = font.Open(path); err != nil {
			return fmt.Errorf("unable to load font metrics from %q: %w", path, err)
		}
		log.Debug("Using external font metrics", zap.String("path", path))
	} else if env.Metrics, err = font.Default(); err != nil {
		return fmt.Errorf("unable to load embedded font metrics: %w", err)
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles a single file or recursively a directory of expression
// documents.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("unable to access source: %w", err)
	}
	if !info.IsDir() {
		return processFile(ctx, src, dst, log)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		return processFile(ctx, path, dst, log)
	})
}
