// Package app wires the manifest parser, identifier resolver, and Dart
// renderer into the one-shot generate pipeline.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/corey/glyphgen/internal/domain/identifier"
	"github.com/corey/glyphgen/internal/domain/manifest"
	"github.com/corey/glyphgen/internal/domain/render"
)

// Result reports what a run did. MissingInput and Empty are non-fatal
// outcomes: the library call succeeds and the CLI decides the exit
// code.
type Result struct {
	MissingInput bool
	Empty        bool
	Icons        map[string]manifest.Record
	Source       string
	Written      string // output path, empty when nothing was written
}

// Run executes the full pipeline: read the manifest, parse, resolve
// identifier collisions, render Dart, write the output file. The source
// is rendered fully in memory first, so no partial file is ever written
// on a fatal error.
func Run(cfg Config) (*Result, error) {
	res, err := Render(cfg)
	if err != nil || res.MissingInput || res.Empty {
		return res, err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, []byte(res.Source), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	res.Written = cfg.Output
	logrus.Infof("wrote %d icons to %s", len(res.Icons), cfg.Output)
	return res, nil
}

// Render runs the pipeline up to (not including) the filesystem write.
// Used by Run, dry runs, and inspect.
func Render(cfg Config) (*Result, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		logrus.Errorf("cannot read manifest %s: %v", cfg.Input, err)
		return &Result{MissingInput: true}, nil
	}

	records, err := manifest.Parse(data, identifier.NewNamer())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		logrus.Warnf("manifest %s has no usable glyph entries, nothing to generate", cfg.Input)
		return &Result{Empty: true}, nil
	}

	icons := identifier.Resolve(records)
	src := render.Dart(icons, render.Options{
		ClassName:  cfg.ClassName,
		FontFamily: cfg.FontFamily,
		Helpers:    cfg.Helpers,
	})
	return &Result{Icons: icons, Source: src}, nil
}
