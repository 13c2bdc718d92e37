// SPDX-License-Identifier: MIT

// Package jobs orchestrates the conversion cycle: read keymap, extract
// layers, decode bindings, render markdown, deliver to stdout or splice
// into a documentation file.
package jobs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/keebtools/zmk2md/internal/docfile"
	"github.com/keebtools/zmk2md/internal/keys"
	"github.com/keebtools/zmk2md/internal/layout"
	xlog "github.com/keebtools/zmk2md/internal/log"
	"github.com/keebtools/zmk2md/internal/zmk"
)

// Config holds the inputs of one conversion cycle.
type Config struct {
	// KeymapPath is the ZMK keymap file to read.
	KeymapPath string
	// ReadmePath is the splice destination; empty means print to stdout.
	ReadmePath string
	// Labels are user display-label overrides for the decoder.
	Labels map[string]string
}

// Status reports the outcome of a conversion cycle.
type Status struct {
	LastRun time.Time
	Layers  int
	Spliced bool
}

// Markdown reads the keymap and renders the full markdown document,
// returning it with the number of layers found. Zero layers is not an
// error; the document then carries only heading and legend.
func Markdown(cfg Config) (string, int, error) {
	raw, err := os.ReadFile(cfg.KeymapPath)
	if err != nil {
		return "", 0, fmt.Errorf("read keymap: %w", err)
	}

	decoder := keys.NewDecoder(cfg.Labels)
	parsed := zmk.Parse(string(raw))
	layers := make([]layout.Layer, 0, len(parsed))
	for _, l := range parsed {
		labels := make([]string, 0, len(l.Bindings))
		for _, b := range l.Bindings {
			labels = append(labels, decoder.Decode(b))
		}
		layers = append(layers, layout.Layer{Name: l.Name, Labels: labels})
	}

	return layout.Document(cfg.KeymapPath, layers), len(layers), nil
}

// Run performs one complete conversion cycle. Without a readme destination
// the markdown goes to stdout. With one, the marked region is replaced in
// place; a missing destination or marker pair is a warning, not a failure.
func Run(cfg Config, stdout io.Writer) (*Status, error) {
	logger := xlog.WithComponent("jobs")
	logger.Info().Str("event", "generate.start").Str("keymap", cfg.KeymapPath).Msg("starting generation")

	md, layers, err := Markdown(cfg)
	if err != nil {
		return nil, err
	}

	status := &Status{LastRun: time.Now(), Layers: layers}
	if layers == 0 {
		logger.Warn().
			Str("event", "generate.no_layers").
			Str("keymap", cfg.KeymapPath).
			Msg("no layer blocks found; document has heading and legend only")
	}

	if cfg.ReadmePath == "" {
		if _, err := fmt.Fprintln(stdout, md); err != nil {
			return nil, fmt.Errorf("write markdown: %w", err)
		}
		logger.Info().
			Str("event", "generate.stdout").
			Int("layers", layers).
			Msg("markdown written to stdout")
		return status, nil
	}

	if err := docfile.Splice(cfg.ReadmePath, md); err != nil {
		if errors.Is(err, docfile.ErrNoMarkers) || errors.Is(err, fs.ErrNotExist) {
			logger.Warn().
				Err(err).
				Str("event", "generate.markers_missing").
				Str("readme", cfg.ReadmePath).
				Msg("could not find markers; destination left unmodified")
			return status, nil
		}
		return nil, fmt.Errorf("splice readme: %w", err)
	}

	status.Spliced = true
	logger.Info().
		Str("event", "generate.spliced").
		Str("readme", cfg.ReadmePath).
		Int("layers", layers).
		Msg("readme updated")
	return status, nil
}
