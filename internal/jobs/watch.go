// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fsnotify/fsnotify"

	xlog "github.com/keebtools/zmk2md/internal/log"
)

// Watch re-runs the conversion whenever the keymap file changes, until ctx
// is cancelled. Events are debounced so one save does not trigger multiple
// regenerations. Failures of an individual cycle are logged and watching
// continues.
func Watch(ctx context.Context, cfg Config, debounce time.Duration, stdout io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close() // Ignore close error on shutdown
	}()

	if err := watcher.Add(cfg.KeymapPath); err != nil {
		return fmt.Errorf("watch keymap file: %w", err)
	}

	logger := xlog.WithComponent("watch")
	logger.Info().
		Str("event", "watch.started").
		Str("path", cfg.KeymapPath).
		Dur("debounce", debounce).
		Msg("watching keymap file for changes")

	// Debounce timer to avoid multiple runs for rapid file changes
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str("event", "watch.stopped").Msg("keymap watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Write and Create cover the save strategies of common editors
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Debug().
					Str("event", "watch.file_changed").
					Str("op", event.Op.String()).
					Msg("keymap file changed")

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					if _, err := Run(cfg, stdout); err != nil {
						logger.Error().
							Err(err).
							Str("event", "watch.run_failed").
							Msg("regeneration failed")
					}
				})
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().
				Err(werr).
				Str("event", "watch.error").
				Msg("keymap watcher error")
		}
	}
}
