// SPDX-License-Identifier: MIT

// Package docfile splices generated markdown into documentation files
// between marker comments.
package docfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/renameio/v2"

	xlog "github.com/keebtools/zmk2md/internal/log"
)

// Marker lines delimiting the managed region. Everything between the first
// occurrence of each is replaced; the markers themselves are preserved.
const (
	StartMarker = "<!-- KEYMAP_START -->"
	EndMarker   = "<!-- KEYMAP_END -->"
)

// ErrNoMarkers reports a destination file that lacks the marker pair.
var ErrNoMarkers = errors.New("keymap markers not found")

// Splice rewrites path, replacing the marked region with markdown plus a
// blank line before the end marker. The write is atomic: the destination is
// replaced via a fsynced temp file rename, so a reader never observes a
// half-written file. A missing file surfaces as fs.ErrNotExist, a present
// file without both markers as ErrNoMarkers; callers treat both as
// non-fatal. Splicing the same markdown twice is idempotent.
func Splice(path, markdown string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read destination: %w", err)
	}

	content := string(raw)
	start := strings.Index(content, StartMarker)
	end := strings.Index(content, EndMarker)
	if start < 0 || end < 0 {
		return fmt.Errorf("%w: %s", ErrNoMarkers, path)
	}

	next := content[:start] + StartMarker + "\n" + markdown + "\n" + EndMarker + content[end+len(EndMarker):]

	pending, err := renameio.NewPendingFile(path, renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	logger := xlog.WithComponent("docfile")
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			logger.Debug().Err(cerr).Msg("cleanup pending file")
		}
	}()

	if _, err := io.WriteString(pending, next); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
