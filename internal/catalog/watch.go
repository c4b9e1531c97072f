package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"llmboard/internal/common/fsutil"
)

// Watch reloads the dataset whenever its file changes, until ctx is done.
// The parent directory is watched so that atomic saves (write to a temp
// file, then rename) are seen. Bursts of events are coalesced. A reload
// that fails leaves the previous snapshot in place.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.cfg.DatasetPath == "" {
		return errors.New("watch: no dataset path configured")
	}
	target, err := fsutil.Resolve(c.cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close() //nolint:errcheck

	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	c.log.Info().Str("path", target).Msg("watching dataset")

	fire := make(chan struct{}, 1)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !affects(ev, target) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(c.cfg.WatchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := c.Load(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				c.log.Error().Err(err).Msg("dataset reload failed, keeping previous snapshot")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Warn().Err(err).Msg("dataset watcher error")
		}
	}
}

// affects reports whether ev may have changed the file at target. Editors
// and atomic writers replace files by renaming a sibling over them, so a
// Create or Rename with the same base name counts too.
func affects(ev fsnotify.Event, target string) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Clean(ev.Name)
	if name == target {
		return true
	}
	return filepath.Base(name) == filepath.Base(target) && (ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename))
}
