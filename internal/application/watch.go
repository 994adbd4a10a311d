package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"langtool/internal/ports/input"
)

// WatchDebounce groups the bursts of events editors emit on save.
const WatchDebounce = 200 * time.Millisecond

// Watch runs an export, then runs it again each time req.Input changes, until
// ctx is cancelled. A failing run is logged and watching goes on.
// The parent directory is watched so that rename-on-save editors are seen.
func (s *ExportService) Watch(ctx context.Context, req input.ExportRequest) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(req.Input)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	s.runLogged(ctx, req)
	// Only the first run may seed the sample file.
	req.CreateSample = false

	timer := time.NewTimer(WatchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(WatchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", "err", err)
		case <-timer.C:
			s.runLogged(ctx, req)
		}
	}
}

// runLogged ignores the error: Export has already reported it.
func (s *ExportService) runLogged(ctx context.Context, req input.ExportRequest) {
	_, _ = s.Export(ctx, req)
}
