package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jebin2/hfsync/internal/client"
	"github.com/jebin2/hfsync/internal/local"
	"github.com/jebin2/hfsync/internal/logging"
)

// Watch uploads every created or written non-hidden file under root to
// repoBase until the context is cancelled.
func (s *Service) Watch(ctx context.Context, root, repoBase string) error {
	w, err := local.NewWatcher(root)
	if err != nil {
		return fmt.Errorf("watch: could not create watcher: %w", err)
	}
	defer w.Close()

	logging.Infof("Watching %s", root)
	go s.consumeWatchEvents(ctx, w, repoBase)
	err = w.Run(ctx)
	if err != nil {
		return fmt.Errorf("watch: error while running watcher: %w", err)
	}
	return nil
}

func (s *Service) consumeWatchEvents(ctx context.Context, w *local.Watcher, repoBase string) {
	for event := range w.Events {
		if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
			continue
		}
		info, err := os.Stat(event.Path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		rel, err := filepath.Rel(w.RootPath, event.Path)
		if err != nil {
			continue
		}
		repoPath := client.JoinRepoPath(repoBase, filepath.ToSlash(rel))

		// Keep watching on upload failure; the next write retriggers it.
		_ = s.Upload(ctx, event.Path, repoPath)
	}
}
