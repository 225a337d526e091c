package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gtr/internal/config"
	"gtr/internal/execution"
)

// watchDebounce is how long further events are collected into one rerun
const watchDebounce = 200 * time.Millisecond

// WatchCommand handles the watch command
type WatchCommand struct {
	config *config.Config
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(cfg *config.Config) *WatchCommand {
	return &WatchCommand{config: cfg}
}

// Execute runs the suite, then reruns it after every change to a test
// source until the context is cancelled
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := wc.config.GetTestRoot()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, root); err != nil {
		return err
	}

	s := newSuite(wc.config, cmd.OutOrStdout())
	for {
		if _, err := s.run(ctx); err != nil && !errors.Is(err, execution.ErrTestsFailed) {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		s.reporter.PrintHeading("\nWatching %s for changes...", root)
		name, err := waitForChange(ctx, watcher, wc.config.SourceExt)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		s.reporter.PrintHeading("Change detected: %s\n", name)
	}
}

// watchTree adds root and every directory below it to the watcher
func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// isRelevant reports whether an event touches a test source
func isRelevant(ev fsnotify.Event, sourceExt string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Ext(ev.Name) == sourceExt
}

// waitForChange blocks until a test source changes and returns its name.
// Events arriving within watchDebounce of the first one are folded into it.
func waitForChange(ctx context.Context, w *fsnotify.Watcher, sourceExt string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case err, ok := <-w.Errors:
			if !ok {
				return "", errors.New("watcher closed")
			}
			return "", fmt.Errorf("watcher error: %w", err)
		case ev, ok := <-w.Events:
			if !ok {
				return "", errors.New("watcher closed")
			}
			watchCreatedDir(w, ev)
			if !isRelevant(ev, sourceExt) {
				continue
			}
			drain(ctx, w, watchDebounce)
			return ev.Name, nil
		}
	}
}

// watchCreatedDir adds a directory created below the root to the watcher
func watchCreatedDir(w *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&fsnotify.Create == 0 {
		return
	}
	info, err := os.Stat(ev.Name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := watchTree(w, ev.Name); err != nil {
		log.Warningf("Failed to watch new directory %s: %v", ev.Name, err)
	}
}

// drain discards events until the watcher has been quiet for d.
// Directories created meanwhile are still added to the watcher.
func drain(ctx context.Context, w *fsnotify.Watcher, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			watchCreatedDir(w, ev)
			log.Debugf("Coalesced change %s", ev.Name)
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(d)
		}
	}
}
