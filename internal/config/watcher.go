package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/rs/zerolog"
)

// Update carries a reloaded option set or the error that prevented it.
type Update struct {
	Options progress.Options
	Err     error
}

// Watcher reloads an option file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temp file over the original are seen.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	updates  chan Update
	log      zerolog.Logger
}

// NewWatcher prepares a watcher for path. Call Run to start it.
func NewWatcher(path string, debounce time.Duration, log zerolog.Logger) (*Watcher, error) {
	if _, err := FormatFor(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fw,
		updates:  make(chan Update, 1),
		log:      log,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Updates delivers reloads. It is closed when Run returns.
func (w *Watcher) Updates() <-chan Update { return w.updates }

// Run processes file events until ctx is done. Bursts of events within the
// debounce window produce a single reload.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug().Str("file", w.path).Str("op", event.Op.String()).Msg("config changed")
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watch error")

		case <-timer.C:
			opts, err := Load(w.path)
			if err != nil {
				w.log.Warn().Err(err).Msg("config reload failed")
			} else {
				w.log.Info().Str("file", w.path).Msg("config reloaded")
			}
			select {
			case w.updates <- Update{Options: opts, Err: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
