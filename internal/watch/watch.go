// SPDX-License-Identifier: MIT

// Package watch reloads a network file into a running planner whenever the
// file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/network"
)

// DefaultQuietPeriod is how long the file must stay unchanged before a reload.
const DefaultQuietPeriod = 200 * time.Millisecond

// Reloader accepts a freshly parsed network. *planner.Planner implements it.
type Reloader interface {
	Reload(ctx context.Context, n *network.Network) error
}

// Result describes one reload attempt.
type Result struct {
	Path    string
	Network *network.Network // nil on failure
	Err     error
}

// Watcher watches one network file.
type Watcher struct {
	path     string
	target   Reloader
	quiet    time.Duration
	onReload func(Result)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithQuietPeriod overrides DefaultQuietPeriod. Panics if d <= 0.
func WithQuietPeriod(d time.Duration) Option {
	if d <= 0 {
		panic("watch: WithQuietPeriod(d<=0)")
	}
	return func(w *Watcher) {
		w.quiet = d
	}
}

// OnReload registers a callback invoked after every reload attempt.
func OnReload(fn func(Result)) Option {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// New returns a watcher that feeds path into target.
func New(path string, target Reloader, opts ...Option) *Watcher {
	w := &Watcher{path: filepath.Clean(path), target: target, quiet: DefaultQuietPeriod}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run blocks until ctx is done. It watches the file's directory rather than
// the file itself so that editors which replace the file on save are seen.
func (w *Watcher) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	logger.Info("watching network file", "path", w.path)

	timer := time.NewTimer(w.quiet)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("network file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.quiet)

		case <-timer.C:
			w.reload(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	logger := logging.FromContext(ctx)
	res := Result{Path: w.path}

	n, err := network.Load(w.path)
	if err == nil {
		err = w.target.Reload(ctx, n)
	}
	if err != nil {
		res.Err = err
		logger.Warn("reload failed; keeping previous network", "path", w.path, "error", err)
	} else {
		res.Network = n
		logger.Info("network reloaded", "path", w.path, "network", n.Name)
	}
	if w.onReload != nil {
		w.onReload(res)
	}
}
