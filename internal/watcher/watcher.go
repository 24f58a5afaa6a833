// Package watcher watches a local prompts directory and announces, with
// debouncing, when prompt files appear, change or disappear.
package watcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/pubsub"
)

// promptSuffixes are the file names the backend lists as prompts.
var promptSuffixes = []string{".prompt.yml", ".prompt.yaml", ".prompt.json"}

// Watcher monitors a prompts directory tree and publishes a ChangedEvent,
// whose payload is the last changed path, once activity settles.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	debounce  time.Duration
	broker    *pubsub.Broker[string]
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Dir         string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:         dir,
		DebounceDur: 200 * time.Millisecond,
	}
}

// New creates a watcher for cfg.Dir.
func New(cfg Config) (*Watcher, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("prompts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("prompts directory %s is not a directory", cfg.Dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		root:      cfg.Dir,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBrokerWithBuffer[string](1),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker change notifications are published on.
func (w *Watcher) Broker() *pubsub.Broker[string] {
	return w.broker
}

// Start adds the directory tree and begins watching.
func (w *Watcher) Start() error {
	if err := w.addTree(w.root); err != nil {
		return err
	}
	log.Info(log.CatWatcher, "watching prompts", "dir", w.root)

	go w.loop()
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.broker.Close()
	return err
}

// addTree watches dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending string
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil && !errors.Is(err, fs.ErrNotExist) {
						log.ErrorErr(log.CatWatcher, "watching new directory failed", err, "dir", event.Name)
					}
					// Files may have landed before the directory was added.
					pending = event.Name
					timer = w.arm(timer)
					continue
				}
			}

			if !isRelevantEvent(event) {
				continue
			}

			log.Debug(log.CatWatcher, "prompt file changed", "path", event.Name, "op", event.Op.String())
			pending = event.Name
			timer = w.arm(timer)

		case <-timerC(timer):
			if pending != "" {
				w.broker.Publish(pubsub.ChangedEvent, pending)
				pending = ""
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// arm starts or restarts the debounce timer.
func (w *Watcher) arm(timer *time.Timer) *time.Timer {
	if timer == nil {
		return time.NewTimer(w.debounce)
	}
	if !timer.Stop() {
		// Drain the timer channel if it already fired
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(w.debounce)
	return timer
}

func timerC(timer *time.Timer) <-chan time.Time {
	if timer != nil {
		return timer.C
	}
	return nil
}

// isRelevantEvent reports whether event touches a prompt file.
func isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return IsPromptFile(event.Name)
}

// IsPromptFile reports whether name has a prompt file suffix.
func IsPromptFile(name string) bool {
	lower := strings.ToLower(filepath.Base(name))
	for _, suffix := range promptSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
