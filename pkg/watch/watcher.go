package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrAlreadyRunning is returned when Watch is called twice.
var ErrAlreadyRunning = errors.New("watcher already running")

// Config configures a Watcher.
type Config struct {
	// Paths are the files and directories to watch. Directories are
	// watched recursively.
	Paths []string

	// Debounce is the quiet period after the last change before the
	// callback runs (default: 100ms).
	Debounce time.Duration

	// Extensions restricts files reported from watched directories.
	// Explicitly listed files are always reported.
	Extensions []string

	// SkipHidden ignores dot files and dot directories.
	SkipHidden bool
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() *Config {
	return &Config{
		Debounce:   100 * time.Millisecond,
		Extensions: []string{".xml"},
		SkipHidden: true,
	}
}

// ChangeFunc receives the sorted set of changed paths.
type ChangeFunc func(paths []string)

// Watcher watches documents for changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *Debouncer

	// explicitly listed files, keyed by cleaned absolute path
	files map[string]bool
	// watched directory trees, cleaned absolute paths
	trees []string

	mu      sync.Mutex
	running bool
}

// New creates a Watcher. Call Close when it is no longer needed.
func New(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	interval := config.Debounce
	if interval <= 0 {
		interval = DefaultConfig().Debounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(interval),
		files:    make(map[string]bool),
	}, nil
}

// Watch blocks until ctx is canceled, calling onChange after each burst of
// changes. Calls to onChange are never concurrent.
func (w *Watcher) Watch(ctx context.Context, onChange ChangeFunc) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	for _, p := range w.config.Paths {
		if err := w.addPath(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	w.logger.Info("watching documents",
		"paths", len(w.config.Paths),
		"debounce_ms", w.debounce.interval.Milliseconds(),
	)

	var callbackMu sync.Mutex
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped")
			w.debounce.Cancel()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())

			if event.Op.Has(fsnotify.Create) {
				w.addCreatedDirectory(event.Name)
			}

			w.debounce.Trigger(event.Name, func(paths []string) {
				callbackMu.Lock()
				defer callbackMu.Unlock()
				onChange(paths)
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.debounce.Cancel()
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// addPath registers a file or directory tree.
func (w *Watcher) addPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	if info.IsDir() {
		w.trees = append(w.trees, abs)
		return w.addDirectory(abs)
	}

	// Editors often replace files on save, which drops a watch on the
	// file itself. Watching the parent keeps events flowing.
	w.files[abs] = true
	return w.watcher.Add(filepath.Dir(abs))
}

func (w *Watcher) addDirectory(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.hidden(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %q: %w", path, err)
		}
		w.logger.Debug("watching directory", "path", path)
		return nil
	})
}

// addCreatedDirectory starts watching a directory created inside a tree.
func (w *Watcher) addCreatedDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || !w.inTree(path) || w.hidden(path) {
		return
	}
	if err := w.addDirectory(path); err != nil {
		w.logger.Warn("failed to watch new directory", "path", path, "error", err)
	}
}

// relevant reports whether an event should trigger the callback.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if w.files[name] {
		return true
	}
	if !w.inTree(name) || w.hidden(name) {
		return false
	}
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			return false
		}
	}
	return w.hasExtension(name)
}

func (w *Watcher) inTree(path string) bool {
	for _, root := range w.trees {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) hidden(path string) bool {
	return w.config.SkipHidden && strings.HasPrefix(filepath.Base(path), ".")
}

func (w *Watcher) hasExtension(path string) bool {
	if len(w.config.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range w.config.Extensions {
		if ext == strings.ToLower(valid) {
			return true
		}
	}
	return false
}

// Debouncer collects paths and runs a callback once no new path has
// arrived for the configured interval.
type Debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	pending  map[string]struct{}
	callback ChangeFunc
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]struct{}),
	}
}

// Trigger records path and restarts the quiet period. The most recent
// callback receives every path recorded since the last flush.
func (d *Debouncer) Trigger(path string, callback ChangeFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}
	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	cb := d.callback
	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	d.pending = make(map[string]struct{})
	d.timer = nil
	d.mu.Unlock()

	if cb == nil || len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	cb(paths)
}

// Cancel drops pending paths without running the callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[string]struct{})
	d.callback = nil
}
