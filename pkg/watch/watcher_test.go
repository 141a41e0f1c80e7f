package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

type changes struct {
	mu    sync.Mutex
	calls [][]string
	ch    chan struct{}
}

func newChanges() *changes {
	return &changes{ch: make(chan struct{}, 16)}
}

func (c *changes) record(paths []string) {
	c.mu.Lock()
	c.calls = append(c.calls, paths)
	c.mu.Unlock()
	c.ch <- struct{}{}
}

func (c *changes) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-c.ch:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[len(c.calls)-1]
}

func startWatcher(t *testing.T, config *Config, onChange ChangeFunc) *Watcher {
	t.Helper()
	w, err := New(config, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, onChange) }()

	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Watch() error = %v", err)
		}
		_ = w.Close()
	})

	// Let the watch loop register its paths.
	time.Sleep(100 * time.Millisecond)
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Debounce != 100*time.Millisecond {
		t.Errorf("Debounce = %v, want 100ms", config.Debounce)
	}
	if len(config.Extensions) != 1 || config.Extensions[0] != ".xml" {
		t.Errorf("Extensions = %v, want [.xml]", config.Extensions)
	}
	if !config.SkipHidden {
		t.Error("SkipHidden = false, want true")
	}
}

func TestWatch_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "flow.xml")
	other := filepath.Join(dir, "other.xml")
	writeFile(t, file, "<Param/>")

	c := newChanges()
	startWatcher(t, &Config{Paths: []string{file}, Debounce: 50 * time.Millisecond}, c.record)

	writeFile(t, other, "<Param/>")
	writeFile(t, file, "<Param><Mesh/></Param>")

	got := c.wait(t)
	if len(got) != 1 || got[0] != file {
		t.Errorf("changed paths = %v, want [%s]", got, file)
	}
}

func TestWatch_DirectoryFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	c := newChanges()
	startWatcher(t, &Config{
		Paths:      []string{dir},
		Debounce:   50 * time.Millisecond,
		Extensions: []string{".xml"},
		SkipHidden: true,
	}, c.record)

	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	writeFile(t, filepath.Join(dir, ".hidden.xml"), "<Param/>")
	writeFile(t, filepath.Join(dir, "bc.XML"), "<Param/>")

	got := c.wait(t)
	want := filepath.Join(dir, "bc.XML")
	if len(got) != 1 || got[0] != want {
		t.Errorf("changed paths = %v, want [%s]", got, want)
	}
}

func TestWatch_NewSubdirectory(t *testing.T) {
	dir := t.TempDir()
	c := newChanges()
	startWatcher(t, &Config{Paths: []string{dir}, Debounce: 50 * time.Millisecond, Extensions: []string{".xml"}}, c.record)

	sub := filepath.Join(dir, "cases")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	writeFile(t, filepath.Join(sub, "a.xml"), "<Param/>")

	got := c.wait(t)
	want := filepath.Join(sub, "a.xml")
	if len(got) != 1 || got[0] != want {
		t.Errorf("changed paths = %v, want [%s]", got, want)
	}
}

func TestWatch_MissingPath(t *testing.T) {
	w, err := New(&Config{Paths: []string{filepath.Join(t.TempDir(), "missing.xml")}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch(context.Background(), func([]string) {}); err == nil {
		t.Error("Watch() error = nil, want error for missing path")
	}
}

func TestWatch_AlreadyRunning(t *testing.T) {
	dir := t.TempDir()
	w := startWatcher(t, &Config{Paths: []string{dir}}, func([]string) {})

	err := w.Watch(context.Background(), func([]string) {})
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Watch() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "explicit.param")
	w := &Watcher{
		config: &Config{Extensions: []string{".xml"}, SkipHidden: true},
		files:  map[string]bool{file: true},
		trees:  []string{filepath.Join(dir, "tree")},
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"explicit file", fsnotify.Event{Name: file, Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: file, Op: fsnotify.Chmod}, false},
		{"tree xml", fsnotify.Event{Name: filepath.Join(dir, "tree", "a.xml"), Op: fsnotify.Write}, true},
		{"tree other extension", fsnotify.Event{Name: filepath.Join(dir, "tree", "a.yaml"), Op: fsnotify.Write}, false},
		{"tree hidden", fsnotify.Event{Name: filepath.Join(dir, "tree", ".a.xml"), Op: fsnotify.Write}, false},
		{"outside tree", fsnotify.Event{Name: filepath.Join(dir, "treehouse", "a.xml"), Op: fsnotify.Write}, false},
		{"removed", fsnotify.Event{Name: filepath.Join(dir, "tree", "a.xml"), Op: fsnotify.Remove}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.relevant(tt.event); got != tt.want {
				t.Errorf("relevant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebouncer_CollectsPaths(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	c := newChanges()

	d.Trigger("b.xml", c.record)
	d.Trigger("a.xml", c.record)
	d.Trigger("b.xml", c.record)

	got := c.wait(t)
	if len(got) != 2 || got[0] != "a.xml" || got[1] != "b.xml" {
		t.Errorf("paths = %v, want [a.xml b.xml]", got)
	}

	select {
	case <-c.ch:
		t.Error("callback ran more than once")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger("a.xml", func([]string) { calls.Add(1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("callback ran %d times after Cancel, want 0", n)
	}
}
