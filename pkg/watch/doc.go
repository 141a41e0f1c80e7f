// Package watch re-runs work when watched documents change on disk.
//
// A Watcher observes files and directories with fsnotify. Changes are
// debounced, so an editor saving a file in several steps yields one
// callback carrying every path touched during the quiet period.
package watch
