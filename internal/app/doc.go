// Package app orchestrates the lookup pipeline over the ports layer.
//
// [Pipeline] runs a single lookup, optionally grouping results by a derived
// key. [Watcher] re-runs the pipeline whenever a terms file changes.
// [Session] is the interactive saved-words loop. None of this package touches
// the network or the file system directly beyond fsnotify and reading the
// watched terms file; transports come in through internal/ports.
package app
