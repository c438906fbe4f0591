package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/render"
	"github.com/lexlabs/muse/pkg/log"
)

// DefaultDebounce is the delay between a terms-file change and the re-run.
// Editors fire several events per save; the last one wins.
const DefaultDebounce = 200 * time.Millisecond

// WatchConfig configures a terms-file watcher.
type WatchConfig struct {
	// Path is the terms file to watch. Its first non-blank line is the
	// lookup term.
	Path string

	// Relation and Max apply to every re-run.
	Relation domain.Relation
	Max      int

	// GroupBy selects grouped output when non-empty.
	GroupBy string

	// JSON selects JSON output instead of text.
	JSON bool

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
}

// Watcher re-runs a lookup whenever the terms file changes, rendering each
// run to its output writer. It runs until the context is canceled.
type Watcher struct {
	cfg      WatchConfig
	pipeline *Pipeline
	out      io.Writer
	logger   log.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher over the pipeline.
func NewWatcher(cfg WatchConfig, pipeline *Pipeline, out io.Writer, logger log.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		cfg:      cfg,
		pipeline: pipeline,
		out:      out,
		logger:   logger,
	}
}

// Run watches the terms file until ctx is canceled. The current file content
// is looked up once before watching begins.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode would go stale.
	if err := watcher.Add(filepath.Dir(w.cfg.Path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Path, err)
	}

	w.runOnce(ctx)

	target := filepath.Base(w.cfg.Path)
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleRun(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("terms watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) scheduleRun(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.cfg.Debounce, func() {
		w.runOnce(ctx)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

// runOnce reads the current term and runs the lookup. Failures are logged,
// not fatal: the watch loop outlives a bad write or a flaky network call.
func (w *Watcher) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	term, err := readTerm(w.cfg.Path)
	if err != nil {
		w.logger.Warn("cannot read terms file", log.String("path", w.cfg.Path), log.Err(err))
		return
	}
	if term == "" {
		w.logger.Warn("terms file has no term", log.String("path", w.cfg.Path))
		return
	}

	q := domain.Query{Term: term, Relation: w.cfg.Relation, Max: w.cfg.Max}
	if err := w.render(ctx, q); err != nil {
		w.logger.Error("lookup failed", log.String("term", term), log.Err(err))
	}
}

func (w *Watcher) render(ctx context.Context, q domain.Query) error {
	if w.cfg.GroupBy != "" {
		res, err := w.pipeline.LookupGrouped(ctx, q, w.cfg.GroupBy)
		if err != nil {
			return err
		}
		if w.cfg.JSON {
			return render.GroupsJSON(w.out, res)
		}
		return render.Groups(w.out, res)
	}

	words, err := w.pipeline.Lookup(ctx, q)
	if err != nil {
		return err
	}
	if w.cfg.JSON {
		return render.WordsJSON(w.out, words)
	}
	return render.Words(w.out, words)
}

// readTerm returns the first non-blank line of the terms file.
func readTerm(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t, nil
		}
	}
	return "", nil
}
