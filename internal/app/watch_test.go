package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lexlabs/muse/internal/domain"
)

// syncBuffer is a goroutine-safe writer for watcher output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// termSource echoes the queried term back as its only result.
type termSource struct{}

func (termSource) Lookup(ctx context.Context, q domain.Query) ([]domain.Word, error) {
	return []domain.Word{{Word: "echo:" + q.Term}}, nil
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWatcher_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	terms := filepath.Join(dir, "terms.txt")
	if err := os.WriteFile(terms, []byte("orange\n"), 0o644); err != nil {
		t.Fatalf("write terms: %v", err)
	}

	out := &syncBuffer{}
	w := NewWatcher(WatchConfig{
		Path:     terms,
		Relation: domain.Rhymes,
		Debounce: 10 * time.Millisecond,
	}, NewPipeline(termSource{}, nil), out, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Initial run happens before any file event.
	waitFor(t, 2*time.Second, func() bool {
		return strings.Contains(out.String(), "echo:orange")
	})

	if err := os.WriteFile(terms, []byte("purple\n"), 0o644); err != nil {
		t.Fatalf("rewrite terms: %v", err)
	}
	waitFor(t, 2*time.Second, func() bool {
		return strings.Contains(out.String(), "echo:purple")
	})

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestReadTerm(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "terms.txt")
	if err := os.WriteFile(path, []byte("\n\n  cat  \ndog\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	term, err := readTerm(path)
	if err != nil {
		t.Fatalf("readTerm returned error: %v", err)
	}
	if term != "cat" {
		t.Errorf("term = %q, want cat", term)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	term, err = readTerm(empty)
	if err != nil || term != "" {
		t.Errorf("readTerm(empty) = %q, %v; want empty, nil", term, err)
	}

	if _, err := readTerm(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
