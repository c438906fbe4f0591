package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexlabs/muse/internal/ports"
)

// Exporter implements ports.Exporter by writing lookup results to a JSON
// file. Writes are atomic (temp file, then rename) so an interrupted export
// never leaves a partial file at the target path.
type Exporter struct{}

var _ ports.Exporter = (*Exporter)(nil)

// NewExporter creates a new file exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the result to path, creating parent directories as needed.
// Grouped results keep their sorted key order in the output object.
func (e *Exporter) Export(ctx context.Context, path string, result any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return os.Rename(tmp, path)
}
