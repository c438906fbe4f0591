package ports

import "context"

// Exporter writes a lookup result to external storage as JSON.
// Implementations must write atomically so an interrupted export never
// leaves a partial file behind.
type Exporter interface {
	Export(ctx context.Context, path string, result any) error
}
