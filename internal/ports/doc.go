// Package ports defines the interfaces that connect the application layer to
// infrastructure adapters.
//
// The application layer (internal/app) depends only on these interfaces;
// adapters (internal/adapters) supply the concrete implementations backed by
// HTTP and the file system. Keeping the boundary here lets the pipeline be
// tested against stubs and swapped onto other transports without touching
// the lookup logic.
//
//   - [WordSource]: queries the remote word-association service
//   - [Exporter]: writes grouped results to storage
//   - [HTTPClient]: HTTP request abstraction for dependency injection
package ports
