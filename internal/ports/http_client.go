package ports

import "net/http"

// HTTPClient abstracts HTTP transport for dependency injection.
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
