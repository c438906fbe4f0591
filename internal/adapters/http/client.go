package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/ports"
	"github.com/lexlabs/muse/pkg/log"
)

const wordsEndpoint = "/words"

// metadataFlags asks the service to include syllable counts with each word.
const metadataFlags = "s"

// Client implements ports.WordSource over a Datamuse-style HTTP API.
type Client struct {
	base   string
	client ports.HTTPClient
	logger log.Logger
}

var _ ports.WordSource = (*Client)(nil)

// NewClient creates a word source against the given base URL.
// base must not carry a trailing slash.
func NewClient(base string, client ports.HTTPClient, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Client{
		base:   base,
		client: client,
		logger: logger,
	}
}

// Lookup fetches associations for the query's term.
func (c *Client) Lookup(ctx context.Context, q domain.Query) ([]domain.Word, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("querying word service",
		log.String("term", q.Term),
		log.String("relation", string(q.Relation)),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("service returned %d: %s", resp.StatusCode, string(body))
	}

	var words []domain.Word
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("word service responded", log.Int("results", len(words)))
	return words, nil
}

// lookupURL builds the query URL for a validated query.
func (c *Client) lookupURL(q domain.Query) string {
	params := url.Values{}
	params.Set(q.Relation.Param(), q.Term)
	params.Set("md", metadataFlags)
	if q.Max > 0 {
		params.Set("max", strconv.Itoa(q.Max))
	}
	return c.base + wordsEndpoint + "?" + params.Encode()
}
