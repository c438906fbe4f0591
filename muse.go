// Package muse looks up word associations (rhymes, similar-meaning words and
// more) from a Datamuse-style service and partitions the results into ordered
// groups.
//
// Example usage:
//
//	client := muse.NewClient("", nil, nil)
//	res, err := client.LookupGrouped(ctx, muse.Query{
//	    Term:     "orange",
//	    Relation: muse.Rhymes,
//	    Max:      50,
//	}, "syllables")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Each(func(key any, words []map[string]any) {
//	    fmt.Println(key, len(words))
//	})
package muse

import (
	"context"
	"net/http"
	"time"

	adapter "github.com/lexlabs/muse/internal/adapters/http"
	"github.com/lexlabs/muse/internal/app"
	"github.com/lexlabs/muse/internal/cliconfig"
	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/group"
	"github.com/lexlabs/muse/pkg/log"
)

// Word is a single result from the word-association service.
type Word = domain.Word

// Query describes one lookup: term, relation and result cap.
type Query = domain.Query

// Relation identifies the kind of word association to look up.
type Relation = domain.Relation

// WordList is an in-memory, session-scoped saved-words list.
type WordList = domain.WordList

// GroupResult is an ordered mapping from group key to the words sharing it.
type GroupResult = group.Result

// Supported lookup relations.
const (
	Rhymes      = domain.Rhymes
	MeansLike   = domain.MeansLike
	SoundsLike  = domain.SoundsLike
	SpelledLike = domain.SpelledLike
)

// DefaultServiceURL is the default word-association service endpoint.
const DefaultServiceURL = cliconfig.DefaultServiceURL

// ParseRelation maps a string to a Relation.
func ParseRelation(s string) (Relation, error) {
	return domain.ParseRelation(s)
}

// NewWordList returns an empty saved-words list.
func NewWordList() *WordList {
	return domain.NewWordList()
}

// Client runs lookups against a word-association service.
type Client struct {
	pipeline *app.Pipeline
}

// NewClient creates a client. Empty serviceURL selects DefaultServiceURL,
// a nil httpClient gets a 15 second timeout, and a nil logger keeps the
// library quiet.
func NewClient(serviceURL string, httpClient *http.Client, logger log.Logger) *Client {
	if serviceURL == "" {
		serviceURL = DefaultServiceURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	source := adapter.NewClient(serviceURL, httpClient, logger)
	return &Client{pipeline: app.NewPipeline(source, logger)}
}

// Lookup fetches associations for the query in service rank order.
func (c *Client) Lookup(ctx context.Context, q Query) ([]Word, error) {
	return c.pipeline.Lookup(ctx, q)
}

// LookupGrouped fetches associations and partitions them by groupBy:
// "syllables", "score", "first-letter", or any raw result field name.
func (c *Client) LookupGrouped(ctx context.Context, q Query, groupBy string) (*GroupResult, error) {
	return c.pipeline.LookupGrouped(ctx, q, groupBy)
}
