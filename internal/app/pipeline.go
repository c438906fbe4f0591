package app

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/group"
	"github.com/lexlabs/muse/internal/ports"
	"github.com/lexlabs/muse/pkg/log"
)

// Pipeline runs word lookups and grouping against a word source.
type Pipeline struct {
	source ports.WordSource
	logger log.Logger
}

// NewPipeline creates a pipeline over the given source.
func NewPipeline(source ports.WordSource, logger log.Logger) *Pipeline {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Pipeline{source: source, logger: logger}
}

// Lookup fetches associations for the query in service rank order.
func (p *Pipeline) Lookup(ctx context.Context, q domain.Query) ([]domain.Word, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	words, err := p.source.Lookup(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", q.Term, err)
	}
	p.logger.Info("lookup complete",
		log.String("term", q.Term),
		log.String("relation", string(q.Relation)),
		log.Int("results", len(words)),
	)
	return words, nil
}

// LookupGrouped fetches associations and partitions them by groupBy.
func (p *Pipeline) LookupGrouped(ctx context.Context, q domain.Query, groupBy string) (*group.Result, error) {
	words, err := p.Lookup(ctx, q)
	if err != nil {
		return nil, err
	}

	records := make([]group.Record, len(words))
	for i, w := range words {
		records[i] = w.Record()
	}

	res, err := group.By(records, KeyRule(groupBy))
	if err != nil {
		return nil, fmt.Errorf("group by %q: %w", groupBy, err)
	}
	return res, nil
}

// KeyRule maps a user-facing group-by name to a grouping rule. The aliases
// "syllables", "score" and "first-letter" cover the common cases; any other
// non-empty name is read as a raw result field.
func KeyRule(groupBy string) group.Rule {
	name := strings.ToLower(strings.TrimSpace(groupBy))
	switch name {
	case "syllables":
		return group.Field("numSyllables")
	case "score":
		return group.Field("score")
	case "first-letter":
		return group.Derive(func(rec group.Record) (any, error) {
			w, _ := rec["word"].(string)
			if w == "" {
				return nil, fmt.Errorf("record has no word field")
			}
			r, _ := utf8.DecodeRuneInString(strings.ToLower(w))
			return string(r), nil
		})
	default:
		return group.Field(strings.TrimSpace(groupBy))
	}
}
