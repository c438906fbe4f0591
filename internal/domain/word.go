package domain

import (
	"fmt"
	"strings"
)

// Word is a single result from the word-association service.
// JSON tags match the service's wire shape.
type Word struct {
	// Word is the associated word itself.
	Word string `json:"word"`

	// Score is the service's relevance ranking; higher is a closer match.
	Score int `json:"score,omitempty"`

	// NumSyllables is the syllable count, present when syllable metadata
	// is requested.
	NumSyllables int `json:"numSyllables,omitempty"`

	// Tags carries part-of-speech and pronunciation markers.
	Tags []string `json:"tags,omitempty"`
}

// Record converts the word into the loose record form used by the grouper's
// field rules. Field names match the JSON tags.
func (w Word) Record() map[string]any {
	rec := map[string]any{
		"word":         w.Word,
		"score":        w.Score,
		"numSyllables": w.NumSyllables,
	}
	if len(w.Tags) > 0 {
		rec["tags"] = strings.Join(w.Tags, ",")
	}
	return rec
}

// Relation identifies the kind of word association to look up.
type Relation string

// Supported lookup relations and the query parameter each maps to.
const (
	Rhymes      Relation = "rhymes"
	MeansLike   Relation = "means-like"
	SoundsLike  Relation = "sounds-like"
	SpelledLike Relation = "spelled-like"
)

// Param returns the service query parameter for the relation.
func (r Relation) Param() string {
	switch r {
	case Rhymes:
		return "rel_rhy"
	case MeansLike:
		return "ml"
	case SoundsLike:
		return "sl"
	case SpelledLike:
		return "sp"
	default:
		return ""
	}
}

// ParseRelation maps a CLI string to a Relation. It accepts the canonical
// names plus a few common shorthands.
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rhymes", "rhyme", "rhy":
		return Rhymes, nil
	case "means-like", "means", "ml", "similar":
		return MeansLike, nil
	case "sounds-like", "sounds", "sl":
		return SoundsLike, nil
	case "spelled-like", "spelled", "sp":
		return SpelledLike, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRelation, s)
	}
}

// Query describes one lookup against the word service.
type Query struct {
	// Term is the word to look up associations for.
	Term string

	// Relation selects the association kind.
	Relation Relation

	// Max caps the number of results; zero means the service default.
	Max int
}

// Validate checks the query for use against the service.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Term) == "" {
		return ErrEmptyTerm
	}
	if q.Relation.Param() == "" {
		return fmt.Errorf("%w: %q", ErrUnknownRelation, string(q.Relation))
	}
	if q.Max < 0 {
		return fmt.Errorf("%w: max must not be negative", ErrInvalidQuery)
	}
	return nil
}
