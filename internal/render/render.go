// Package render formats lookup results for terminal and machine output.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/group"
)

// Words writes a flat result list, one word per line, in service rank order.
func Words(w io.Writer, words []domain.Word) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(w, line(word)); err != nil {
			return err
		}
	}
	return nil
}

// Groups writes a grouped result with one header per key, keys in the
// result's sorted order.
func Groups(w io.Writer, res *group.Result) error {
	var err error
	res.Each(func(key any, records []group.Record) {
		if err != nil {
			return
		}
		if _, werr := fmt.Fprintf(w, "%v (%d)\n", key, len(records)); werr != nil {
			err = werr
			return
		}
		for _, rec := range records {
			if _, werr := fmt.Fprintf(w, "  %v\n", rec["word"]); werr != nil {
				err = werr
				return
			}
		}
	})
	return err
}

// GroupsJSON writes a grouped result as a JSON object, keys in sorted order.
func GroupsJSON(w io.Writer, res *group.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WordsJSON writes a flat result list as a JSON array.
func WordsJSON(w io.Writer, words []domain.Word) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if words == nil {
		words = []domain.Word{}
	}
	return enc.Encode(words)
}

func line(word domain.Word) string {
	s := word.Word
	if word.NumSyllables > 0 {
		s += fmt.Sprintf("  [%d syl]", word.NumSyllables)
	}
	if word.Score > 0 {
		s += fmt.Sprintf("  score=%d", word.Score)
	}
	return s
}
