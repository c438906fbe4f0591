package domain

import (
	"errors"
	"testing"
)

func TestParseRelation(t *testing.T) {
	tests := []struct {
		in      string
		want    Relation
		wantErr bool
	}{
		{"rhymes", Rhymes, false},
		{"RHYME", Rhymes, false},
		{"means-like", MeansLike, false},
		{"similar", MeansLike, false},
		{"ml", MeansLike, false},
		{"sounds-like", SoundsLike, false},
		{"sp", SpelledLike, false},
		{" rhymes ", Rhymes, false},
		{"antonym", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRelation(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownRelation) {
					t.Fatalf("err = %v, want ErrUnknownRelation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRelation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRelation_Param(t *testing.T) {
	tests := []struct {
		rel  Relation
		want string
	}{
		{Rhymes, "rel_rhy"},
		{MeansLike, "ml"},
		{SoundsLike, "sl"},
		{SpelledLike, "sp"},
		{Relation("bogus"), ""},
	}
	for _, tt := range tests {
		if got := tt.rel.Param(); got != tt.want {
			t.Errorf("Param(%v) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{"valid", Query{Term: "orange", Relation: Rhymes, Max: 10}, nil},
		{"empty term", Query{Relation: Rhymes}, ErrEmptyTerm},
		{"whitespace term", Query{Term: "   ", Relation: Rhymes}, ErrEmptyTerm},
		{"unknown relation", Query{Term: "orange", Relation: "antonym"}, ErrUnknownRelation},
		{"negative max", Query{Term: "orange", Relation: Rhymes, Max: -1}, ErrInvalidQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWord_Record(t *testing.T) {
	w := Word{Word: "forange", Score: 300, NumSyllables: 2, Tags: []string{"n", "prop"}}
	rec := w.Record()

	if rec["word"] != "forange" {
		t.Errorf("word = %v", rec["word"])
	}
	if rec["numSyllables"] != 2 {
		t.Errorf("numSyllables = %v", rec["numSyllables"])
	}
	if rec["tags"] != "n,prop" {
		t.Errorf("tags = %v", rec["tags"])
	}

	bare := Word{Word: "plain"}.Record()
	if _, ok := bare["tags"]; ok {
		t.Errorf("tags should be absent when empty, got %v", bare["tags"])
	}
}
