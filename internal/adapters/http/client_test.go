package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexlabs/muse/internal/domain"
)

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/words" {
			t.Errorf("path = %s, want /words", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("rel_rhy") != "orange" {
			t.Errorf("rel_rhy = %q, want orange", q.Get("rel_rhy"))
		}
		if q.Get("md") != "s" {
			t.Errorf("md = %q, want s", q.Get("md"))
		}
		if q.Get("max") != "2" {
			t.Errorf("max = %q, want 2", q.Get("max"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"word":"door hinge","score":74,"numSyllables":2},
			{"word":"sporange","score":50,"numSyllables":2,"tags":["n"]}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	words, err := c.Lookup(context.Background(), domain.Query{
		Term:     "orange",
		Relation: domain.Rhymes,
		Max:      2,
	})
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}

	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Word != "door hinge" || words[0].NumSyllables != 2 {
		t.Errorf("first word = %+v", words[0])
	}
	if len(words[1].Tags) != 1 || words[1].Tags[0] != "n" {
		t.Errorf("second word tags = %v, want [n]", words[1].Tags)
	}
}

func TestClient_Lookup_NoMaxParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("max") {
			t.Errorf("max param sent for zero Max")
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	words, err := c.Lookup(context.Background(), domain.Query{Term: "cat", Relation: domain.MeansLike})
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("got %d words, want 0", len(words))
	}
}

func TestClient_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	_, err := c.Lookup(context.Background(), domain.Query{Term: "cat", Relation: domain.Rhymes})
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestClient_Lookup_InvalidQuery(t *testing.T) {
	c := NewClient("http://unused", http.DefaultClient, nil)
	_, err := c.Lookup(context.Background(), domain.Query{Relation: domain.Rhymes})
	if err == nil {
		t.Fatal("expected validation error for empty term")
	}
}

func TestClient_Lookup_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, srv.Client(), nil)
	_, err := c.Lookup(ctx, domain.Query{Term: "cat", Relation: domain.Rhymes})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}
