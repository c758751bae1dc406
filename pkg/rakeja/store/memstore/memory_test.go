package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/cognicore/rakeja/pkg/rakeja/store"
)

func TestMemstoreStopwords(t *testing.T) {
	ctx := context.Background()
	s := New()

	words := []string{"a", "b"}
	s.PutStopwords(ctx, store.StopwordList{Source: "x", Words: words, FetchedAt: time.Now()})

	// Mutating the caller's slice must not leak into the store
	words[0] = "changed"

	got, found, err := s.GetStopwords(ctx, "x")
	if err != nil || !found {
		t.Fatalf("Expected list (found=%v, err=%v)", found, err)
	}
	if got.Words[0] != "a" {
		t.Errorf("Store should copy words, got %v", got.Words)
	}

	if _, found, _ := s.GetStopwords(ctx, "y"); found {
		t.Error("Unknown source should not be found")
	}
}

func TestMemstoreRuns(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, id := range []string{"01", "03", "02"} {
		s.SaveRun(ctx, store.Run{ID: id, Phrases: []store.ScoredPhrase{{Phrase: id, Score: 1}}})
	}

	runs, err := s.RecentRuns(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 || runs[0].ID != "03" || runs[2].ID != "01" {
		t.Errorf("Expected newest first, got %+v", runs)
	}

	r, found, _ := s.GetRun(ctx, "02")
	if !found || r.Phrases[0].Phrase != "02" {
		t.Errorf("GetRun mismatch: %+v", r)
	}
}
