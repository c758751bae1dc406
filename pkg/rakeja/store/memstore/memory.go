package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/rakeja/pkg/rakeja/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu        sync.RWMutex
	stopwords map[string]store.StopwordList
	runs      map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		stopwords: make(map[string]store.StopwordList),
		runs:      make(map[string]store.Run),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// GetStopwords implements store.StopwordCache.
func (s *Store) GetStopwords(ctx context.Context, source string) (store.StopwordList, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.stopwords[source]
	if !ok {
		return store.StopwordList{}, false, nil
	}
	return copyList(list), true, nil
}

// PutStopwords implements store.StopwordCache.
func (s *Store) PutStopwords(ctx context.Context, list store.StopwordList) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopwords[list.Source] = copyList(list)
	return nil
}

// SaveRun implements store.RunLog.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[r.ID] = copyRun(r)
	return nil
}

// GetRun implements store.RunLog.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return store.Run{}, false, nil
	}
	return copyRun(r), true, nil
}

// RecentRuns implements store.RunLog.
func (s *Store) RecentRuns(ctx context.Context, k int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k <= 0 {
		k = 10
	}

	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	if len(ids) > k {
		ids = ids[:k]
	}

	runs := make([]store.Run, 0, len(ids))
	for _, id := range ids {
		runs = append(runs, copyRun(s.runs[id]))
	}
	return runs, nil
}

func copyList(l store.StopwordList) store.StopwordList {
	out := l
	out.Words = append([]string(nil), l.Words...)
	return out
}

func copyRun(r store.Run) store.Run {
	out := r
	out.Phrases = append([]store.ScoredPhrase(nil), r.Phrases...)
	return out
}
