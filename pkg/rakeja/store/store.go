package store

import (
	"context"
	"time"
)

// Store persists fetched stopword lists and extraction runs
type Store interface {
	Close() error

	StopwordCache
	RunLog
}

// StopwordCache keeps fetched stopword lists keyed by source
type StopwordCache interface {
	GetStopwords(ctx context.Context, source string) (StopwordList, bool, error)
	PutStopwords(ctx context.Context, list StopwordList) error
}

// RunLog records extraction results
type RunLog interface {
	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// RecentRuns returns up to k runs, newest first.
	RecentRuns(ctx context.Context, k int) ([]Run, error)
}

// StopwordList is a cached stopword list
type StopwordList struct {
	Source    string
	Words     []string // order preserved
	FetchedAt time.Time
}

// Run is one persisted extraction result
type Run struct {
	ID        string // ULID, sorts by creation time
	CreatedAt time.Time
	Label     string // free-form origin, e.g. a document URL
	Metric    string
	Phrases   []ScoredPhrase // ranked order
}

// ScoredPhrase is a ranked phrase with its score
type ScoredPhrase struct {
	Phrase string
	Score  float64
}
