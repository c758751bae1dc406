package stoplist

import (
	"context"
	"log"
	"time"

	"github.com/cognicore/rakeja/pkg/rakeja/store"
)

// Cached serves a stopword list from a store, refreshing it from Source when
// missing or older than TTL. Cache failures are logged and bypassed; only
// Source failures are returned.
type Cached struct {
	Key    string
	Source Provider
	Cache  store.StopwordCache
	TTL    time.Duration // zero means never expire
	Now    func() time.Time
}

// Stopwords implements Provider.
func (c *Cached) Stopwords(ctx context.Context) ([]string, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	list, found, err := c.Cache.GetStopwords(ctx, c.Key)
	if err != nil {
		log.Printf("Warning: stopword cache read for %s failed: %v", c.Key, err)
	} else if found && !c.expired(list.FetchedAt, now()) {
		return list.Words, nil
	}

	words, err := c.Source.Stopwords(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Cache.PutStopwords(ctx, store.StopwordList{
		Source:    c.Key,
		Words:     words,
		FetchedAt: now(),
	}); err != nil {
		log.Printf("Warning: stopword cache write for %s failed: %v", c.Key, err)
	}

	return words, nil
}

func (c *Cached) expired(fetchedAt, now time.Time) bool {
	if c.TTL <= 0 {
		return false
	}
	return now.Sub(fetchedAt) > c.TTL
}
