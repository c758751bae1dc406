package ingest

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPOS keeps adjectives, nouns and verbs.
var DefaultPOS = []string{"形容詞", "名詞", "動詞"}

// Tokenizer turns a sentence into the surfaces of tokens whose coarse
// part-of-speech is accepted
type Tokenizer struct {
	analyzer Analyzer
	posList  []string
	pos      map[string]struct{}
	cache    *lru.Cache[string, []string] // Optional: sentence -> surfaces
}

// NewTokenizer creates a tokenizer accepting the given categories.
// A nil list means DefaultPOS; an empty non-nil list accepts nothing.
func NewTokenizer(analyzer Analyzer, posList []string) *Tokenizer {
	if posList == nil {
		posList = DefaultPOS
	}
	pos := make(map[string]struct{}, len(posList))
	for _, p := range posList {
		pos[p] = struct{}{}
	}
	return &Tokenizer{
		analyzer: analyzer,
		posList:  append([]string(nil), posList...),
		pos:      pos,
	}
}

// EnableCache memoizes up to size analyzed sentences
func (t *Tokenizer) EnableCache(size int) error {
	c, err := lru.New[string, []string](size)
	if err != nil {
		return err
	}
	t.cache = c
	return nil
}

// Tokenize returns accepted surfaces in sentence order. The returned slice
// may be shared with the cache and must not be modified.
func (t *Tokenizer) Tokenize(sentence string) []string {
	if t.cache != nil {
		if words, ok := t.cache.Get(sentence); ok {
			return words
		}
	}

	var words []string
	for _, tok := range t.analyzer.Analyze(sentence) {
		if t.Accepts(tok.Category()) {
			words = append(words, tok.Surface)
		}
	}

	if t.cache != nil {
		t.cache.Add(sentence, words)
	}
	return words
}

// Accepts reports whether a coarse part-of-speech passes the filter
func (t *Tokenizer) Accepts(category string) bool {
	_, ok := t.pos[category]
	return ok
}

// POSList returns the accepted categories
func (t *Tokenizer) POSList() []string {
	return append([]string(nil), t.posList...)
}
