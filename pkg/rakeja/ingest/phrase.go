package ingest

import (
	"strconv"
	"strings"
)

// Phrase length bounds used when none are configured (both inclusive).
const (
	DefaultMinLength = 1
	DefaultMaxLength = 100000
)

// Phrase is an ordered run of words taken from one sentence
type Phrase []string

// Key identifies a phrase structurally: each word is written as its byte
// length, a colon, then the word, so no two word sequences share a key.
func (p Phrase) Key() string {
	var b strings.Builder
	for _, w := range p {
		b.WriteString(strconv.Itoa(len(w)))
		b.WriteByte(':')
		b.WriteString(w)
	}
	return b.String()
}

// String joins the words with single spaces
func (p Phrase) String() string {
	return strings.Join(p, " ")
}

// Ignorer decides which tokens break a phrase
type Ignorer interface {
	IsStop(token string) bool
}

// PhraseGenerator cuts a token sequence into candidate phrases
type PhraseGenerator struct {
	ignore Ignorer
	minLen int
	maxLen int
}

// NewPhraseGenerator creates a generator. A nil ignorer ignores nothing.
func NewPhraseGenerator(ignore Ignorer, minLen, maxLen int) *PhraseGenerator {
	return &PhraseGenerator{ignore: ignore, minLen: minLen, maxLen: maxLen}
}

// Generate returns the maximal runs of non-ignored words whose length lies
// within [minLen, maxLen]. Ignored words only act as boundaries.
//
// Example: [red apples , are good in flavour] with {",", are, in} ignored
// gives (red apples), (good), (flavour).
func (g *PhraseGenerator) Generate(words []string) []Phrase {
	var phrases []Phrase
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if n := end - start; n >= g.minLen && n <= g.maxLen {
			run := make(Phrase, n)
			copy(run, words[start:end])
			phrases = append(phrases, run)
		}
		start = -1
	}

	for i, w := range words {
		if g.isIgnored(w) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(words))

	return phrases
}

func (g *PhraseGenerator) isIgnored(w string) bool {
	return g.ignore != nil && g.ignore.IsStop(w)
}

// PhraseSet is the document-wide set of distinct phrases. Iteration follows
// first insertion so downstream results are deterministic.
type PhraseSet struct {
	index   map[string]struct{}
	phrases []Phrase
}

// NewPhraseSet creates an empty set
func NewPhraseSet() *PhraseSet {
	return &PhraseSet{index: make(map[string]struct{})}
}

// Add inserts p and reports whether it was new
func (s *PhraseSet) Add(p Phrase) bool {
	key := p.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.phrases = append(s.phrases, p)
	return true
}

// Contains reports whether p is a member
func (s *PhraseSet) Contains(p Phrase) bool {
	_, ok := s.index[p.Key()]
	return ok
}

// Len returns the number of distinct phrases
func (s *PhraseSet) Len() int {
	return len(s.phrases)
}

// Phrases returns the members in insertion order
func (s *PhraseSet) Phrases() []Phrase {
	return append([]Phrase(nil), s.phrases...)
}

// Words returns the members as plain word lists
func (s *PhraseSet) Words() [][]string {
	out := make([][]string, len(s.phrases))
	for i, p := range s.phrases {
		out[i] = p
	}
	return out
}
