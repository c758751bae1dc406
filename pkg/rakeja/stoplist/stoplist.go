package stoplist

import (
	"sort"
	"strings"
)

// DefaultPunctuations is ASCII punctuation plus the Japanese full stop and comma.
const DefaultPunctuations = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" + "。、"

// Kind explains why a token is ignored
type Kind int

const (
	Stopword Kind = iota
	Punctuation
)

func (k Kind) String() string {
	if k == Punctuation {
		return "punctuation"
	}
	return "stopword"
}

// Manager holds the set of tokens that break candidate phrases:
// stopwords and punctuation marks.
type Manager struct {
	ignore map[string]Kind
}

// NewManager creates a manager from stopwords and punctuation tokens.
// A token listed as both keeps the Stopword kind.
func NewManager(stopwords, punctuations []string) *Manager {
	m := &Manager{ignore: make(map[string]Kind, len(stopwords)+len(punctuations))}
	for _, p := range punctuations {
		m.ignore[p] = Punctuation
	}
	for _, s := range stopwords {
		m.ignore[s] = Stopword
	}
	return m
}

// SplitPunctuations turns a punctuation string into one token per character.
func SplitPunctuations(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// DefaultPunctuationTokens returns DefaultPunctuations split per character.
func DefaultPunctuationTokens() []string {
	return SplitPunctuations(DefaultPunctuations)
}

// IsStop checks if a token breaks a phrase
func (m *Manager) IsStop(token string) bool {
	_, ok := m.ignore[token]
	return ok
}

// KindOf reports why a token is ignored.
func (m *Manager) KindOf(token string) (Kind, bool) {
	k, ok := m.ignore[token]
	return k, ok
}

// Len returns the number of ignored tokens
func (m *Manager) Len() int {
	return len(m.ignore)
}

// All returns all ignored tokens, sorted
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.ignore))
	for s := range m.ignore {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// ParseLines reads a newline-delimited word list. Each line is trimmed and
// empty lines are dropped.
func ParseLines(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
