package sentence

import (
	"regexp"
	"strings"
)

// DefaultDelimiters are the sentence terminators used when none are configured:
// full-width period, question mark and exclamation mark, an ASCII period,
// and the parenthesised laughter marker.
var DefaultDelimiters = []string{"？", "。", "！", ".", "（笑）"}

// Splitter cuts raw text into sentences on a fixed set of literal delimiters.
type Splitter struct {
	delimiters []string
	re         *regexp.Regexp
}

// New creates a splitter for the given delimiters. Empty delimiters are
// ignored; with none left the whole text is treated as a single sentence.
func New(delimiters []string) *Splitter {
	s := &Splitter{}
	quoted := make([]string, 0, len(delimiters))
	for _, d := range delimiters {
		if d == "" {
			continue
		}
		s.delimiters = append(s.delimiters, d)
		quoted = append(quoted, regexp.QuoteMeta(d))
	}
	if len(quoted) > 0 {
		s.re = regexp.MustCompile(strings.Join(quoted, "|"))
	}
	return s
}

// Delimiters returns the active delimiter literals.
func (s *Splitter) Delimiters() []string {
	out := make([]string, len(s.delimiters))
	copy(out, s.delimiters)
	return out
}

// Split returns the non-empty fragments of text between delimiters.
// Fragments are not trimmed.
func (s *Splitter) Split(text string) []string {
	var parts []string
	if s.re == nil {
		parts = []string{text}
	} else {
		parts = s.re.Split(text, -1)
	}

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}
