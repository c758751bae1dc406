package rank

import (
	"sort"
	"strings"
)

// Stats exposes the per-word tables a Scorer reads
type Stats interface {
	FrequencyOf(word string) int
	DegreeOf(word string) int
}

// Scored is one entry of a rank list
type Scored struct {
	Score  float64
	Phrase string // words joined by single spaces
}

// Scorer ranks phrases by summing word scores
type Scorer struct {
	metric Metric
}

// NewScorer creates a scorer; unknown metrics fall back to the default
func NewScorer(m Metric) *Scorer {
	return &Scorer{metric: m.Normalize()}
}

// Metric returns the metric in use
func (s *Scorer) Metric() Metric {
	return s.metric
}

// WordScore scores a single word. A word with zero frequency under the
// ratio metric scores 0.
func (s *Scorer) WordScore(word string, st Stats) float64 {
	switch s.metric {
	case WordDegree:
		return float64(st.DegreeOf(word))
	case WordFrequency:
		return float64(st.FrequencyOf(word))
	default:
		freq := st.FrequencyOf(word)
		if freq == 0 {
			return 0
		}
		return float64(st.DegreeOf(word)) / float64(freq)
	}
}

// PhraseScore sums the word scores; repeated words count each time
func (s *Scorer) PhraseScore(words []string, st Stats) float64 {
	score := 0.0
	for _, w := range words {
		score += s.WordScore(w, st)
	}
	return score
}

// WordContribution is one word's share of a phrase score
type WordContribution struct {
	Word      string
	Frequency int
	Degree    int
	Score     float64
}

// Breakdown explains a phrase score word by word
func (s *Scorer) Breakdown(words []string, st Stats) []WordContribution {
	out := make([]WordContribution, 0, len(words))
	for _, w := range words {
		out = append(out, WordContribution{
			Word:      w,
			Frequency: st.FrequencyOf(w),
			Degree:    st.DegreeOf(w),
			Score:     s.WordScore(w, st),
		})
	}
	return out
}

// Entry is a rank list entry that keeps the words of its phrase
type Entry struct {
	Scored
	Words []string
}

// Rank scores every phrase and orders the list by score descending, then
// by phrase string descending. The sort is stable, so phrases that join to
// the same string keep their input order.
func (s *Scorer) Rank(phrases [][]string, st Stats) []Scored {
	entries := s.RankEntries(phrases, st)
	list := make([]Scored, len(entries))
	for i, e := range entries {
		list[i] = e.Scored
	}
	return list
}

// RankEntries orders phrases like Rank and keeps each phrase's words
func (s *Scorer) RankEntries(phrases [][]string, st Stats) []Entry {
	entries := make([]Entry, 0, len(phrases))
	for _, p := range phrases {
		entries = append(entries, Entry{
			Scored: Scored{
				Score:  s.PhraseScore(p, st),
				Phrase: strings.Join(p, " "),
			},
			Words: p,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return ranksBefore(entries[i].Scored, entries[j].Scored)
	})
	return entries
}

func ranksBefore(a, b Scored) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Phrase > b.Phrase
}

// Phrases projects a rank list onto its phrase strings
func Phrases(list []Scored) []string {
	out := make([]string, len(list))
	for i, sc := range list {
		out[i] = sc.Phrase
	}
	return out
}
