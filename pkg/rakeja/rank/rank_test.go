package rank

import (
	"math"
	"reflect"
	"testing"
)

// tables is a fixed Stats for tests
type tables struct {
	freq, degree map[string]int
}

func (t tables) FrequencyOf(w string) int { return t.freq[w] }
func (t tables) DegreeOf(w string) int    { return t.degree[w] }

// phrases {(a,b), (a)}: freq a:2 b:1, degree a:3 b:2
var worked = tables{
	freq:   map[string]int{"a": 2, "b": 1},
	degree: map[string]int{"a": 3, "b": 2},
}

func TestWordScoreMetrics(t *testing.T) {
	tests := []struct {
		metric Metric
		word   string
		want   float64
	}{
		{DegreeToFrequencyRatio, "a", 1.5},
		{DegreeToFrequencyRatio, "b", 2},
		{WordDegree, "a", 3},
		{WordFrequency, "a", 2},
		{DegreeToFrequencyRatio, "missing", 0},
	}

	for _, tt := range tests {
		got := NewScorer(tt.metric).WordScore(tt.word, worked)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v WordScore(%s) = %f, want %f", tt.metric, tt.word, got, tt.want)
		}
	}
}

func TestRankWorkedExample(t *testing.T) {
	got := NewScorer(DegreeToFrequencyRatio).Rank([][]string{{"a", "b"}, {"a"}}, worked)

	want := []Scored{{Score: 3.5, Phrase: "a b"}, {Score: 1.5, Phrase: "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRankEntriesKeepWords(t *testing.T) {
	got := NewScorer(DegreeToFrequencyRatio).RankEntries([][]string{{"a"}, {"a", "b"}}, worked)

	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got))
	}
	if got[0].Phrase != "a b" || !reflect.DeepEqual(got[0].Words, []string{"a", "b"}) {
		t.Errorf("First entry = %+v", got[0])
	}
	if got[1].Phrase != "a" || !reflect.DeepEqual(got[1].Words, []string{"a"}) {
		t.Errorf("Second entry = %+v", got[1])
	}
}

func TestRankRepeatedWordsCountEachTime(t *testing.T) {
	st := tables{freq: map[string]int{"x": 2}, degree: map[string]int{"x": 4}}

	got := NewScorer(WordDegree).PhraseScore([]string{"x", "x"}, st)
	if got != 8 {
		t.Errorf("Expected 8, got %f", got)
	}
}

func TestRankTieBreakDescendingString(t *testing.T) {
	st := tables{
		freq:   map[string]int{"apple": 1, "banana": 1, "cherry": 1},
		degree: map[string]int{"apple": 1, "banana": 1, "cherry": 1},
	}

	got := Phrases(NewScorer(DegreeToFrequencyRatio).Rank(
		[][]string{{"banana"}, {"apple"}, {"cherry"}}, st))
	want := []string{"cherry", "banana", "apple"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Ties should sort by string descending, got %v", got)
	}
}

func TestRankOrderInvariant(t *testing.T) {
	st := tables{
		freq:   map[string]int{"言語": 2, "モデル": 2, "研究": 1, "大規模": 1},
		degree: map[string]int{"言語": 5, "モデル": 5, "研究": 1, "大規模": 3},
	}
	phrases := [][]string{{"研究"}, {"大規模", "言語", "モデル"}, {"言語", "モデル"}}

	list := NewScorer(DegreeToFrequencyRatio).Rank(phrases, st)
	if len(list) != len(phrases) {
		t.Fatalf("Expected %d entries, got %d", len(phrases), len(list))
	}
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if cur.Score > prev.Score {
			t.Errorf("Scores increase at %d: %v", i, list)
		}
		if cur.Score == prev.Score && cur.Phrase > prev.Phrase {
			t.Errorf("Tie order broken at %d: %v", i, list)
		}
	}
	if list[0].Phrase != "大規模 言語 モデル" {
		t.Errorf("Longest phrase should rank first, got %v", list)
	}
}

func TestRankEmpty(t *testing.T) {
	list := NewScorer(WordFrequency).Rank(nil, worked)
	if list == nil || len(list) != 0 {
		t.Error("Empty input should give an empty, non-nil list")
	}
}

func TestBreakdown(t *testing.T) {
	parts := NewScorer(DegreeToFrequencyRatio).Breakdown([]string{"a", "b"}, worked)

	if len(parts) != 2 {
		t.Fatalf("Expected 2 parts, got %d", len(parts))
	}
	if parts[0].Word != "a" || parts[0].Frequency != 2 || parts[0].Degree != 3 || parts[0].Score != 1.5 {
		t.Errorf("Unexpected breakdown: %+v", parts[0])
	}
}

func TestNewScorerInvalidMetricFallsBack(t *testing.T) {
	if NewScorer(Metric(42)).Metric() != DegreeToFrequencyRatio {
		t.Error("Unknown metric should fall back to the default")
	}
	if NewScorer(WordFrequency).Metric() != WordFrequency {
		t.Error("Valid metric should be kept")
	}
}

func TestParseMetric(t *testing.T) {
	tests := map[string]Metric{
		"word_degree":               WordDegree,
		"WORD-FREQUENCY":            WordFrequency,
		"degree":                    WordDegree,
		"frequency":                 WordFrequency,
		"degree_to_frequency_ratio": DegreeToFrequencyRatio,
		"":                          DegreeToFrequencyRatio,
		"bogus":                     DegreeToFrequencyRatio,
	}
	for in, want := range tests {
		if got := ParseMetric(in); got != want {
			t.Errorf("ParseMetric(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMetricString(t *testing.T) {
	if WordDegree.String() != "word_degree" {
		t.Errorf("Unexpected name %q", WordDegree.String())
	}
	if Metric(-1).String() != "degree_to_frequency_ratio" {
		t.Error("Unknown metric should print as the default")
	}
	if Metric(-1).Valid() {
		t.Error("Metric(-1) should be invalid")
	}
}
