package ingest

import (
	"reflect"
	"testing"
)

var redApples = []string{"red", "apples", ",", "are", "good", "in", "flavour"}

var redApplesIgnore = ignoreSet{"are": true, "in": true, ",": true}

func phraseStrings(ps []Phrase) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestGenerateRuns(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     []string
	}{
		{"range 1-2", 1, 2, []string{"red apples", "good", "flavour"}},
		{"range 1-1", 1, 1, []string{"good", "flavour"}},
		{"range 2-2", 2, 2, []string{"red apples"}},
		{"defaults", DefaultMinLength, DefaultMaxLength, []string{"red apples", "good", "flavour"}},
		{"max zero", 1, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewPhraseGenerator(redApplesIgnore, tt.min, tt.max)
			got := phraseStrings(g.Generate(redApples))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateIgnoredOnly(t *testing.T) {
	g := NewPhraseGenerator(redApplesIgnore, 1, 10)

	if got := g.Generate([]string{",", "are", "in"}); len(got) != 0 {
		t.Errorf("Ignored tokens should never become phrases, got %q", phraseStrings(got))
	}
	if got := g.Generate(nil); len(got) != 0 {
		t.Error("Empty input should give no phrases")
	}
}

func TestGenerateNilIgnorer(t *testing.T) {
	g := NewPhraseGenerator(nil, 1, 10)

	got := g.Generate([]string{"a", ",", "b"})
	if len(got) != 1 || len(got[0]) != 3 {
		t.Errorf("Nil ignorer should keep one run, got %q", phraseStrings(got))
	}
}

func TestGenerateCopiesWords(t *testing.T) {
	words := []string{"a", "b"}
	g := NewPhraseGenerator(nil, 1, 10)

	got := g.Generate(words)
	words[0] = "changed"
	if got[0][0] != "a" {
		t.Error("Phrases must not alias the input slice")
	}
}

func TestPhraseSetDedup(t *testing.T) {
	s := NewPhraseSet()

	if !s.Add(Phrase{"言語", "モデル"}) {
		t.Error("First insert should be new")
	}
	if s.Add(Phrase{"言語", "モデル"}) {
		t.Error("Duplicate should collapse")
	}
	s.Add(Phrase{"言語"})
	s.Add(Phrase{"言語 モデル"}) // same joined string, different words

	if s.Len() != 3 {
		t.Errorf("Expected 3 members, got %d", s.Len())
	}
	if !s.Contains(Phrase{"言語"}) || s.Contains(Phrase{"モデル"}) {
		t.Error("Contains mismatch")
	}

	want := []string{"言語 モデル", "言語", "言語 モデル"}
	if got := phraseStrings(s.Phrases()); !reflect.DeepEqual(got, want) {
		t.Errorf("Insertion order lost: %q", got)
	}
	if len(s.Words()) != 3 {
		t.Error("Words should mirror members")
	}
}

func TestPhraseSetKeyIsStructural(t *testing.T) {
	s := NewPhraseSet()

	members := []Phrase{
		{"a\x1fb"},
		{"a", "b"},
		{"1:a"},
		{"a", ""},
		{"a"},
		{"", "a"},
	}
	for _, p := range members {
		if !s.Add(p) {
			t.Errorf("%q should be a distinct member", []string(p))
		}
	}
	if s.Len() != len(members) {
		t.Errorf("Expected %d members, got %d", len(members), s.Len())
	}
	if !s.Contains(Phrase{"a", "b"}) || s.Contains(Phrase{"ab"}) {
		t.Error("Contains should compare word sequences")
	}
}
