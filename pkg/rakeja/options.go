package rakeja

import (
	"github.com/cognicore/rakeja/pkg/rakeja/ingest"
	"github.com/cognicore/rakeja/pkg/rakeja/rank"
	"github.com/cognicore/rakeja/pkg/rakeja/sentence"
	"github.com/cognicore/rakeja/pkg/rakeja/stoplist"
)

// Options configures a Rake instance. Start from DefaultOptions; zero
// lengths are meaningful (MaxLength 0 yields no phrases).
type Options struct {
	// Stopwords are appended to the fetched list.
	Stopwords []string
	// DisableSlothLib skips the stopword fetch. The fetch still happens when
	// Stopwords is nil, so callers opting out pass a non-nil list.
	DisableSlothLib bool
	// StopwordSource replaces the SlothLib HTTP fetch (fixtures, caches).
	StopwordSource stoplist.Provider

	// Punctuations break phrases like stopwords. Nil means
	// stoplist.DefaultPunctuations, one token per character.
	Punctuations []string

	Metric    rank.Metric
	MaxLength int
	MinLength int

	// Analyzer replaces the kagome analyzer. When nil one is built from
	// Dictionary and UserDictionary.
	Analyzer       ingest.Analyzer
	Dictionary     string
	UserDictionary string
	// POSList holds the accepted coarse part-of-speech tags; nil means
	// ingest.DefaultPOS.
	POSList []string
	// TokenCacheSize enables an LRU of analyzed sentences when > 0.
	TokenCacheSize int

	// Delimiters split text into sentences; nil means
	// sentence.DefaultDelimiters.
	Delimiters []string
}

// DefaultOptions returns the standard configuration: SlothLib stopwords,
// ASCII plus Japanese punctuation, the degree/frequency ratio, phrases of
// 1 to 100000 words, the IPA dictionary, and adjectives, nouns and verbs.
func DefaultOptions() Options {
	return Options{
		Metric:    rank.DegreeToFrequencyRatio,
		MaxLength: ingest.DefaultMaxLength,
		MinLength: ingest.DefaultMinLength,
	}
}

func (o Options) punctuations() []string {
	if o.Punctuations == nil {
		return stoplist.DefaultPunctuationTokens()
	}
	return o.Punctuations
}

func (o Options) delimiters() []string {
	if o.Delimiters == nil {
		return sentence.DefaultDelimiters
	}
	return o.Delimiters
}

func (o Options) needsFetch() bool {
	return !o.DisableSlothLib || o.Stopwords == nil
}
