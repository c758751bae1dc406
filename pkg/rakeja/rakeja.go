package rakeja

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/rakeja/pkg/rakeja/cooccur"
	"github.com/cognicore/rakeja/pkg/rakeja/ingest"
	"github.com/cognicore/rakeja/pkg/rakeja/internalerr"
	"github.com/cognicore/rakeja/pkg/rakeja/rank"
	"github.com/cognicore/rakeja/pkg/rakeja/sentence"
	"github.com/cognicore/rakeja/pkg/rakeja/stoplist"
	"github.com/cognicore/rakeja/pkg/rakeja/store"
)

// Rake extracts ranked keyphrases (Rapid Automatic Keyword Extraction)
// from text in languages without spaces between words.
//
// Each extraction builds a new immutable Result and replaces the last one;
// the accessors read the last Result. Extractions may run concurrently, in
// which case the accessors report whichever finished last.
type Rake struct {
	splitter  *sentence.Splitter
	tokenizer *ingest.Tokenizer
	pipeline  *ingest.Pipeline
	scorer    *rank.Scorer
	stops     *stoplist.Manager

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	last    *Result
}

// Result is the outcome of one extraction
type Result struct {
	ID        string
	CreatedAt time.Time
	Metric    rank.Metric
	Phrases   *ingest.PhraseSet
	Graph     *cooccur.Graph
	Ranked    []rank.Scored
	Words     [][]string // Words[i] holds the words of Ranked[i]
}

// New builds an extractor. It fetches the stopword list and constructs the
// morphological analyzer; failure of either is returned and the instance is
// not usable.
func New(ctx context.Context, opts Options) (*Rake, error) {
	var stopwords []string
	if opts.needsFetch() {
		src := opts.StopwordSource
		if src == nil {
			src = stoplist.NewHTTPProvider(stoplist.SlothLibURL)
		}
		fetched, err := src.Stopwords(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", internalerr.ErrStopwordFetch, err)
		}
		stopwords = fetched
	}
	stopwords = append(stopwords, opts.Stopwords...)

	analyzer := opts.Analyzer
	if analyzer == nil {
		k, err := ingest.NewKagome(ingest.KagomeConfig{
			Dictionary:     opts.Dictionary,
			UserDictionary: opts.UserDictionary,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", internalerr.ErrAnalyzer, err)
		}
		analyzer = k
	}

	tokenizer := ingest.NewTokenizer(analyzer, opts.POSList)
	if opts.TokenCacheSize > 0 {
		if err := tokenizer.EnableCache(opts.TokenCacheSize); err != nil {
			return nil, fmt.Errorf("%w: token cache: %w", internalerr.ErrInvalidConfig, err)
		}
	}

	stops := stoplist.NewManager(stopwords, opts.punctuations())
	generator := ingest.NewPhraseGenerator(stops, opts.MinLength, opts.MaxLength)

	return &Rake{
		splitter:  sentence.New(opts.delimiters()),
		tokenizer: tokenizer,
		pipeline:  ingest.NewPipeline(tokenizer, generator),
		scorer:    rank.NewScorer(opts.Metric),
		stops:     stops,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// ExtractFromText splits text into sentences and extracts from them
func (r *Rake) ExtractFromText(text string) *Result {
	return r.ExtractFromSentences(r.splitter.Split(text))
}

// ExtractFromSentences extracts keyphrases from pre-split sentences
func (r *Rake) ExtractFromSentences(sentences []string) *Result {
	phrases := r.pipeline.Process(sentences)
	words := phrases.Words()
	graph := cooccur.Build(words)
	entries := r.scorer.RankEntries(words, graph)
	ranked := make([]rank.Scored, len(entries))
	rankedWords := make([][]string, len(entries))
	for i, e := range entries {
		ranked[i] = e.Scored
		rankedWords[i] = e.Words
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	res := &Result{
		ID:        ulid.MustNew(ulid.Timestamp(now), r.entropy).String(),
		CreatedAt: now,
		Metric:    r.scorer.Metric(),
		Phrases:   phrases,
		Graph:     graph,
		Ranked:    ranked,
		Words:     rankedWords,
	}
	r.last = res
	return res
}

// Last returns the most recent result, or nil before any extraction
func (r *Rake) Last() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// RankedPhrases returns phrases of the last extraction, best first
func (r *Rake) RankedPhrases() []string {
	return r.Last().RankedPhrases()
}

// RankedPhrasesWithScores returns the last rank list
func (r *Rake) RankedPhrasesWithScores() []rank.Scored {
	return r.Last().RankedPhrasesWithScores()
}

// WordFrequencyDistribution returns word -> frequency of the last extraction
func (r *Rake) WordFrequencyDistribution() map[string]int {
	return r.Last().WordFrequencyDistribution()
}

// WordDegrees returns word -> degree of the last extraction
func (r *Rake) WordDegrees() map[string]int {
	return r.Last().WordDegrees()
}

// IsIgnored reports whether token is a stopword or punctuation mark
func (r *Rake) IsIgnored(token string) bool {
	return r.stops.IsStop(token)
}

// Metric returns the scoring metric in use
func (r *Rake) Metric() rank.Metric {
	return r.scorer.Metric()
}

// POSList returns the accepted part-of-speech categories
func (r *Rake) POSList() []string {
	return r.tokenizer.POSList()
}

// Delimiters returns the sentence delimiters
func (r *Rake) Delimiters() []string {
	return r.splitter.Delimiters()
}

// Stoplist returns the tokens that break phrases
func (r *Rake) Stoplist() *stoplist.Manager {
	return r.stops
}

// Explain breaks down the score of a phrase from the last extraction
func (r *Rake) Explain(words []string) []rank.WordContribution {
	res := r.Last()
	if res == nil {
		return r.scorer.Breakdown(words, cooccur.NewGraph())
	}
	return res.Explain(words)
}

// Explain breaks down the score of a phrase word by word against this
// result's tables. Safe on nil.
func (res *Result) Explain(words []string) []rank.WordContribution {
	if res == nil {
		return rank.NewScorer(rank.DegreeToFrequencyRatio).Breakdown(words, cooccur.NewGraph())
	}
	return rank.NewScorer(res.Metric).Breakdown(words, res.Graph)
}

// RankedPhrases returns the phrase strings in rank order. Safe on nil.
func (res *Result) RankedPhrases() []string {
	if res == nil {
		return []string{}
	}
	return rank.Phrases(res.Ranked)
}

// RankedPhrasesWithScores returns a copy of the rank list. Safe on nil.
func (res *Result) RankedPhrasesWithScores() []rank.Scored {
	if res == nil {
		return []rank.Scored{}
	}
	return append([]rank.Scored{}, res.Ranked...)
}

// WordFrequencyDistribution returns word -> frequency. Safe on nil.
func (res *Result) WordFrequencyDistribution() map[string]int {
	if res == nil {
		return map[string]int{}
	}
	return res.Graph.Frequency()
}

// WordDegrees returns word -> degree. Safe on nil.
func (res *Result) WordDegrees() map[string]int {
	if res == nil {
		return map[string]int{}
	}
	return res.Graph.Degree()
}

// Top returns at most k best phrases; k <= 0 means all
func (res *Result) Top(k int) []rank.Scored {
	all := res.RankedPhrasesWithScores()
	if k > 0 && k < len(all) {
		return all[:k]
	}
	return all
}

// Run converts the result into a persistable run record
func (res *Result) Run(label string) store.Run {
	run := store.Run{Label: label}
	if res == nil {
		return run
	}
	run.ID = res.ID
	run.CreatedAt = res.CreatedAt
	run.Metric = res.Metric.String()
	run.Phrases = make([]store.ScoredPhrase, len(res.Ranked))
	for i, sc := range res.Ranked {
		run.Phrases[i] = store.ScoredPhrase{Phrase: sc.Phrase, Score: sc.Score}
	}
	return run
}
