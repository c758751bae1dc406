package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/rakeja/pkg/rakeja/ingest"
	"github.com/cognicore/rakeja/pkg/rakeja/internalerr"
	"github.com/cognicore/rakeja/pkg/rakeja/rank"
)

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
stopwords: [こと, もの]
slothlib_stopwords: false
punctuations: "。、！"
ranking_metric: word_degree
max_length: 3
min_length: 2
dictionary: "-d /opt/dic/neologd"
user_dictionary: user.csv
pos_list: [名詞]
tokenizer_cache_size: 128
delimiters: ["。", "\n"]
cache:
  path: rakeja.db
  ttl: 24h
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	opts := cfg.Options()
	if !reflect.DeepEqual(opts.Stopwords, []string{"こと", "もの"}) {
		t.Errorf("Stopwords = %v", opts.Stopwords)
	}
	if !opts.DisableSlothLib {
		t.Error("SlothLib should be disabled")
	}
	if !reflect.DeepEqual(opts.Punctuations, []string{"。", "、", "！"}) {
		t.Errorf("Punctuations = %v", opts.Punctuations)
	}
	if opts.Metric != rank.WordDegree {
		t.Errorf("Metric = %v", opts.Metric)
	}
	if opts.MaxLength != 3 || opts.MinLength != 2 {
		t.Errorf("Lengths = [%d, %d]", opts.MinLength, opts.MaxLength)
	}
	if opts.Dictionary != "-d /opt/dic/neologd" || opts.UserDictionary != "user.csv" {
		t.Errorf("Dictionary settings = %q, %q", opts.Dictionary, opts.UserDictionary)
	}
	if !reflect.DeepEqual(opts.POSList, []string{"名詞"}) || opts.TokenCacheSize != 128 {
		t.Errorf("Tokenizer settings = %v, %d", opts.POSList, opts.TokenCacheSize)
	}
	if !reflect.DeepEqual(opts.Delimiters, []string{"。", "\n"}) {
		t.Errorf("Delimiters = %q", opts.Delimiters)
	}

	ttl, err := cfg.CacheTTL()
	if err != nil || ttl != 24*time.Hour {
		t.Errorf("CacheTTL = %v, %v", ttl, err)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.Options()
	if opts.Stopwords != nil || opts.Punctuations != nil || opts.POSList != nil || opts.Delimiters != nil {
		t.Error("Absent lists should stay nil so defaults apply")
	}
	if opts.DisableSlothLib {
		t.Error("SlothLib should be enabled by default")
	}
	if opts.Metric != rank.DegreeToFrequencyRatio {
		t.Errorf("Metric = %v", opts.Metric)
	}
	if opts.MaxLength != ingest.DefaultMaxLength || opts.MinLength != ingest.DefaultMinLength {
		t.Errorf("Lengths = [%d, %d]", opts.MinLength, opts.MaxLength)
	}
}

func TestExplicitZeroMaxLength(t *testing.T) {
	cfg, err := Parse([]byte("max_length: 0"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Options().MaxLength; got != 0 {
		t.Errorf("Explicit zero should be kept, got %d", got)
	}
}

func TestMalformedStopwordsIgnored(t *testing.T) {
	for _, doc := range []string{
		"stopwords: こと",
		"stopwords: {a: b}",
		"stopwords:",
	} {
		cfg, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		if got := cfg.StopwordList(); got != nil {
			t.Errorf("%q: expected nil, got %v", doc, got)
		}
	}

	cfg, _ := Parse([]byte("stopwords: []"))
	if got := cfg.StopwordList(); got == nil || len(got) != 0 {
		t.Errorf("Empty list should be non-nil and empty, got %#v", got)
	}
}

func TestPunctuationForms(t *testing.T) {
	cfg, _ := Parse([]byte(`punctuations: ["。", "…"]`))
	if got := cfg.PunctuationList(); !reflect.DeepEqual(got, []string{"。", "…"}) {
		t.Errorf("List form = %v", got)
	}

	cfg, _ = Parse([]byte("punctuations:"))
	if got := cfg.PunctuationList(); got != nil {
		t.Errorf("Null should mean default, got %v", got)
	}
}

func TestUnknownMetricFallsBack(t *testing.T) {
	cfg, _ := Parse([]byte("ranking_metric: bogus"))
	if got := cfg.Options().Metric; got != rank.DegreeToFrequencyRatio {
		t.Errorf("Metric = %v", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := Parse([]byte("max_length: [1")); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Broken YAML should be ErrInvalidConfig, got %v", err)
	}
	if _, err := Parse([]byte("cache: {ttl: soon}")); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Bad TTL should be ErrInvalidConfig, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rakeja.yaml")
	if err := os.WriteFile(path, []byte("min_length: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Options().MinLength != 2 {
		t.Error("min_length not applied")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Should error on missing file")
	}
}
