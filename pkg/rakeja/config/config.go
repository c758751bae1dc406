package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/rakeja/pkg/rakeja"
	"github.com/cognicore/rakeja/pkg/rakeja/internalerr"
	"github.com/cognicore/rakeja/pkg/rakeja/rank"
	"github.com/cognicore/rakeja/pkg/rakeja/stoplist"
)

// Config is the YAML form of the extractor options
type Config struct {
	// Stopwords is kept as a node: anything other than a sequence is ignored.
	Stopwords        yaml.Node `yaml:"stopwords"`
	SlothLib         *bool     `yaml:"slothlib_stopwords"`
	StopwordURL      string    `yaml:"stopword_url"`
	StopwordEncoding string    `yaml:"stopword_encoding"`
	StopwordsFile    string    `yaml:"stopwords_file"`

	// Punctuations is either a string (one mark per character) or a list.
	Punctuations yaml.Node `yaml:"punctuations"`

	Metric    string `yaml:"ranking_metric"`
	MaxLength *int   `yaml:"max_length"`
	MinLength *int   `yaml:"min_length"`

	Dictionary         string   `yaml:"dictionary"`
	UserDictionary     string   `yaml:"user_dictionary"`
	POSList            []string `yaml:"pos_list"`
	TokenizerCacheSize int      `yaml:"tokenizer_cache_size"`
	Delimiters         []string `yaml:"delimiters"`

	Cache Cache `yaml:"cache"`
}

// Cache configures the SQLite stopword cache and run log
type Cache struct {
	Path string `yaml:"path"`
	TTL  string `yaml:"ttl"` // Go duration, e.g. "168h"; empty never expires
}

// LoadConfig loads a configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
	}
	if _, err := cfg.CacheTTL(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StopwordList returns the extra stopwords, or nil when the key is absent
// or not a list of strings.
func (c *Config) StopwordList() []string {
	if c.Stopwords.Kind != yaml.SequenceNode {
		return nil
	}
	var words []string
	if err := c.Stopwords.Decode(&words); err != nil {
		return nil
	}
	if words == nil {
		words = []string{}
	}
	return words
}

// PunctuationList returns the configured punctuation tokens, or nil for
// the default set.
func (c *Config) PunctuationList() []string {
	switch c.Punctuations.Kind {
	case yaml.ScalarNode:
		if c.Punctuations.ShortTag() == "!!null" {
			return nil
		}
		return stoplist.SplitPunctuations(c.Punctuations.Value)
	case yaml.SequenceNode:
		var marks []string
		if err := c.Punctuations.Decode(&marks); err != nil {
			return nil
		}
		if marks == nil {
			marks = []string{}
		}
		return marks
	}
	return nil
}

// SlothLibEnabled reports whether the SlothLib list is fetched; default true
func (c *Config) SlothLibEnabled() bool {
	return c.SlothLib == nil || *c.SlothLib
}

// CacheTTL parses the cache TTL
func (c *Config) CacheTTL() (time.Duration, error) {
	ttl := strings.TrimSpace(c.Cache.TTL)
	if ttl == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return 0, fmt.Errorf("%w: cache ttl %q: %w", internalerr.ErrInvalidConfig, c.Cache.TTL, err)
	}
	return d, nil
}

// Options converts the configuration into extractor options. The stopword
// source is left to the Loader.
func (c *Config) Options() rakeja.Options {
	opts := rakeja.DefaultOptions()
	opts.Stopwords = c.StopwordList()
	opts.DisableSlothLib = !c.SlothLibEnabled()
	opts.Punctuations = c.PunctuationList()
	opts.Metric = rank.ParseMetric(c.Metric)
	if c.MaxLength != nil {
		opts.MaxLength = *c.MaxLength
	}
	if c.MinLength != nil {
		opts.MinLength = *c.MinLength
	}
	opts.Dictionary = c.Dictionary
	opts.UserDictionary = c.UserDictionary
	if len(c.POSList) > 0 {
		opts.POSList = c.POSList
	}
	opts.TokenCacheSize = c.TokenizerCacheSize
	if len(c.Delimiters) > 0 {
		opts.Delimiters = c.Delimiters
	}
	return opts
}
