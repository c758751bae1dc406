package config

import (
	"context"
	"fmt"

	"github.com/cognicore/rakeja/pkg/rakeja"
	"github.com/cognicore/rakeja/pkg/rakeja/stoplist"
	"github.com/cognicore/rakeja/pkg/rakeja/store"
	"github.com/cognicore/rakeja/pkg/rakeja/store/sqlite"
)

// Loader reads the configuration file and constructs components
type Loader struct {
	ConfigPath string
	// DBPath overrides cache.path from the configuration.
	DBPath string
}

// Components holds the loaded configuration components
type Components struct {
	Config  *Config
	Options rakeja.Options
	Store   store.Store // nil without a cache path
}

// Close releases the store, if any
func (c *Components) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// Load reads the configuration and returns initialized components
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	cfg := &Config{}
	if l.ConfigPath != "" {
		loaded, err := LoadConfig(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	comp := &Components{Config: cfg, Options: cfg.Options()}

	// Extra stopwords from file
	if cfg.StopwordsFile != "" {
		words, err := stoplist.File{Path: cfg.StopwordsFile}.Stopwords(ctx)
		if err != nil {
			return nil, fmt.Errorf("load stopwords file: %w", err)
		}
		comp.Options.Stopwords = append(comp.Options.Stopwords, words...)
	}

	url := cfg.StopwordURL
	if url == "" {
		url = stoplist.SlothLibURL
	}
	fetch := stoplist.NewHTTPProvider(url)
	fetch.Encoding = cfg.StopwordEncoding
	comp.Options.StopwordSource = fetch

	dbPath := cfg.Cache.Path
	if l.DBPath != "" {
		dbPath = l.DBPath
	}
	if dbPath != "" {
		ttl, err := cfg.CacheTTL()
		if err != nil {
			return nil, err
		}
		st, err := sqlite.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		comp.Store = st
		comp.Options.StopwordSource = &stoplist.Cached{
			Key:    url,
			Source: fetch,
			Cache:  st,
			TTL:    ttl,
		}
	}

	return comp, nil
}
