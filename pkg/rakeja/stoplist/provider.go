package stoplist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider supplies a stopword list.
type Provider interface {
	Stopwords(ctx context.Context) ([]string, error)
}

// Static is an in-memory stopword list.
type Static []string

// Stopwords implements Provider.
func (s Static) Stopwords(ctx context.Context) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}

// File loads stopwords from disk. Files ending in .yaml or .yml use the
// `terms:` list format; anything else is one word per line.
type File struct {
	Path string
}

type yamlStoplist struct {
	Terms []string `yaml:"terms"`
}

// Stopwords implements Provider.
func (f File) Stopwords(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		var sl yamlStoplist
		if err := yaml.Unmarshal(data, &sl); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Path, err)
		}
		var terms []string
		for _, t := range sl.Terms {
			t = strings.TrimSpace(t)
			if t != "" {
				terms = append(terms, t)
			}
		}
		return terms, nil
	default:
		return ParseLines(string(data)), nil
	}
}
