package ingest

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeConfig selects the dictionaries for the kagome analyzer.
//
// Dictionary is "ipa" (default when empty) or a path to a kagome
// dictionary archive. A MeCab style "-d <path>" string is also accepted.
type KagomeConfig struct {
	Dictionary     string
	UserDictionary string
}

var _ Analyzer = (*Kagome)(nil)

// Kagome wraps github.com/ikawaha/kagome so the rest of the package does
// not depend on it directly.
type Kagome struct {
	t *tokenizer.Tokenizer
}

// NewKagome builds the analyzer. A dictionary that cannot be loaded is an
// error; there is no fallback dictionary.
func NewKagome(cfg KagomeConfig) (*Kagome, error) {
	d, err := loadDict(cfg.Dictionary)
	if err != nil {
		return nil, err
	}

	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if cfg.UserDictionary != "" {
		udict, err := dict.NewUserDict(cfg.UserDictionary)
		if err != nil {
			return nil, fmt.Errorf("load user dictionary %s: %w", cfg.UserDictionary, err)
		}
		opts = append(opts, tokenizer.UserDict(udict))
	}

	t, err := tokenizer.New(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

// Analyze implements Analyzer.
func (k *Kagome) Analyze(sentence string) []Token {
	toks := k.t.Tokenize(sentence)
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{
			Surface: tok.Surface,
			POS:     tok.POS(),
		})
	}
	return out
}

func loadDict(arg string) (*dict.Dict, error) {
	name := DictionaryPath(arg)
	switch strings.ToLower(name) {
	case "", "ipa":
		return ipa.Dict(), nil
	}

	d, err := dict.LoadDictFile(name)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", name, err)
	}
	return d, nil
}

// DictionaryPath extracts the dictionary from a configuration string,
// honouring MeCab's "-d <path>" and "-d<path>" forms.
func DictionaryPath(arg string) string {
	fields := strings.Fields(arg)
	for i, f := range fields {
		if f == "-d" && i+1 < len(fields) {
			return fields[i+1]
		}
		if strings.HasPrefix(f, "-d") && len(f) > 2 {
			return f[2:]
		}
	}
	return strings.TrimSpace(arg)
}
