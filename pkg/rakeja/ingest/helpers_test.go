package ingest

import "strings"

// taggedAnalyzer reads whitespace separated "surface/POS" tokens.
// Tokens without a tag are nouns.
type taggedAnalyzer struct {
	calls int
}

func (a *taggedAnalyzer) Analyze(sentence string) []Token {
	a.calls++
	var toks []Token
	for _, f := range strings.Fields(sentence) {
		surface, pos, ok := strings.Cut(f, "/")
		if !ok {
			pos = "名詞"
		}
		toks = append(toks, Token{Surface: surface, POS: []string{pos}})
	}
	return toks
}

type ignoreSet map[string]bool

func (s ignoreSet) IsStop(token string) bool { return s[token] }
