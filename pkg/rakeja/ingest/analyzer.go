package ingest

// Token is one morpheme produced by an Analyzer
type Token struct {
	Surface string
	POS     []string // coarse category first, e.g. 名詞,固有名詞,...
}

// Category returns the coarse part-of-speech tag, or "" when untagged.
func (t Token) Category() string {
	if len(t.POS) == 0 {
		return ""
	}
	return t.POS[0]
}

// Analyzer segments a sentence into part-of-speech tagged tokens.
// Implementations wrap a morphological analyzer; any language works as long
// as it yields surfaces in sentence order.
type Analyzer interface {
	Analyze(sentence string) []Token
}

// AnalyzerFunc adapts a function to the Analyzer interface
type AnalyzerFunc func(sentence string) []Token

// Analyze implements Analyzer.
func (f AnalyzerFunc) Analyze(sentence string) []Token {
	return f(sentence)
}
