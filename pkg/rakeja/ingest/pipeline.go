package ingest

// Pipeline orchestrates candidate generation:
// sentences → tokenization (POS filter) → phrase runs → document-wide set
type Pipeline struct {
	tokenizer *Tokenizer
	generator *PhraseGenerator
}

// NewPipeline creates a pipeline with the given components
func NewPipeline(tokenizer *Tokenizer, generator *PhraseGenerator) *Pipeline {
	return &Pipeline{
		tokenizer: tokenizer,
		generator: generator,
	}
}

// Process builds the set of distinct candidate phrases across all sentences.
// A phrase repeated anywhere in the document is stored once.
func (p *Pipeline) Process(sentences []string) *PhraseSet {
	set := NewPhraseSet()
	for _, sentence := range sentences {
		words := p.tokenizer.Tokenize(sentence)
		for _, phrase := range p.generator.Generate(words) {
			set.Add(phrase)
		}
	}
	return set
}
