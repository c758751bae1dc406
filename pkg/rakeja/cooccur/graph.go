package cooccur

// Graph holds word frequencies and the word co-occurrence weights of a
// phrase collection
type Graph struct {
	freq   map[string]int            // occurrences across all phrases
	weight map[string]map[string]int // word -> co-word -> weight
	degree map[string]int            // row sums of weight
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		freq:   make(map[string]int),
		weight: make(map[string]map[string]int),
		degree: make(map[string]int),
	}
}

// Build creates a graph from a phrase collection. Each phrase is counted
// once per call to AddPhrase, so callers pass distinct phrases when
// repeated phrases should not weigh more.
func Build(phrases [][]string) *Graph {
	g := NewGraph()
	for _, p := range phrases {
		g.AddPhrase(p)
	}
	return g
}

// AddPhrase counts every word of the phrase (repeats included) and adds one
// to the weight of every ordered pair in phrase × phrase, so each word
// co-occurs with itself.
func (g *Graph) AddPhrase(words []string) {
	for _, w := range words {
		g.freq[w]++
	}

	for _, w := range words {
		row := g.weight[w]
		if row == nil {
			row = make(map[string]int)
			g.weight[w] = row
		}
		for _, co := range words {
			row[co]++
		}
		g.degree[w] += len(words)
	}
}

// Weight returns the co-occurrence weight of a and b (0 when unseen)
func (g *Graph) Weight(a, b string) int {
	return g.weight[a][b]
}

// FrequencyOf returns the frequency of w (0 when unseen)
func (g *Graph) FrequencyOf(w string) int {
	return g.freq[w]
}

// DegreeOf returns the total edge weight incident to w, self-loop included
func (g *Graph) DegreeOf(w string) int {
	return g.degree[w]
}

// Frequency returns a copy of the word frequency distribution
func (g *Graph) Frequency() map[string]int {
	return copyCounts(g.freq)
}

// Degree returns a copy of the degree table
func (g *Graph) Degree() map[string]int {
	return copyCounts(g.degree)
}

// Neighbors returns a copy of the co-words of w with their weights
func (g *Graph) Neighbors(w string) map[string]int {
	return copyCounts(g.weight[w])
}

// UniqueWords returns the number of distinct words
func (g *Graph) UniqueWords() int {
	return len(g.freq)
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
