package rank

import "strings"

// Metric selects how a word is scored
type Metric int

const (
	// DegreeToFrequencyRatio scores d(w)/f(w). It is the default.
	DegreeToFrequencyRatio Metric = iota
	// WordDegree scores d(w).
	WordDegree
	// WordFrequency scores f(w).
	WordFrequency
)

var metricNames = map[Metric]string{
	DegreeToFrequencyRatio: "degree_to_frequency_ratio",
	WordDegree:             "word_degree",
	WordFrequency:          "word_frequency",
}

// String returns the snake_case name of the metric
func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return metricNames[DegreeToFrequencyRatio]
}

// Valid reports whether m is one of the known metrics
func (m Metric) Valid() bool {
	_, ok := metricNames[m]
	return ok
}

// Normalize maps unknown values to the default metric
func (m Metric) Normalize() Metric {
	if !m.Valid() {
		return DegreeToFrequencyRatio
	}
	return m
}

// ParseMetric reads a metric name. Case, dashes and the short aliases
// "ratio", "degree" and "frequency" are accepted; anything else silently
// falls back to DegreeToFrequencyRatio.
func ParseMetric(s string) Metric {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch key {
	case "word_degree", "degree":
		return WordDegree
	case "word_frequency", "frequency":
		return WordFrequency
	default:
		return DegreeToFrequencyRatio
	}
}
