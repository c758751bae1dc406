package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cognicore/rakeja/pkg/rakeja"
	"github.com/cognicore/rakeja/pkg/rakeja/cooccur"
	"github.com/cognicore/rakeja/pkg/rakeja/internalerr"
	"github.com/cognicore/rakeja/pkg/rakeja/rank"
	"github.com/cognicore/rakeja/pkg/rakeja/stoplist"
	"github.com/cognicore/rakeja/pkg/rakeja/store"
)

// printRanked writes one "<index>) <phrase>" line per entry, 1-based
func printRanked(w io.Writer, list []rank.Scored, withScores bool) {
	for i, sc := range list {
		printEntry(w, i+1, sc, withScores)
	}
}

func printEntry(w io.Writer, index int, sc rank.Scored, withScores bool) {
	if withScores {
		fmt.Fprintf(w, "%d) %s (%.4f)\n", index, sc.Phrase, sc.Score)
		return
	}
	fmt.Fprintf(w, "%d) %s\n", index, sc.Phrase)
}

// report prints the best phrases of res, with the per-word breakdown and
// co-words of each phrase when explain is set
func report(w io.Writer, res *rakeja.Result, top int, scores, explain bool) {
	list := res.Top(top)
	if !explain {
		printRanked(w, list, scores)
		return
	}
	fmt.Fprintf(w, "# %d phrases, %d distinct words\n", len(res.Ranked), res.Graph.UniqueWords())
	for i, sc := range list {
		printEntry(w, i+1, sc, scores)
		printBreakdown(w, res.Explain(res.Words[i]), res.Graph)
	}
}

func printBreakdown(w io.Writer, parts []rank.WordContribution, g *cooccur.Graph) {
	for _, p := range parts {
		fmt.Fprintf(w, "    %s\tfreq=%d\tdeg=%d\tscore=%.4f\tco=%s\n",
			p.Word, p.Frequency, p.Degree, p.Score, formatNeighbors(g.Neighbors(p.Word)))
	}
}

// formatNeighbors renders co-words as "word:weight" sorted by word
func formatNeighbors(n map[string]int) string {
	words := make([]string, 0, len(n))
	for word := range n {
		words = append(words, word)
	}
	sort.Strings(words)

	parts := make([]string, len(words))
	for i, word := range words {
		parts[i] = fmt.Sprintf("%s:%d", word, n[word])
	}
	return strings.Join(parts, ",")
}

func printSettings(w io.Writer, rk *rakeja.Rake) {
	fmt.Fprintf(w, "metric\t%s\n", rk.Metric())
	fmt.Fprintf(w, "pos\t%s\n", strings.Join(rk.POSList(), ","))
	fmt.Fprintf(w, "delimiters\t%s\n", strings.Join(rk.Delimiters(), " "))
	fmt.Fprintf(w, "ignored\t%d\n", rk.Stoplist().Len())
}

func printHeader(w io.Writer, label string) {
	fmt.Fprintf(w, "# %s\n", label)
}

func printStoplist(w io.Writer, m *stoplist.Manager) {
	for _, tok := range m.All() {
		kind, _ := m.KindOf(tok)
		fmt.Fprintf(w, "%s\t%s\n", tok, kind)
	}
}

// printStoredRuns prints the run with the given ID, or the newest k runs
// when id is empty.
func printStoredRuns(ctx context.Context, w io.Writer, runs store.RunLog, id string, k int) error {
	if id != "" {
		run, found, err := runs.GetRun(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: run %s", internalerr.ErrNotFound, id)
		}
		printRun(w, run, true)
		return nil
	}

	recent, err := runs.RecentRuns(ctx, k)
	if err != nil {
		return err
	}
	for _, run := range recent {
		printRun(w, run, false)
	}
	return nil
}

func printRun(w io.Writer, run store.Run, phrases bool) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d phrases\n",
		run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Label, run.Metric, len(run.Phrases))
	if !phrases {
		return
	}
	for i, p := range run.Phrases {
		printEntry(w, i+1, rank.Scored{Score: p.Score, Phrase: p.Phrase}, true)
	}
}
