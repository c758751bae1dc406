package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/cognicore/rakeja/internal/corpus"
	"github.com/cognicore/rakeja/internal/htmltext"
	"github.com/cognicore/rakeja/pkg/rakeja"
	"github.com/cognicore/rakeja/pkg/rakeja/config"
	"github.com/cognicore/rakeja/pkg/rakeja/rank"
)

const sampleText = `
AIチャットボット「りんな」などを手がけるrinna（リンナ）は4月7日、日本語に特化したGPT-2の大規模言語モデルを構築し、GitHubおよびNLPモデルライブラリー「HuggingFace」において、トレーニングコードと言語モデルをオープンソースソフトウェアとして公開した。
また今回公開したモデルは、GPT2-mediumと定義される中規模サイズのものという。今後、パフォーマンスとコストのトレードオフに基づいてユーザーおよび研究者が最善の選択を行えるよう、異なるサイズのモデルも公開する予定。異なるデータでトレーニングした新しいモデルの公開も計画している。
rinnaの研究チームが開発している大規模な言語モデルは、すでに同社プロダクトに広く使用されているという。同社は今後も、異なるテキストスタイルや異なるデータ量を含む、より高精度でより大規模な言語モデルの研究開発を続け、AIチャットボットの能力を高めるとしている。また、日本語の研究コミュニティのために、これらのモデルのオープンソース化を行う。
`

func main() {
	var (
		text       = flag.String("text", sampleText, "Text to extract keyphrases from")
		pos        = flag.String("pos", "名詞", "Part-of-speech tags to keep, separated by ','")
		configPath = flag.String("config", "", "Optional: YAML configuration file")
		dictSpec   = flag.String("dict", "", "Dictionary: ipa, a dictionary file or \"-d <path>\"")
		userDict   = flag.String("user-dict", "", "Optional: user dictionary CSV")
		metric     = flag.String("metric", "", "Ranking metric: degree_to_frequency_ratio, word_degree or word_frequency")
		minLength  = flag.Int("min-length", rakeja.DefaultOptions().MinLength, "Minimum phrase length in words")
		maxLength  = flag.Int("max-length", rakeja.DefaultOptions().MaxLength, "Maximum phrase length in words")
		noSlothLib = flag.Bool("no-slothlib", false, "Do not fetch the SlothLib stopword list")
		stopwords  = flag.String("stopwords", "", "Additional stopwords, separated by ','")
		dbPath     = flag.String("db", "", "Optional: SQLite file for the stopword cache and run log")
		isHTML     = flag.Bool("html", false, "Treat --text as HTML")
		input      = flag.String("input", "", "Optional: JSONL corpus, one ranking per document")
		scores     = flag.Bool("scores", false, "Print scores next to phrases")
		top        = flag.Int("top", 0, "Print at most this many phrases (0 = all)")
		explain    = flag.Bool("explain", false, "Print the per-word score breakdown of each phrase")
		listStops  = flag.Bool("list-stopwords", false, "Print the stopwords and punctuation in use and exit")
		history    = flag.Int("history", 0, "Print this many recent runs from --db and exit")
		showRun    = flag.String("run", "", "Print a stored run from --db by ID and exit")
		showConfig = flag.Bool("show-config", false, "Print the effective extractor settings and exit")
	)
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	ctx := context.Background()

	loader := config.Loader{ConfigPath: *configPath, DBPath: *dbPath}
	components, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	defer components.Close()

	if *history > 0 || *showRun != "" {
		if components.Store == nil {
			log.Fatal("--db required to read runs")
		}
		if err := printStoredRuns(ctx, os.Stdout, components.Store, *showRun, *history); err != nil {
			log.Fatalf("read runs: %v", err)
		}
		return
	}

	opts := components.Options
	if opts.Stopwords == nil {
		opts.Stopwords = []string{}
	}
	opts.Stopwords = append(opts.Stopwords, splitList(*stopwords)...)
	if set["pos"] || components.Config.POSList == nil {
		opts.POSList = splitList(*pos)
	}
	if set["dict"] {
		opts.Dictionary = *dictSpec
	}
	if set["user-dict"] {
		opts.UserDictionary = *userDict
	}
	if set["metric"] {
		opts.Metric = rank.ParseMetric(*metric)
	}
	if set["min-length"] {
		opts.MinLength = *minLength
	}
	if set["max-length"] {
		opts.MaxLength = *maxLength
	}
	if *noSlothLib {
		opts.DisableSlothLib = true
	}

	rk, err := rakeja.New(ctx, opts)
	if err != nil {
		log.Fatalf("init extractor: %v", err)
	}

	if *listStops {
		printStoplist(os.Stdout, rk.Stoplist())
		return
	}
	if *showConfig {
		printSettings(os.Stdout, rk)
		return
	}

	if *input != "" {
		docs, err := corpus.LoadFromJSONL(*input)
		if err != nil {
			log.Fatalf("load docs: %v", err)
		}
		for i, doc := range docs {
			if i > 0 {
				os.Stdout.WriteString("\n")
			}
			res := rk.ExtractFromText(doc.Text())
			printHeader(os.Stdout, doc.Label())
			report(os.Stdout, res, *top, *scores, *explain)
			saveRun(ctx, components, res, doc.Label())
		}
		log.Printf("Extracted keyphrases from %d documents", len(docs))
		return
	}

	in := *text
	if *isHTML {
		in = htmltext.Text(in)
	}
	res := rk.ExtractFromText(in)
	report(os.Stdout, res, *top, *scores, *explain)
	saveRun(ctx, components, res, "text")
}

func saveRun(ctx context.Context, comp *config.Components, res *rakeja.Result, label string) {
	if comp.Store == nil {
		return
	}
	if err := comp.Store.SaveRun(ctx, res.Run(label)); err != nil {
		log.Printf("Warning: failed to save run %s: %v", res.ID, err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
