package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cognicore/rakeja/internal/htmltext"
)

// Document is one article of a JSONL corpus
type Document struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"text"`
	HTML        bool      `json:"html"` // Body is markup
}

// Label identifies the document in logs and run records
func (d Document) Label() string {
	switch {
	case d.ID != "":
		return d.ID
	case d.URL != "":
		return d.URL
	default:
		return d.Title
	}
}

// Text returns the title and body as plain text, one per line
func (d Document) Text() string {
	body := d.Body
	if d.HTML {
		body = htmltext.Text(body)
	}
	if d.Title == "" {
		return body
	}
	return d.Title + "\n" + body
}

// LoadFromJSONL loads documents from a JSONL file. Malformed lines are
// skipped with a warning.
func LoadFromJSONL(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []Document
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if doc.ID == "" && doc.URL == "" && doc.Title == "" {
			doc.ID = fmt.Sprintf("line-%d", i+1)
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}

	return docs, nil
}
