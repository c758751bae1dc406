package stoplist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// SlothLibURL is the SlothLib Japanese stopword list.
const SlothLibURL = "http://svn.sourceforge.jp/svnroot/slothlib/CSharp/Version1/SlothLib/NLP/Filter/StopWord/word/Japanese.txt"

// DefaultHTTPTimeout bounds a single stopword fetch.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPProvider fetches a newline-delimited stopword list over HTTP.
type HTTPProvider struct {
	URL string
	// Encoding forces a text encoding by WHATWG label ("utf-8", "shift_jis",
	// "euc-jp"). When empty the Content-Type charset is used, then UTF-8.
	Encoding string
	Client   *http.Client
}

// NewHTTPProvider creates a provider for url with a default client.
func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		URL:    url,
		Client: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// Stopwords implements Provider.
func (p *HTTPProvider) Stopwords(ctx context.Context) ([]string, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: HTTP %d", p.URL, resp.StatusCode)
	}

	body, err := p.decode(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.URL, err)
	}

	return ParseLines(string(data)), nil
}

func (p *HTTPProvider) decode(r io.Reader, contentType string) (io.Reader, error) {
	if p.Encoding != "" {
		enc, err := htmlindex.Get(p.Encoding)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", p.Encoding, err)
		}
		return transform.NewReader(r, enc.NewDecoder()), nil
	}
	// Without a charset in the header, valid UTF-8 is detected by sniffing.
	return charset.NewReader(r, contentType)
}
