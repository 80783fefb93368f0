// Package extract pulls structured content out of arbitrary article
// pages. Extraction is best-effort: the markup carries no schema, so
// each field is resolved by an ordered chain of strategies and missing
// structure degrades to empty fields rather than errors.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// userAgent identifies the client as a browser. Some origins reject
// default Go client identifiers.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Content is the result of one extraction call. It is transient and
// never persisted. On failure only Success, Error, and URL are set.
type Content struct {
	Success       bool   `json:"success"`
	URL           string `json:"url"`
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Description   string `json:"description,omitempty"`
	Author        string `json:"author,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	ContentLength int    `json:"content_length,omitempty"`
	WordCount     int    `json:"word_count,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Extractor retrieves article pages and runs the extraction chains.
type Extractor struct {
	httpClient *http.Client
}

// New creates an Extractor using the given HTTP client.
func New(httpClient *http.Client) *Extractor {
	return &Extractor{httpClient: httpClient}
}

var (
	blankLines = regexp.MustCompile(`\n\s*\n`)
	multiSpace = regexp.MustCompile(` +`)
)

// Extract fetches the page at url and extracts title, body content,
// description, author, and published date. Results are all-or-nothing:
// any network or parse fault yields a failure Content with no partial
// fields populated.
func (e *Extractor) Extract(ctx context.Context, url string) Content {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failure(url, fmt.Sprintf("invalid article URL: %v", err))
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return failure(url, fmt.Sprintf("error downloading article: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failure(url, fmt.Sprintf("HTTP error %d when downloading article", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return failure(url, fmt.Sprintf("error parsing article HTML: %v", err))
	}

	content := extractBody(doc)

	return Content{
		Success:       true,
		URL:           url,
		Title:         extractTitle(doc),
		Content:       content,
		Description:   firstNonEmpty(doc, descriptionStrategies),
		Author:        firstNonEmpty(doc, authorStrategies),
		PublishedDate: firstNonEmpty(doc, publishedDateStrategies),
		ContentLength: len(content),
		WordCount:     len(strings.Fields(content)),
	}
}

func failure(url, message string) Content {
	return Content{Success: false, URL: url, Error: message}
}

// extractTitle prefers the first h1, falling back to the document title.
func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractBody tries the structural container selectors in priority
// order. When one matches, non-content descendants are stripped and the
// text is whitespace-normalized. When none match, the text of every
// paragraph in the document is joined by blank lines instead.
func extractBody(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		container.Find("script, style, nav, header, footer, aside").Remove()

		text := container.Text()
		text = blankLines.ReplaceAllString(text, "\n\n")
		text = multiSpace.ReplaceAllString(text, " ")
		return strings.TrimSpace(text)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}
