package recommend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	// maxExtractedChars caps how much page text feeds the embedding step.
	maxExtractedChars = 5000

	// minQueryTokens is the token count below which a query gets wrapped
	// with extra lexical context before embedding.
	minQueryTokens = 5

	jobDescriptionPrefix = "Job description: "
	shortQueryPrefix     = "Find assessments for: "
)

// pageExtractor fetches a job-posting URL and reduces it to visible text.
type pageExtractor struct {
	client *http.Client
	logger *slog.Logger
}

func newPageExtractor(client *http.Client) *pageExtractor {
	return &pageExtractor{
		client: client,
		logger: slog.Default().With("component", "page-extractor"),
	}
}

// isURL reports whether the text is a well-formed absolute URL, meaning it
// carries both a scheme and a host.
func isURL(text string) bool {
	u, err := url.Parse(strings.TrimSpace(text))
	return err == nil && u.Scheme != "" && u.Host != ""
}

// extract fetches the page and returns its visible text, scripts and styles
// removed and whitespace collapsed, truncated to maxExtractedChars runes.
func (p *pageExtractor) extract(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(pageURL), nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", err
	}

	text := strings.Join(strings.Fields(visibleText(doc)), " ")
	runes := []rune(text)
	if len(runes) > maxExtractedChars {
		text = string(runes[:maxExtractedChars])
	}
	return text, nil
}

// visibleText walks the parse tree collecting text nodes, skipping script
// and style subtrees.
func visibleText(n *html.Node) string {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}

	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if t := visibleText(child); t != "" {
			b.WriteString(t)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// prepareQuery rewrites the raw query for embedding. A well-formed absolute
// URL is replaced by the extracted page text under a fixed label; extraction
// failure of any kind leaves the raw query untouched. A query with too few
// tokens is wrapped with a fixed prefix to give the embedding more lexical
// signal. Intent analysis always runs on the raw query, never this output.
func (p *pageExtractor) prepareQuery(ctx context.Context, query string) string {
	if isURL(query) {
		text, err := p.extract(ctx, query)
		switch {
		case err != nil:
			p.logger.Warn("url text extraction failed, using raw query", "err", err)
		case text != "":
			query = jobDescriptionPrefix + text
		}
	}

	if len(strings.Fields(query)) < minQueryTokens {
		query = shortQueryPrefix + query
	}

	return query
}
