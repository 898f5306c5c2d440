package imslp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// Score describes one downloadable score file found on a work page.
type Score struct {
	Title       string
	URL         string
	Description string
	SizeLabel   string
}

const (
	defaultTimeout   = 30 * time.Second
	defaultPerMinute = 20
	defaultMaxScores = 10

	// Work pages wrap each file entry in this span; the layout has been
	// stable for years.
	scoreSelector = "span.we_file_info2"

	descriptionLimit = 150
)

var sizePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(MB|KB|GB)`)

// Fetcher defines the page operations the pipeline needs. *Client satisfies
// it; tests substitute fakes.
type Fetcher interface {
	VerifyWork(ctx context.Context, pageURL string) (bool, error)
	FetchScores(ctx context.Context, pageURL string) ([]Score, error)
}

// Client scrapes imslp.org work pages.
type Client struct {
	base       *url.URL
	userAgent  string
	maxScores  int
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRateLimit caps outgoing requests per minute.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		}
	}
}

// WithMaxScores caps how many score links FetchScores collects per page.
func WithMaxScores(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxScores = n
		}
	}
}

// New creates a client for the given site root.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("imslp base url required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("imslp base url %q is not absolute", baseURL)
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("imslp user agent required")
	}

	client := &Client{
		base:       parsed,
		userAgent:  userAgent,
		maxScores:  defaultMaxScores,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/defaultPerMinute), 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// VerifyWork issues a HEAD request and reports whether the page exists.
// Transport failures are returned as errors; a clean non-200 answer is just
// "does not exist".
func (c *Client) VerifyWork(ctx context.Context, pageURL string) (bool, error) {
	resp, err := c.do(ctx, http.MethodHead, pageURL)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

// FetchScores downloads the work page and extracts score file entries, at
// most the configured cap.
func (c *Client) FetchScores(ctx context.Context, pageURL string) ([]Score, error) {
	resp, err := c.do(ctx, http.MethodGet, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	var scores []Score
	doc.Find(scoreSelector).EachWithBreak(func(_ int, span *goquery.Selection) bool {
		link := span.Find("a").First()
		href, ok := link.Attr("href")
		if !ok || !looksLikePDF(href) {
			return true
		}
		scores = append(scores, Score{
			Title:       strings.TrimSpace(link.Text()),
			URL:         c.resolve(href),
			Description: extractDescription(span),
			SizeLabel:   extractSizeLabel(span),
		})
		return len(scores) < c.maxScores
	})
	return scores, nil
}

func (c *Client) do(ctx context.Context, method, pageURL string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", strings.ToLower(method), pageURL, err)
	}
	return resp, nil
}

func (c *Client) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return c.base.ResolveReference(ref).String()
}

func looksLikePDF(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasSuffix(lower, ".pdf") || strings.Contains(lower, "pdf")
}

// extractDescription takes the text of the span's parent element, which on
// work pages holds the publisher and edition line, capped for report layout.
func extractDescription(span *goquery.Selection) string {
	parent := span.Parent()
	if parent.Length() == 0 {
		return "PDF Score"
	}
	text := strings.Join(strings.Fields(parent.Text()), " ")
	if text == "" {
		return "PDF Score"
	}
	runes := []rune(text)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit]) + "..."
	}
	return text
}

func extractSizeLabel(span *goquery.Selection) string {
	parent := span.Parent()
	if parent.Length() == 0 {
		return "Unknown size"
	}
	match := sizePattern.FindStringSubmatch(parent.Text())
	if match == nil {
		return "Unknown size"
	}
	return match[1] + " " + strings.ToUpper(match[2])
}
