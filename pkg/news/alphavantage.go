package news

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

type AlphaVantageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		baseURL:    alphaVantageBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

// Fetch returns the latest blockchain-topic news with the crypto tickers each story mentions.
func (c *AlphaVantageClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("topics", "blockchain")
	q.Set("sort", "LATEST")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/query?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", resp.StatusCode)
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		if limit > 0 && len(articles) >= limit {
			break
		}

		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		symbols := make([]string, 0, len(item.TickerSentiment))
		for _, ts := range item.TickerSentiment {
			if ts.Ticker != "" {
				symbols = append(symbols, strings.TrimPrefix(ts.Ticker, "CRYPTO:"))
			}
		}

		articles = append(articles, Article{
			ExternalID:  generateExternalID(item.URL),
			Headline:    item.Title,
			Detail:      item.Summary,
			URL:         item.URL,
			Publisher:   item.Source,
			PublishedAt: publishedAt,
			Symbols:     symbols,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title           string              `json:"title"`
	Summary         string              `json:"summary"`
	URL             string              `json:"url"`
	Source          string              `json:"source"`
	TimePublished   string              `json:"time_published"`
	TickerSentiment []avTickerSentiment `json:"ticker_sentiment"`
}

type avTickerSentiment struct {
	Ticker string `json:"ticker"`
}
