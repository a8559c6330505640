package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"newspulse/internal/config"
	"newspulse/internal/models"
)

// AlphaVantageClient fetches NEWS_SENTIMENT per symbol. The free tier allows
// roughly 25 requests a day, so only a handful of symbols are queried per run
// with a long pause between requests.
type AlphaVantageClient struct {
	HTTP   *http.Client
	Logger *zap.Logger

	apiKey       string
	baseURL      string
	maxSymbols   int
	limit        int
	requestDelay time.Duration
}

func NewAlphaVantageClient(cfg config.AlphaVantageConfig, logger *zap.Logger) *AlphaVantageClient {
	maxSymbols := cfg.MaxSymbols
	if maxSymbols <= 0 {
		maxSymbols = 5
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 10
	}
	return &AlphaVantageClient{
		HTTP:         &http.Client{Timeout: cfg.Timeout},
		Logger:       logger,
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		maxSymbols:   maxSymbols,
		limit:        limit,
		requestDelay: cfg.RequestDelay,
	}
}

func (c *AlphaVantageClient) Name() string { return "alphavantage" }

func (c *AlphaVantageClient) Fetch(ctx context.Context, symbols []string) []models.Article {
	if len(symbols) > c.maxSymbols {
		symbols = symbols[:c.maxSymbols]
	}

	var articles []models.Article
	for i, symbol := range symbols {
		articles = append(articles, c.fetchSymbol(ctx, symbol)...)

		if i < len(symbols)-1 && c.requestDelay > 0 {
			select {
			case <-ctx.Done():
				return articles
			case <-time.After(c.requestDelay):
			}
		}
	}

	return articles
}

func (c *AlphaVantageClient) fetchSymbol(ctx context.Context, symbol string) []models.Article {
	params := url.Values{}
	params.Set("function", "NEWS_SENTIMENT")
	params.Set("tickers", symbol)
	params.Set("limit", fmt.Sprintf("%d", c.limit))
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/query?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.warn(symbol, err)
		return nil
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.warn(symbol, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.warn(symbol, fmt.Errorf("status %d", resp.StatusCode))
		return nil
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.warn(symbol, err)
		return nil
	}

	articles := make([]models.Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		related := make([]string, 0, len(item.TickerSentiment))
		for _, ts := range item.TickerSentiment {
			if ts.Ticker != "" {
				related = append(related, ts.Ticker)
			}
		}
		if len(related) == 0 {
			related = []string{symbol}
		}

		a := models.Article{
			Title:       item.Title,
			Content:     item.Summary,
			Source:      item.Source,
			URL:         item.URL,
			ImageURL:    item.BannerImage,
			PublishedAt: publishedAt,
		}
		a.SetSymbols(related)
		articles = append(articles, a)
	}

	return articles
}

func (c *AlphaVantageClient) warn(symbol string, err error) {
	if c.Logger != nil {
		c.Logger.Warn("alphavantage fetch failed",
			zap.String("symbol", symbol),
			zap.Error(err),
		)
	}
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title           string              `json:"title"`
	Summary         string              `json:"summary"`
	URL             string              `json:"url"`
	Source          string              `json:"source"`
	BannerImage     string              `json:"banner_image"`
	TimePublished   string              `json:"time_published"`
	TickerSentiment []avTickerSentiment `json:"ticker_sentiment"`
}

type avTickerSentiment struct {
	Ticker string `json:"ticker"`
}
