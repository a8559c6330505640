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
	"newspulse/internal/stocks"
)

// NewsAPIClient queries the NewsAPI.org "everything" endpoint with a keyword
// union of all tracked symbols, restricted to a fixed set of quality domains.
// NewsAPI has no instrument tagging, so related stocks come from the tagger.
type NewsAPIClient struct {
	HTTP    *http.Client
	Logger  *zap.Logger
	Tracked []stocks.Stock

	apiKey   string
	baseURL  string
	pageSize int
	domains  []string
}

func NewNewsAPIClient(cfg config.NewsAPIConfig, tracked []stocks.Stock, logger *zap.Logger) *NewsAPIClient {
	return &NewsAPIClient{
		HTTP:     &http.Client{Timeout: cfg.Timeout},
		Logger:   logger,
		Tracked:  tracked,
		apiKey:   cfg.APIKey,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		pageSize: cfg.PageSize,
		domains:  cfg.Domains,
	}
}

func (c *NewsAPIClient) Name() string { return "newsapi" }

func (c *NewsAPIClient) Fetch(ctx context.Context, symbols []string) []models.Article {
	params := url.Values{}
	params.Set("q", strings.Join(symbols, " OR "))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", c.pageSize))
	if len(c.domains) > 0 {
		params.Set("domains", strings.Join(c.domains, ","))
	}
	params.Set("apiKey", c.apiKey)

	endpoint := c.baseURL + "/everything?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.warn("newsapi request build failed", err)
		return nil
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.warn("newsapi fetch failed", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.warn("newsapi fetch failed", fmt.Errorf("status %d", resp.StatusCode))
		return nil
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.warn("newsapi decode failed", err)
		return nil
	}

	articles := make([]models.Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		content := item.Description
		if content == "" {
			content = item.Content
		}

		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		a := models.Article{
			Title:       item.Title,
			Content:     content,
			Source:      item.Source.Name,
			Author:      item.Author,
			URL:         item.URL,
			ImageURL:    item.URLToImage,
			PublishedAt: publishedAt,
		}
		a.SetSymbols(stocks.Extract(item.Title+" "+item.Description, c.Tracked))
		articles = append(articles, a)
	}

	return articles
}

func (c *NewsAPIClient) warn(msg string, err error) {
	if c.Logger != nil {
		c.Logger.Warn(msg, zap.Error(err))
	}
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}
