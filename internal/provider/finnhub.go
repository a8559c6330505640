package provider

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"go.uber.org/zap"

	"newspulse/internal/config"
	"newspulse/internal/models"
)

// FinnhubClient fetches per-symbol company news. The loop is strictly
// sequential with a short delay between requests; Finnhub meters per request,
// not per run.
type FinnhubClient struct {
	Logger *zap.Logger

	api            *finnhub.DefaultApiService
	maxSymbols     int
	perSymbolLimit int
	requestDelay   time.Duration
	lookback       time.Duration
}

func NewFinnhubClient(cfg config.FinnhubConfig, logger *zap.Logger) *FinnhubClient {
	fcfg := finnhub.NewConfiguration()
	fcfg.AddDefaultHeader("X-Finnhub-Token", cfg.APIKey)

	maxSymbols := cfg.MaxSymbols
	if maxSymbols <= 0 {
		maxSymbols = 20
	}
	perSymbol := cfg.PerSymbolLimit
	if perSymbol <= 0 {
		perSymbol = 5
	}
	lookbackHours := cfg.LookbackHours
	if lookbackHours <= 0 {
		lookbackHours = 24
	}

	return &FinnhubClient{
		Logger:         logger,
		api:            finnhub.NewAPIClient(fcfg).DefaultApi,
		maxSymbols:     maxSymbols,
		perSymbolLimit: perSymbol,
		requestDelay:   cfg.RequestDelay,
		lookback:       time.Duration(lookbackHours) * time.Hour,
	}
}

func (c *FinnhubClient) Name() string { return "finnhub" }

func (c *FinnhubClient) Fetch(ctx context.Context, symbols []string) []models.Article {
	if len(symbols) > c.maxSymbols {
		symbols = symbols[:c.maxSymbols]
	}

	now := time.Now().UTC()
	from := now.Add(-c.lookback).Format("2006-01-02")
	to := now.Format("2006-01-02")

	var articles []models.Article
	for i, symbol := range symbols {
		res, _, err := c.api.CompanyNews(ctx).
			Symbol(symbol).
			From(from).
			To(to).
			Execute()
		if err != nil {
			if c.Logger != nil {
				c.Logger.Warn("finnhub company news failed",
					zap.String("symbol", symbol),
					zap.Error(err),
				)
			}
		} else {
			if len(res) > c.perSymbolLimit {
				res = res[:c.perSymbolLimit]
			}
			for _, item := range res {
				articles = append(articles, c.mapArticle(item, symbol))
			}
		}

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

func (c *FinnhubClient) mapArticle(item finnhub.CompanyNews, symbol string) models.Article {
	a := models.Article{Source: "Finnhub"}

	if item.Headline != nil {
		a.Title = *item.Headline
	}
	if item.Summary != nil {
		a.Content = *item.Summary
	}
	if item.Source != nil && *item.Source != "" {
		a.Source = *item.Source
	}
	if item.Url != nil {
		a.URL = *item.Url
	}
	if item.Image != nil {
		a.ImageURL = *item.Image
	}
	if item.Datetime != nil {
		a.PublishedAt = time.Unix(*item.Datetime, 0).UTC()
	}
	a.SetSymbols([]string{symbol})

	return a
}
