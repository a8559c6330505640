package aggregator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"newspulse/internal/models"
	"newspulse/internal/provider"
	"newspulse/internal/repository"
)

// Analyzer is the slice of the analysis service the aggregator needs.
type Analyzer interface {
	AnalyzeArticle(ctx context.Context, article *models.Article) (*models.Analysis, error)
}

// Summary reports what one aggregation run accomplished.
type Summary struct {
	Trigger         string  `json:"trigger"`
	Fetched         int     `json:"fetched"`
	Deduplicated    int     `json:"deduplicated"`
	HighImpact      int     `json:"high_impact"`
	Saved           int     `json:"saved"`
	Analyzed        int     `json:"analyzed"`
	AnalysisFailed  int     `json:"analysis_failed"`
	AnalysisPending int     `json:"analysis_pending"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Service orchestrates one aggregation cycle: fan out to the providers, merge
// and deduplicate, filter for impact, persist, then analyze through a bounded
// worker pool.
type Service struct {
	Providers []provider.Provider
	Repo      repository.Repository
	Analyzer  Analyzer
	Logger    *zap.Logger

	// Symbols is the tracked universe handed to each provider.
	Symbols []string

	// Workers bounds concurrent analysis calls; JoinTimeout caps how long Run
	// waits for the pool to drain before returning with a pending count.
	Workers     int
	JoinTimeout time.Duration
}

// Run executes one full aggregation cycle. Provider and per-article failures
// are absorbed and tallied; Run only errors when it cannot make progress at
// all, which currently never happens, so callers can treat the Summary as the
// outcome.
func (s *Service) Run(ctx context.Context, trigger string) (Summary, error) {
	started := time.Now()
	s.Logger.Info("aggregation started",
		zap.String("trigger", trigger),
		zap.Int("providers", len(s.Providers)))

	merged := s.fetchAll(ctx)
	deduped := Deduplicate(merged)
	highImpact := FilterHighImpact(deduped)

	summary := Summary{
		Trigger:      trigger,
		Fetched:      len(merged),
		Deduplicated: len(deduped),
		HighImpact:   len(highImpact),
	}

	saved := s.persist(ctx, highImpact)
	summary.Saved = len(saved)

	analyzed, failed, pending := s.analyze(ctx, saved)
	summary.Analyzed = analyzed
	summary.AnalysisFailed = failed
	summary.AnalysisPending = pending
	summary.DurationSeconds = time.Since(started).Seconds()

	s.Logger.Info("aggregation finished",
		zap.String("trigger", trigger),
		zap.Int("fetched", summary.Fetched),
		zap.Int("saved", summary.Saved),
		zap.Int("analyzed", summary.Analyzed),
		zap.Int("analysis_failed", summary.AnalysisFailed),
		zap.Int("analysis_pending", summary.AnalysisPending),
		zap.Float64("duration_seconds", summary.DurationSeconds))

	return summary, nil
}

// fetchAll queries every provider concurrently and concatenates the results in
// provider registration order, so dedup's first-wins rule is deterministic.
func (s *Service) fetchAll(ctx context.Context) []models.Article {
	results := make([][]models.Article, len(s.Providers))

	var wg sync.WaitGroup
	for i, p := range s.Providers {
		wg.Add(1)
		go func(i int, p provider.Provider) {
			defer wg.Done()
			items := p.Fetch(ctx, s.Symbols)
			s.Logger.Info("provider fetch done",
				zap.String("provider", p.Name()),
				zap.Int("articles", len(items)))
			results[i] = items
		}(i, p)
	}
	wg.Wait()

	var merged []models.Article
	for _, items := range results {
		merged = append(merged, items...)
	}
	return merged
}

// persist upserts each article sequentially. A failed upsert is logged and
// skipped; the article takes no further part in the run.
func (s *Service) persist(ctx context.Context, articles []models.Article) []models.Article {
	saved := make([]models.Article, 0, len(articles))
	for i := range articles {
		a := articles[i]
		if err := s.Repo.UpsertArticleByURL(ctx, &a); err != nil {
			s.Logger.Warn("save article failed",
				zap.String("url", a.URL),
				zap.Error(err))
			continue
		}
		saved = append(saved, a)
	}
	return saved
}

// analyze feeds the saved articles through a bounded worker pool and waits up
// to JoinTimeout for it to drain. Articles still in flight at the deadline are
// counted as pending; their goroutines finish in the background.
func (s *Service) analyze(ctx context.Context, articles []models.Article) (analyzed, failed, pending int) {
	if len(articles) == 0 || s.Analyzer == nil {
		return 0, 0, 0
	}

	workers := s.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(articles) {
		workers = len(articles)
	}

	var okCount, failCount atomic.Int64
	jobs := make(chan models.Article)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range jobs {
				if _, err := s.Analyzer.AnalyzeArticle(ctx, &a); err != nil {
					s.Logger.Warn("analysis failed",
						zap.Uint64("article_id", a.ID),
						zap.String("url", a.URL),
						zap.Error(err))
					failCount.Add(1)
					continue
				}
				okCount.Add(1)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, a := range articles {
			select {
			case jobs <- a:
			case <-ctx.Done():
				return
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	joinTimeout := s.JoinTimeout
	if joinTimeout <= 0 {
		joinTimeout = 2 * time.Minute
	}

	select {
	case <-done:
	case <-time.After(joinTimeout):
		s.Logger.Warn("analysis pool did not drain before join timeout",
			zap.Duration("timeout", joinTimeout))
	case <-ctx.Done():
	}

	analyzed = int(okCount.Load())
	failed = int(failCount.Load())
	pending = len(articles) - analyzed - failed
	if pending < 0 {
		pending = 0
	}
	return analyzed, failed, pending
}
