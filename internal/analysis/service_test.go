package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"newspulse/internal/models"
)

type stubCompleter struct {
	response string
	err      error
	prompts  []string
}

func (c *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubCompleter) ModelVersion() string { return "stub-model-1" }

func storedArticle(repo *stubRepo, symbols []string) *models.Article {
	a := models.Article{
		ID:          1,
		Title:       "Apple announces acquisition",
		Content:     "Apple Inc. will acquire a robotics startup.",
		Source:      "Reuters",
		URL:         "https://example.com/aapl",
		PublishedAt: time.Now(),
	}
	a.SetSymbols(symbols)
	repo.articles[a.ID] = a
	return &a
}

const fullResponse = `{
  "event_type": "acquisition",
  "sentiment_score": 0.6,
  "confidence_score": 0.9,
  "affected_stocks": [
    {
      "symbol": "AAPL",
      "impact": "positive",
      "recommendation": "BUY",
      "rationale": "expands robotics capability",
      "target_change": 2.5,
      "timeframe": "2_weeks"
    }
  ],
  "key_insights": ["vertical integration play"],
  "risk_factors": [],
  "historical_context": "prior tuck-in acquisitions were absorbed smoothly",
  "overall_assessment": "modestly positive for the acquirer"
}`

func TestAnalyzeArticlePersistsAnalysisAndRecommendations(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	completer := &stubCompleter{response: fullResponse}
	svc := NewService(repo, completer, zap.NewNop())

	record, err := svc.AnalyzeArticle(context.Background(), article)
	if err != nil {
		t.Fatalf("AnalyzeArticle: %v", err)
	}

	if record.EventType != models.EventAcquisition {
		t.Fatalf("event_type=%q", record.EventType)
	}
	if record.Recommendation != models.ActionBuy {
		t.Fatalf("denormalized recommendation=%q want BUY", record.Recommendation)
	}
	if record.ModelVersion != "stub-model-1" {
		t.Fatalf("model_version=%q", record.ModelVersion)
	}

	if len(repo.recommendations) != 1 {
		t.Fatalf("recommendations=%d want=1", len(repo.recommendations))
	}
	rec := repo.recommendations[0]
	if rec.StockSymbol != "AAPL" || rec.Action != models.ActionBuy {
		t.Fatalf("recommendation=%+v", rec)
	}
	if rec.StockName != "Apple Inc." {
		t.Fatalf("stock_name=%q want resolved display name", rec.StockName)
	}
	if rec.Confidence != 0.9 {
		t.Fatalf("confidence=%v want inherited 0.9", rec.Confidence)
	}
	if rec.RiskLevel != models.RiskLow {
		t.Fatalf("risk_level=%q want LOW for zero risk factors", rec.RiskLevel)
	}
	if got := rec.ExpiresAt.Sub(rec.CreatedAt); got != models.RecommendationTTL {
		t.Fatalf("expiry window=%v want=%v", got, models.RecommendationTTL)
	}
	if !rec.IsActive {
		t.Fatal("recommendation should start active")
	}
}

func TestAnalyzeArticleMalformedResponse(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	completer := &stubCompleter{response: "I am unable to help with that."}
	svc := NewService(repo, completer, zap.NewNop())

	_, err := svc.AnalyzeArticle(context.Background(), article)
	if !errors.Is(err, ErrMalformedAnalysis) {
		t.Fatalf("err=%v want ErrMalformedAnalysis", err)
	}
	if len(repo.analyses) != 0 || len(repo.recommendations) != 0 {
		t.Fatal("nothing should be persisted on parse failure")
	}
}

func TestAnalyzeArticleClampsScores(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	completer := &stubCompleter{response: `{
		"event_type": "earnings",
		"sentiment_score": 1.8,
		"confidence_score": 1.3,
		"affected_stocks": [],
		"key_insights": [],
		"risk_factors": []
	}`}
	svc := NewService(repo, completer, zap.NewNop())

	record, err := svc.AnalyzeArticle(context.Background(), article)
	if err != nil {
		t.Fatalf("AnalyzeArticle: %v", err)
	}
	if record.SentimentScore != 1 || record.ConfidenceScore != 1 {
		t.Fatalf("scores=%v/%v want clamped to 1/1", record.SentimentScore, record.ConfidenceScore)
	}
	if record.Recommendation != models.ActionHold {
		t.Fatalf("recommendation=%q want HOLD when nothing affected", record.Recommendation)
	}
	if len(repo.recommendations) != 0 {
		t.Fatalf("recommendations=%d want=0", len(repo.recommendations))
	}
}

func TestAnalyzeArticleClampWarningLogsOriginalScores(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	completer := &stubCompleter{response: `{
		"event_type": "earnings",
		"sentiment_score": 1.8,
		"confidence_score": -0.2,
		"affected_stocks": [],
		"key_insights": [],
		"risk_factors": []
	}`}
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewService(repo, completer, zap.New(core))

	if _, err := svc.AnalyzeArticle(context.Background(), article); err != nil {
		t.Fatalf("AnalyzeArticle: %v", err)
	}

	entries := logs.FilterMessage("model returned out-of-range scores, clamped").All()
	if len(entries) != 1 {
		t.Fatalf("clamp warnings=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["sentiment"]; got != 1.8 {
		t.Fatalf("logged sentiment=%v want pre-clamp 1.8", got)
	}
	if got := fields["confidence"]; got != -0.2 {
		t.Fatalf("logged confidence=%v want pre-clamp -0.2", got)
	}
}

func TestAnalyzeArticleIncludesPatternsInPrompt(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	repo.patterns[patternKey("AAPL", models.EventAcquisition)] = models.HistoricalPattern{
		StockSymbol:    "AAPL",
		EventType:      models.EventAcquisition,
		Timeframe:      models.TimeframeTwoWeeks,
		AvgPriceChange: 1.9,
		SampleSize:     7,
		Confidence:     0.6,
	}
	completer := &stubCompleter{response: fullResponse}
	svc := NewService(repo, completer, zap.NewNop())

	if _, err := svc.AnalyzeArticle(context.Background(), article); err != nil {
		t.Fatalf("AnalyzeArticle: %v", err)
	}
	if len(completer.prompts) != 1 {
		t.Fatalf("prompts=%d want=1", len(completer.prompts))
	}
	if !strings.Contains(completer.prompts[0], "AAPL during acquisition") {
		t.Fatal("pattern data missing from prompt")
	}
}

func TestAnalyzeArticleCompleterError(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	completer := &stubCompleter{err: errors.New("rate limited")}
	svc := NewService(repo, completer, zap.NewNop())

	if _, err := svc.AnalyzeArticle(context.Background(), article); err == nil {
		t.Fatal("want error")
	}
	if len(repo.analyses) != 0 {
		t.Fatal("nothing should be persisted on completion failure")
	}
}

func TestReanalyzeAppendsRow(t *testing.T) {
	repo := newStubRepo()
	article := storedArticle(repo, []string{"AAPL"})
	completer := &stubCompleter{response: fullResponse}
	svc := NewService(repo, completer, zap.NewNop())

	if _, err := svc.AnalyzeArticle(context.Background(), article); err != nil {
		t.Fatalf("first analysis: %v", err)
	}
	if _, err := svc.Reanalyze(context.Background(), article.ID); err != nil {
		t.Fatalf("Reanalyze: %v", err)
	}

	rows, _ := repo.ListAnalysesByArticleID(context.Background(), article.ID)
	if len(rows) != 2 {
		t.Fatalf("analyses=%d want=2", len(rows))
	}
}

func TestReanalyzeUnknownArticle(t *testing.T) {
	svc := NewService(newStubRepo(), &stubCompleter{response: fullResponse}, zap.NewNop())
	if _, err := svc.Reanalyze(context.Background(), 99); err == nil {
		t.Fatal("want error for unknown article")
	}
}

func TestRiskLevel(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, models.RiskLow},
		{1, models.RiskMedium},
		{2, models.RiskMedium},
		{3, models.RiskHigh},
		{7, models.RiskHigh},
	}
	for _, tc := range cases {
		if got := RiskLevel(tc.count); got != tc.want {
			t.Fatalf("RiskLevel(%d)=%q want=%q", tc.count, got, tc.want)
		}
	}
}
