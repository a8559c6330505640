package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"newspulse/internal/ai"
	"newspulse/internal/models"
	"newspulse/internal/repository"
	"newspulse/internal/stocks"
)

// Service runs one article through the analyst model and persists the
// resulting analysis row plus one recommendation per affected instrument.
type Service struct {
	Repo   repository.Repository
	AI     ai.Completer
	Logger *zap.Logger
}

func NewService(repo repository.Repository, completer ai.Completer, logger *zap.Logger) *Service {
	return &Service{Repo: repo, AI: completer, Logger: logger}
}

// AnalyzeArticle performs the full pipeline for one stored article: gather
// historical patterns, build the prompt, call the model, parse and validate
// the response, then persist. A failure anywhere leaves no partial analysis
// row behind except when recommendation inserts fail after the analysis row
// was written; those are logged and skipped.
func (s *Service) AnalyzeArticle(ctx context.Context, article *models.Article) (*models.Analysis, error) {
	if article == nil || article.ID == 0 {
		return nil, fmt.Errorf("analyze: article not persisted")
	}

	symbols := article.Symbols()
	patterns := s.lookupPatterns(ctx, symbols)

	prompt := BuildPrompt(article, symbols, patterns)

	raw, err := s.AI.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("analyze article %d: %w", article.ID, err)
	}

	result, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("analyze article %d: %w", article.ID, err)
	}

	rawSentiment, rawConfidence := result.SentimentScore, result.ConfidenceScore
	if result.ClampScores() {
		s.Logger.Warn("model returned out-of-range scores, clamped",
			zap.Uint64("article_id", article.ID),
			zap.Float64("sentiment", rawSentiment),
			zap.Float64("confidence", rawConfidence))
	}

	record := s.buildAnalysis(article.ID, result)
	if err := s.Repo.InsertAnalysis(ctx, record); err != nil {
		return nil, fmt.Errorf("save analysis for article %d: %w", article.ID, err)
	}

	now := time.Now()
	for _, affected := range result.AffectedStocks {
		rec := buildRecommendation(record, affected, result, now)
		if err := s.Repo.InsertRecommendation(ctx, rec); err != nil {
			s.Logger.Warn("save recommendation failed",
				zap.Uint64("analysis_id", record.ID),
				zap.String("symbol", affected.Symbol),
				zap.Error(err))
		}
	}

	s.Logger.Info("article analyzed",
		zap.Uint64("article_id", article.ID),
		zap.String("event_type", record.EventType),
		zap.Float64("sentiment", record.SentimentScore),
		zap.Int("recommendations", len(result.AffectedStocks)))

	return record, nil
}

// Reanalyze loads the article by ID and runs it through the pipeline again,
// appending a fresh analysis row.
func (s *Service) Reanalyze(ctx context.Context, articleID uint64) (*models.Analysis, error) {
	article, err := s.Repo.GetArticleByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("load article %d: %w", articleID, err)
	}
	if article == nil {
		return nil, fmt.Errorf("article %d not found", articleID)
	}
	return s.AnalyzeArticle(ctx, article)
}

// lookupPatterns probes the pattern store for each related symbol crossed with
// the likely event types. Misses are silent; lookup errors are logged and
// treated as misses so a flaky pattern store never blocks analysis.
func (s *Service) lookupPatterns(ctx context.Context, symbols []string) []models.HistoricalPattern {
	var patterns []models.HistoricalPattern
	for _, symbol := range symbols {
		for _, eventType := range patternEventTypes {
			p, err := s.Repo.GetHistoricalPattern(ctx, symbol, eventType)
			if err != nil {
				s.Logger.Warn("pattern lookup failed",
					zap.String("symbol", symbol),
					zap.String("event_type", eventType),
					zap.Error(err))
				continue
			}
			if p != nil {
				patterns = append(patterns, *p)
			}
		}
	}
	return patterns
}

func (s *Service) buildAnalysis(articleID uint64, result *Result) *models.Analysis {
	recommendation := models.ActionHold
	if len(result.AffectedStocks) > 0 && result.AffectedStocks[0].Recommendation != "" {
		recommendation = result.AffectedStocks[0].Recommendation
	}

	return &models.Analysis{
		ArticleID:         articleID,
		EventType:         result.EventType,
		SentimentScore:    result.SentimentScore,
		ConfidenceScore:   result.ConfidenceScore,
		Recommendation:    recommendation,
		Rationale:         result.OverallAssessment,
		RiskFactors:       toJSONList(result.RiskFactors),
		HistoricalContext: result.HistoricalContext,
		KeyInsights:       toJSONList(result.KeyInsights),
		ModelVersion:      s.AI.ModelVersion(),
	}
}

func buildRecommendation(record *models.Analysis, affected AffectedStock, result *Result, now time.Time) *models.Recommendation {
	name := stocks.DisplayName(affected.Symbol)
	if name == "" {
		name = affected.Symbol
	}

	action := affected.Recommendation
	if action == "" {
		action = models.ActionHold
	}

	timeframe := affected.Timeframe
	if timeframe == "" {
		timeframe = models.TimeframeOneWeek
	}

	return &models.Recommendation{
		AnalysisID:   record.ID,
		StockSymbol:  affected.Symbol,
		StockName:    name,
		Action:       action,
		Confidence:   result.ConfidenceScore,
		TargetChange: affected.TargetChange,
		Timeframe:    timeframe,
		Reasoning:    affected.Rationale,
		RiskLevel:    RiskLevel(len(result.RiskFactors)),
		CreatedAt:    now,
		ExpiresAt:    now.Add(models.RecommendationTTL),
		IsActive:     true,
	}
}

// RiskLevel maps the number of identified risk factors to a coarse bucket.
func RiskLevel(riskFactorCount int) string {
	switch {
	case riskFactorCount == 0:
		return models.RiskLow
	case riskFactorCount <= 2:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
