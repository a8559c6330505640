package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedAnalysis marks a model response that could not be parsed into
// the expected structure. Terminal for that article's analysis only; sibling
// analyses and the aggregation run are unaffected.
var ErrMalformedAnalysis = errors.New("malformed analysis response")

// Result is the structured assessment the model is instructed to emit.
type Result struct {
	EventType         string          `json:"event_type"`
	SentimentScore    float64         `json:"sentiment_score"`
	ConfidenceScore   float64         `json:"confidence_score"`
	AffectedStocks    []AffectedStock `json:"affected_stocks"`
	KeyInsights       []string        `json:"key_insights"`
	RiskFactors       []string        `json:"risk_factors"`
	HistoricalContext string          `json:"historical_context"`
	OverallAssessment string          `json:"overall_assessment"`
}

// AffectedStock is one per-instrument call inside a Result.
type AffectedStock struct {
	Symbol         string  `json:"symbol"`
	Impact         string  `json:"impact"`
	Recommendation string  `json:"recommendation"`
	Rationale      string  `json:"rationale"`
	TargetChange   float64 `json:"target_change"`
	Timeframe      string  `json:"timeframe"`
}

// Parse extracts the JSON object span from raw model output, tolerating prose
// around it, and decodes it. The span runs from the first '{' to the last '}'.
func Parse(content string) (*Result, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedAnalysis)
	}

	var res Result
	if err := json.Unmarshal([]byte(content[start:end+1]), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	return &res, nil
}

// ClampScores forces sentiment into [-1,1] and confidence into [0,1],
// reporting whether anything was out of range. Models occasionally ignore the
// stated bounds; persisted rows must not.
func (r *Result) ClampScores() bool {
	clamped := false
	if r.SentimentScore < -1 {
		r.SentimentScore = -1
		clamped = true
	}
	if r.SentimentScore > 1 {
		r.SentimentScore = 1
		clamped = true
	}
	if r.ConfidenceScore < 0 {
		r.ConfidenceScore = 0
		clamped = true
	}
	if r.ConfidenceScore > 1 {
		r.ConfidenceScore = 1
		clamped = true
	}
	return clamped
}
