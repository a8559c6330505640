package analysis

import (
	"fmt"
	"strings"

	"newspulse/internal/models"
	"newspulse/internal/stocks"
)

// patternEventTypes are tried against each related symbol when gathering
// historical reference data. The true event type is not known until after the
// model responds, so this is a guess at likely categories, not a join.
var patternEventTypes = []string{
	models.EventProductLaunch,
	models.EventAcquisition,
	models.EventEarnings,
	models.EventPartnership,
	models.EventLegalIssues,
}

// BuildPrompt assembles the analysis instruction for one article. The JSON
// schema embedded here is the wire contract Parse expects back. Pure; pattern
// lookup happens before this is called.
func BuildPrompt(article *models.Article, symbols []string, patterns []models.HistoricalPattern) string {
	names := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		if name := stocks.DisplayName(symbol); name != "" {
			names = append(names, fmt.Sprintf("%s (%s)", symbol, name))
		} else {
			names = append(names, symbol)
		}
	}

	var b strings.Builder
	b.WriteString("You are a financial analyst AI specialized in stock market analysis. Analyze the following news article and provide structured insights.\n\n")
	b.WriteString("**News Article:**\n")
	fmt.Fprintf(&b, "Title: %s\n", article.Title)
	fmt.Fprintf(&b, "Content: %s\n", article.Content)
	fmt.Fprintf(&b, "Source: %s\n", article.Source)
	fmt.Fprintf(&b, "Published: %s\n", article.PublishedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Related Stocks: %s\n\n", strings.Join(names, ", "))

	b.WriteString("**Your Task:**\n")
	b.WriteString("Analyze this article and provide a comprehensive assessment in the following JSON format:\n\n")
	b.WriteString(`{
  "event_type": "product-launch | acquisition | legal-issues | earnings | partnership | executive-change | market-expansion | other",
  "sentiment_score": <number between -1 and 1, where -1 is very negative, 0 is neutral, 1 is very positive>,
  "confidence_score": <number between 0 and 1 indicating your confidence in this analysis>,
  "affected_stocks": [
    {
      "symbol": "STOCK_SYMBOL",
      "impact": "positive | negative | neutral",
      "recommendation": "BUY | SELL | HOLD",
      "rationale": "brief explanation why",
      "target_change": <estimated price change percentage>,
      "timeframe": "1_week | 2_weeks | 1_month"
    }
  ],
  "key_insights": [
    "bullet point 1",
    "bullet point 2",
    "bullet point 3"
  ],
  "risk_factors": [
    "risk 1",
    "risk 2"
  ],
  "historical_context": "Compare this event to similar historical events and their outcomes",
  "overall_assessment": "A 2-3 sentence summary of the trading opportunity"
}
`)

	if len(patterns) > 0 {
		b.WriteString("\n**Historical Reference Data:**\n")
		for _, p := range patterns {
			fmt.Fprintf(&b, "- %s during %s: Average change of %.2f%% over %s (%d samples, %.0f%% confidence)\n",
				p.StockSymbol, p.EventType, p.AvgPriceChange, p.Timeframe, p.SampleSize, p.Confidence*100)
		}
	}

	b.WriteString(`
**Important Guidelines:**
1. Be conservative with recommendations - only suggest BUY/SELL if you're confident
2. Consider both the positive and negative aspects
3. Reference historical patterns when available
4. Provide specific, actionable insights
5. Acknowledge uncertainty and risks
6. Focus on fact-based analysis, not speculation

Respond in English. Return ONLY the JSON object, no additional text.`)

	return b.String()
}
