package models

import "time"

const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)

const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Timeframes the analyst model may attach to a per-stock call.
const (
	TimeframeOneWeek  = "1_week"
	TimeframeTwoWeeks = "2_weeks"
	TimeframeOneMonth = "1_month"
)

// RecommendationTTL is how long a synthesized recommendation stays valid.
const RecommendationTTL = 7 * 24 * time.Hour

// Recommendation is a time-bounded trading signal for one instrument, derived
// from one analysis. It is live while IsActive and ExpiresAt is in the future.
type Recommendation struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	AnalysisID uint64 `gorm:"not null;index" json:"analysis_id"`

	StockSymbol string `gorm:"type:varchar(10);not null;index" json:"stock_symbol"`
	StockName   string `gorm:"type:varchar(255)" json:"stock_name"`

	Action     string  `gorm:"type:varchar(20);not null" json:"action"`
	Confidence float64 `gorm:"not null" json:"confidence"`

	// TargetChange is the estimated price move in percent, signed.
	TargetChange float64 `gorm:"not null" json:"target_change"`
	Timeframe    string  `gorm:"type:varchar(50)" json:"timeframe"`
	Reasoning    string  `gorm:"type:text" json:"reasoning"`
	RiskLevel    string  `gorm:"type:varchar(20)" json:"risk_level"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index:idx_recommendations_active,priority:2,sort:desc" json:"created_at"`
	ExpiresAt time.Time `gorm:"type:timestamptz;index" json:"expires_at"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_recommendations_active,priority:1" json:"is_active"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
