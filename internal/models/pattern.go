package models

import (
	"time"

	"gorm.io/datatypes"
)

// HistoricalPattern holds precomputed price-reaction statistics for one
// (symbol, event type, timeframe) combination. The aggregation core only reads
// these; they feed the analysis prompt as reference context.
type HistoricalPattern struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	StockSymbol string `gorm:"type:varchar(10);not null;uniqueIndex:idx_patterns_key,priority:1;index" json:"stock_symbol"`
	EventType   string `gorm:"type:varchar(100);uniqueIndex:idx_patterns_key,priority:2" json:"event_type"`
	Timeframe   string `gorm:"type:varchar(50);uniqueIndex:idx_patterns_key,priority:3" json:"timeframe"`

	AvgPriceChange    float64 `gorm:"not null" json:"avg_price_change"`
	MedianPriceChange float64 `gorm:"not null" json:"median_price_change"`
	SampleSize        int     `gorm:"not null" json:"sample_size"`
	Confidence        float64 `gorm:"not null" json:"confidence"`

	DataPoints  datatypes.JSON `gorm:"type:jsonb" json:"data_points"`
	LastUpdated time.Time      `gorm:"type:timestamptz;autoUpdateTime" json:"last_updated"`
}

func (HistoricalPattern) TableName() string {
	return "historical_patterns"
}
