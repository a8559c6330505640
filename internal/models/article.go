package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Article is the canonical representation of a news item, independent of the
// provider it came from. The URL is the identity: re-ingesting the same URL
// updates the mutable fields instead of creating a second row.
type Article struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title   string `gorm:"type:text;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Summary string `gorm:"type:text" json:"summary"`
	Source  string `gorm:"type:varchar(100)" json:"source"`
	Author  string `gorm:"type:varchar(255)" json:"author"`

	URL      string `gorm:"type:text;not null;uniqueIndex" json:"url"`
	ImageURL string `gorm:"type:text" json:"image_url"`

	PublishedAt   time.Time      `gorm:"type:timestamptz;index:idx_articles_published,sort:desc" json:"published_at"`
	RelatedStocks datatypes.JSON `gorm:"type:jsonb" json:"related_stocks"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Article) TableName() string {
	return "news_articles"
}

// Symbols decodes the related-stock list. A missing or unparsable payload
// yields an empty list, never an error.
func (a *Article) Symbols() []string {
	if a == nil || len(a.RelatedStocks) == 0 {
		return nil
	}
	var symbols []string
	if err := json.Unmarshal(a.RelatedStocks, &symbols); err != nil {
		return nil
	}
	return symbols
}

// SetSymbols stores the related-stock list as jsonb. Nil becomes [].
func (a *Article) SetSymbols(symbols []string) {
	if symbols == nil {
		symbols = []string{}
	}
	raw, err := json.Marshal(symbols)
	if err != nil {
		return
	}
	a.RelatedStocks = datatypes.JSON(raw)
}
