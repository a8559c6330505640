package provider

import (
	"context"

	"newspulse/internal/models"
)

// Provider fetches news for the tracked symbols from one external source and
// maps it onto the canonical article shape. Fields the source does not supply
// stay empty. A failed sub-request is logged inside the adapter and yields an
// empty portion; Fetch itself never reports failure, so one broken source
// cannot abort a run.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, symbols []string) []models.Article
}
