package aggregator

import (
	"testing"

	"newspulse/internal/models"
)

func TestDeduplicateFirstURLWins(t *testing.T) {
	in := []models.Article{
		{URL: "https://example.com/a", Title: "from provider one", Source: "one"},
		{URL: "https://example.com/b", Title: "unique", Source: "one"},
		{URL: "https://example.com/a", Title: "from provider two", Source: "two"},
	}

	out := Deduplicate(in)
	if len(out) != 2 {
		t.Fatalf("len=%d want=2", len(out))
	}
	if out[0].Source != "one" || out[0].Title != "from provider one" {
		t.Fatalf("first occurrence did not win: %+v", out[0])
	}
	if out[1].URL != "https://example.com/b" {
		t.Fatalf("order not preserved: %+v", out[1])
	}
}

func TestDeduplicateDropsMissingURL(t *testing.T) {
	in := []models.Article{
		{URL: "", Title: "no identity"},
		{URL: "https://example.com/a", Title: "keyed"},
	}
	out := Deduplicate(in)
	if len(out) != 1 || out[0].URL != "https://example.com/a" {
		t.Fatalf("got=%v", out)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	in := []models.Article{
		{URL: "https://example.com/a"},
		{URL: "https://example.com/b"},
		{URL: "https://example.com/a"},
	}
	once := Deduplicate(in)
	twice := Deduplicate(once)
	if len(once) != len(twice) {
		t.Fatalf("not idempotent: %d then %d", len(once), len(twice))
	}
}
