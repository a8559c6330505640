package stocks

import (
	"reflect"
	"testing"
)

func TestExtractMatchesTickerAndName(t *testing.T) {
	tracked := []Stock{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "MSFT", Name: "Microsoft Corporation"},
		{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	}

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"ticker", "AAPL shares jumped after the event", []string{"AAPL"}},
		{"company name lowercase", "apple inc. announced a new chip", []string{"AAPL"}},
		{"multiple in registry order", "Microsoft Corporation and nvidia corporation extend their deal", []string{"MSFT", "NVDA"}},
		{"partial name not matched", "Microsoft extends the deal", nil},
		{"no match", "crude oil futures slipped on Tuesday", nil},
		{"empty text", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.text, tracked)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Extract(%q)=%v want=%v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractNoDuplicates(t *testing.T) {
	tracked := []Stock{{Symbol: "TSLA", Name: "Tesla Inc."}}
	got := Extract("TSLA TSLA tesla inc. again TSLA", tracked)
	if len(got) != 1 || got[0] != "TSLA" {
		t.Fatalf("got=%v want=[TSLA]", got)
	}
}
