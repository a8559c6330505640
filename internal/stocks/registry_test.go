package stocks

import "testing"

func TestRegistryNoDuplicateSymbols(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Tracked {
		if seen[s.Symbol] {
			t.Fatalf("duplicate symbol %s", s.Symbol)
		}
		seen[s.Symbol] = true
		if s.Name == "" || s.Category == "" || s.Priority == "" {
			t.Fatalf("incomplete entry for %s: %+v", s.Symbol, s)
		}
	}
}

func TestSymbolsPreservesOrder(t *testing.T) {
	symbols := Symbols()
	if len(symbols) != len(Tracked) {
		t.Fatalf("len=%d want=%d", len(symbols), len(Tracked))
	}
	if symbols[0] != "AAPL" {
		t.Fatalf("first=%s want=AAPL", symbols[0])
	}
}

func TestHighPrioritySubset(t *testing.T) {
	high := HighPriority()
	if len(high) == 0 || len(high) >= len(Tracked) {
		t.Fatalf("high priority count=%d out of %d", len(high), len(Tracked))
	}
	for _, sym := range high {
		s, ok := Lookup(sym)
		if !ok {
			t.Fatalf("high priority symbol %s not in registry", sym)
		}
		if s.Priority != "high" {
			t.Fatalf("symbol %s priority=%s want=high", sym, s.Priority)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("NVDA"); got != "NVIDIA Corporation" {
		t.Fatalf("DisplayName(NVDA)=%q", got)
	}
	if got := DisplayName("XXXX"); got != "" {
		t.Fatalf("DisplayName(XXXX)=%q want empty", got)
	}
}
