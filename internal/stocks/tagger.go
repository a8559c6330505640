package stocks

import "strings"

// Extract returns the tracked symbols mentioned in the text, matching either
// the ticker or the company name case-insensitively. Used by providers that
// do not tag instruments themselves. Pure; the result preserves registry
// order and contains no duplicates.
func Extract(text string, tracked []Stock) []string {
	if text == "" || len(tracked) == 0 {
		return nil
	}
	upper := strings.ToUpper(text)
	var found []string
	for _, s := range tracked {
		if strings.Contains(upper, s.Symbol) ||
			strings.Contains(upper, strings.ToUpper(s.Name)) {
			found = append(found, s.Symbol)
		}
	}
	return found
}
