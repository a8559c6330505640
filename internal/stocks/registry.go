package stocks

// Stock is one tracked instrument.
type Stock struct {
	Symbol   string
	Name     string
	Category string
	Priority string
}

// Tracked is the watchlist the pipeline operates on: large-cap tech plus a set
// of growth names. Providers are queried for these symbols and the tagger only
// recognizes these.
var Tracked = []Stock{
	{Symbol: "AAPL", Name: "Apple Inc.", Category: "tech-giant", Priority: "high"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Category: "tech-giant", Priority: "high"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Category: "tech-giant", Priority: "high"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Category: "tech-giant", Priority: "high"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Category: "tech-giant", Priority: "high"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Category: "tech-giant", Priority: "high"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Category: "tech-giant", Priority: "high"},
	{Symbol: "NFLX", Name: "Netflix Inc.", Category: "tech-giant", Priority: "high"},
	{Symbol: "AMD", Name: "Advanced Micro Devices", Category: "semiconductor", Priority: "high"},
	{Symbol: "INTC", Name: "Intel Corporation", Category: "semiconductor", Priority: "medium"},
	{Symbol: "CRM", Name: "Salesforce Inc.", Category: "enterprise-software", Priority: "medium"},
	{Symbol: "ORCL", Name: "Oracle Corporation", Category: "enterprise-software", Priority: "medium"},
	{Symbol: "ADBE", Name: "Adobe Inc.", Category: "software", Priority: "medium"},
	{Symbol: "CSCO", Name: "Cisco Systems", Category: "networking", Priority: "medium"},
	{Symbol: "PLTR", Name: "Palantir Technologies", Category: "ai-analytics", Priority: "high"},
	{Symbol: "SNOW", Name: "Snowflake Inc.", Category: "cloud-data", Priority: "high"},
	{Symbol: "DDOG", Name: "Datadog Inc.", Category: "cloud-monitoring", Priority: "medium"},
	{Symbol: "NET", Name: "Cloudflare Inc.", Category: "cloud-security", Priority: "medium"},
	{Symbol: "CRWD", Name: "CrowdStrike Holdings", Category: "cybersecurity", Priority: "high"},
	{Symbol: "ZS", Name: "Zscaler Inc.", Category: "cybersecurity", Priority: "medium"},
	{Symbol: "SQ", Name: "Block Inc. (Square)", Category: "fintech", Priority: "medium"},
	{Symbol: "PYPL", Name: "PayPal Holdings", Category: "fintech", Priority: "medium"},
	{Symbol: "COIN", Name: "Coinbase Global", Category: "crypto", Priority: "medium"},
	{Symbol: "HOOD", Name: "Robinhood Markets", Category: "fintech", Priority: "low"},
	{Symbol: "SHOP", Name: "Shopify Inc.", Category: "e-commerce", Priority: "high"},
	{Symbol: "SPOT", Name: "Spotify Technology", Category: "streaming", Priority: "medium"},
	{Symbol: "UBER", Name: "Uber Technologies", Category: "rideshare", Priority: "medium"},
	{Symbol: "ABNB", Name: "Airbnb Inc.", Category: "travel-tech", Priority: "medium"},
	{Symbol: "DASH", Name: "DoorDash Inc.", Category: "delivery", Priority: "low"},
	{Symbol: "TSM", Name: "Taiwan Semiconductor", Category: "semiconductor", Priority: "high"},
	{Symbol: "ASML", Name: "ASML Holding", Category: "semiconductor-equipment", Priority: "high"},
	{Symbol: "QCOM", Name: "Qualcomm Inc.", Category: "semiconductor", Priority: "medium"},
	{Symbol: "MU", Name: "Micron Technology", Category: "memory-chips", Priority: "medium"},
	{Symbol: "RBLX", Name: "Roblox Corporation", Category: "gaming-metaverse", Priority: "low"},
	{Symbol: "U", Name: "Unity Software", Category: "gaming-engine", Priority: "low"},
	{Symbol: "RIVN", Name: "Rivian Automotive", Category: "ev", Priority: "low"},
	{Symbol: "LCID", Name: "Lucid Group", Category: "ev", Priority: "low"},
	{Symbol: "SOFI", Name: "SoFi Technologies", Category: "fintech", Priority: "low"},
	{Symbol: "UPST", Name: "Upstart Holdings", Category: "ai-lending", Priority: "low"},
	{Symbol: "TEAM", Name: "Atlassian Corporation", Category: "collaboration", Priority: "medium"},
	{Symbol: "ZM", Name: "Zoom Video Communications", Category: "video-conferencing", Priority: "low"},
	{Symbol: "DOCU", Name: "DocuSign Inc.", Category: "e-signature", Priority: "low"},
	{Symbol: "TWLO", Name: "Twilio Inc.", Category: "communication-api", Priority: "medium"},
	{Symbol: "OKTA", Name: "Okta Inc.", Category: "identity-security", Priority: "medium"},
	{Symbol: "MDB", Name: "MongoDB Inc.", Category: "database", Priority: "medium"},
	{Symbol: "PATH", Name: "UiPath Inc.", Category: "automation", Priority: "low"},
	{Symbol: "AI", Name: "C3.ai Inc.", Category: "enterprise-ai", Priority: "medium"},
	{Symbol: "IONQ", Name: "IonQ Inc.", Category: "quantum-computing", Priority: "low"},
	{Symbol: "BROS", Name: "Dutch Bros Inc.", Category: "food-tech", Priority: "low"},
	{Symbol: "VUZI", Name: "Vuzix Corporation", Category: "ar-vr", Priority: "low"},
}

// Symbols returns the tickers of every tracked stock, in registry order.
func Symbols() []string {
	out := make([]string, 0, len(Tracked))
	for _, s := range Tracked {
		out = append(out, s.Symbol)
	}
	return out
}

// HighPriority returns the tickers marked high priority.
func HighPriority() []string {
	var out []string
	for _, s := range Tracked {
		if s.Priority == "high" {
			out = append(out, s.Symbol)
		}
	}
	return out
}

// Lookup finds a tracked stock by ticker.
func Lookup(symbol string) (Stock, bool) {
	for _, s := range Tracked {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return Stock{}, false
}

// DisplayName returns the company name for a ticker, or "" when untracked.
func DisplayName(symbol string) string {
	if s, ok := Lookup(symbol); ok {
		return s.Name
	}
	return ""
}
