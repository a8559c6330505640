package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	Cron       CronConfig       `mapstructure:"cron"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
	AI         AIConfig         `mapstructure:"ai"`
	Aggregator AggregatorConfig `mapstructure:"aggregator"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

// CronConfig holds the two daily aggregation schedules. Specs are six-field
// (seconds first), matching the runner.
type CronConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Morning    string `mapstructure:"morning"`
	Evening    string `mapstructure:"evening"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

type ProvidersConfig struct {
	NewsAPI      NewsAPIConfig      `mapstructure:"newsapi"`
	Finnhub      FinnhubConfig      `mapstructure:"finnhub"`
	AlphaVantage AlphaVantageConfig `mapstructure:"alphavantage"`
}

type NewsAPIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	PageSize int           `mapstructure:"page_size"`
	Domains  []string      `mapstructure:"domains"`
}

type FinnhubConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	// MaxSymbols caps how many tracked symbols are queried per run; the loop
	// also sleeps RequestDelay between symbols to stay inside the quota.
	MaxSymbols     int           `mapstructure:"max_symbols"`
	PerSymbolLimit int           `mapstructure:"per_symbol_limit"`
	RequestDelay   time.Duration `mapstructure:"request_delay"`
	LookbackHours  int           `mapstructure:"lookback_hours"`
}

type AlphaVantageConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// The free tier allows ~25 requests/day, hence the small symbol cap and
	// the long inter-request delay.
	MaxSymbols   int           `mapstructure:"max_symbols"`
	Limit        int           `mapstructure:"limit"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
}

type AIConfig struct {
	// Provider selects the completion backend: "anthropic" or "openai".
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type AggregatorConfig struct {
	AnalysisWorkers int           `mapstructure:"analysis_workers"`
	JoinTimeout     time.Duration `mapstructure:"join_timeout"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")

	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.morning", "0 0 9 * * *")
	v.SetDefault("cron.evening", "0 0 18 * * *")
	v.SetDefault("cron.run_on_start", false)

	v.SetDefault("providers.newsapi.enabled", true)
	v.SetDefault("providers.newsapi.base_url", "https://newsapi.org/v2")
	v.SetDefault("providers.newsapi.timeout", "30s")
	v.SetDefault("providers.newsapi.page_size", 50)
	v.SetDefault("providers.newsapi.domains", []string{
		"reuters.com", "bloomberg.com", "cnbc.com", "wsj.com", "ft.com",
	})

	v.SetDefault("providers.finnhub.enabled", true)
	v.SetDefault("providers.finnhub.max_symbols", 20)
	v.SetDefault("providers.finnhub.per_symbol_limit", 5)
	v.SetDefault("providers.finnhub.request_delay", "100ms")
	v.SetDefault("providers.finnhub.lookback_hours", 24)

	v.SetDefault("providers.alphavantage.enabled", true)
	v.SetDefault("providers.alphavantage.base_url", "https://www.alphavantage.co")
	v.SetDefault("providers.alphavantage.timeout", "30s")
	v.SetDefault("providers.alphavantage.max_symbols", 5)
	v.SetDefault("providers.alphavantage.limit", 10)
	v.SetDefault("providers.alphavantage.request_delay", "15s")

	v.SetDefault("ai.provider", "anthropic")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.max_tokens", 2000)
	v.SetDefault("ai.temperature", 0.3)
	v.SetDefault("ai.timeout", "60s")

	v.SetDefault("aggregator.analysis_workers", 4)
	v.SetDefault("aggregator.join_timeout", "2m")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
