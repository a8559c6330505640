package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newspulse/internal/aggregator"
	"newspulse/internal/ai"
	"newspulse/internal/analysis"
	"newspulse/internal/config"
	cronrunner "newspulse/internal/cron"
	"newspulse/internal/db"
	"newspulse/internal/handler"
	"newspulse/internal/logger"
	"newspulse/internal/provider"
	gormrepository "newspulse/internal/repository/gorm"
	"newspulse/internal/stocks"
)

func main() {
	cfgPath := os.Getenv("NP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("NP_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	var providers []provider.Provider
	if cfg.Providers.NewsAPI.Enabled && cfg.Providers.NewsAPI.APIKey != "" {
		providers = append(providers, provider.NewNewsAPIClient(cfg.Providers.NewsAPI, stocks.Tracked, logger))
	}
	if cfg.Providers.Finnhub.Enabled && cfg.Providers.Finnhub.APIKey != "" {
		providers = append(providers, provider.NewFinnhubClient(cfg.Providers.Finnhub, logger))
	}
	if cfg.Providers.AlphaVantage.Enabled && cfg.Providers.AlphaVantage.APIKey != "" {
		providers = append(providers, provider.NewAlphaVantageClient(cfg.Providers.AlphaVantage, logger))
	}
	if len(providers) == 0 {
		logger.Warn("no news providers configured, aggregation runs will fetch nothing")
	}

	var completer ai.Completer
	switch strings.ToLower(cfg.AI.Provider) {
	case "openai":
		completer = ai.NewOpenAIClient(cfg.AI)
	default:
		completer = ai.NewAnthropicClient(cfg.AI)
	}

	analyzer := analysis.NewService(store, completer, logger)
	aggSvc := &aggregator.Service{
		Providers:   providers,
		Repo:        store,
		Analyzer:    analyzer,
		Logger:      logger,
		Symbols:     stocks.Symbols(),
		Workers:     cfg.Aggregator.AnalysisWorkers,
		JoinTimeout: cfg.Aggregator.JoinTimeout,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	newsHandler := &handler.NewsHandler{Repo: store, Analyzer: analyzer}
	newsHandler.Register(engine)
	recHandler := &handler.RecommendationHandler{Repo: store}
	recHandler.Register(engine)
	aggHandler := &handler.AggregateHandler{Aggregator: aggSvc}
	aggHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled {
		runAggregation := func(trigger string) func(context.Context) {
			return func(ctx context.Context) {
				if _, err := aggSvc.Run(ctx, trigger); err != nil {
					logger.Warn("scheduled aggregation failed",
						zap.String("trigger", trigger),
						zap.Error(err))
				}
			}
		}
		if _, err := cronRunner.Add(cfg.Cron.Morning, runAggregation("cron_morning")); err != nil {
			logger.Warn("cron register morning aggregation failed", zap.Error(err))
		}
		if _, err := cronRunner.Add(cfg.Cron.Evening, runAggregation("cron_evening")); err != nil {
			logger.Warn("cron register evening aggregation failed", zap.Error(err))
		}

		// Expired recommendations are flagged inactive hourly so the read API
		// never serves stale signals.
		if _, err := cronRunner.Add("0 0 * * * *", func(ctx context.Context) {
			n, err := store.DeactivateExpiredRecommendations(ctx, time.Now())
			if err != nil {
				logger.Warn("deactivate expired recommendations failed", zap.Error(err))
				return
			}
			if n > 0 {
				logger.Info("deactivated expired recommendations", zap.Int64("count", n))
			}
		}); err != nil {
			logger.Warn("cron register recommendation expiry failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	if cfg.Cron.RunOnStart {
		go func() {
			if _, err := aggSvc.Run(ctx, "startup"); err != nil {
				logger.Warn("startup aggregation failed", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
