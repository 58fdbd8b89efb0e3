package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"objection-handler/config"
	_ "objection-handler/docs" // Swagger docs
	"objection-handler/internal/httpserver"
	"objection-handler/internal/metrics"
	"objection-handler/pkg/llmprovider"
	"objection-handler/pkg/log"
)

// @title       Objection Handler API
// @description Real-time conversation assistant: analyze an utterance, generate a strategic reply, and score it.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Objection Handler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(ctx, logger, "llm.retry_delay", cfg.LLM.RetryDelay, time.Second),
		CallTimeout:     parseDuration(ctx, logger, "llm.call_timeout", cfg.LLM.CallTimeout, 30*time.Second),
		MaxTotalTimeout: parseDuration(ctx, logger, "llm.max_total_timeout", cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	if cfg.LLM.Tokenizer.Enabled {
		tk, tkErr := llmprovider.NewTokenizer(cfg.LLM.Tokenizer.Encoding)
		if tkErr != nil {
			logger.Warnf(ctx, "Tokenizer unavailable, usage estimates disabled: %v", tkErr)
		} else {
			manager.SetTokenizer(tk)
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: parseDuration(ctx, logger, "http_server.shutdown_timeout", cfg.HTTPServer.ShutdownTimeout, 10*time.Second),
		AppConfig:       cfg,
		LLM:             manager,
		Metrics:         metrics.New(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(ctx context.Context, logger log.Logger, key, raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warnf(ctx, "Invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
