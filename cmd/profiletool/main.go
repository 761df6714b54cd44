// Package main is the entry point for the profile evaluation server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profiletool/config"
	"profiletool/internal/evaluator"
	"profiletool/internal/generate"
	"profiletool/internal/logging"
	"profiletool/internal/responsecache"
	"profiletool/internal/server"
	"profiletool/internal/submission"
	"profiletool/internal/version"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting profiletool",
		"version", version.Version,
		"commit", version.Commit,
		"build_date", version.Date,
	)

	ctx := context.Background()

	cache, err := responsecache.New(ctx, responsecache.Config{
		Enabled:  cfg.Cache.Enabled,
		Required: cfg.Cache.Required,
		Storage:  cfg.StorageConfig(),
	})
	if err != nil {
		slog.Error("failed to initialize response cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()
	slog.Info("response cache configured",
		"enabled", cfg.Cache.Enabled,
		"storage", cfg.Cache.StorageType,
		"required", cfg.Cache.Required,
	)

	submissions, err := submission.New(ctx, submission.Config{
		Backend: cfg.SubmissionBackend(),
		Storage: cfg.StorageConfig(),
		Redis:   submission.RedisConfig{URL: cfg.Submissions.RedisURL},
	})
	if err != nil {
		slog.Error("failed to initialize submission store", "error", err)
		os.Exit(1)
	}
	defer submissions.Close()
	slog.Info("submission store configured", "backend", cfg.SubmissionBackend())

	generator, model := buildGenerator(cfg)
	eval := evaluator.New(cache, generator, model)

	handler := server.NewHandler(eval, cache, submissions)
	srv := server.New(handler, &server.Config{
		AdminToken:     server.AdminToken(cfg.Admin.User, cfg.Admin.Password),
		MetricsEnabled: cfg.Metrics.Enabled,
		BodyLimit:      cfg.Server.BodyLimit,
	})

	// Handle graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		slog.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	addr := ":" + cfg.Server.Port
	slog.Info("starting server", "address", addr)

	if err := srv.Start(addr); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			slog.Info("server stopped gracefully")
		} else {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}
}

// buildGenerator selects the narrative generator: OpenAI when an API key is
// configured, otherwise the deterministic static generator.
func buildGenerator(cfg *config.Config) (generate.Generator, string) {
	if cfg.Generator.OpenAIAPIKey == "" {
		gen := generate.NewStatic()
		slog.Info("narrative generator configured", "provider", "static", "model", gen.Model())
		return gen, gen.Model()
	}

	genCfg := generate.DefaultOpenAIConfig(cfg.Generator.OpenAIAPIKey)
	genCfg.Model = cfg.Generator.Model
	genCfg.Timeout = cfg.GeneratorTimeout()
	genCfg.MaxRetries = cfg.Generator.MaxRetries
	if cfg.Generator.BaseURL != "" {
		genCfg.BaseURL = cfg.Generator.BaseURL
	}

	gen, err := generate.NewOpenAI(genCfg)
	if err != nil {
		slog.Error("failed to configure openai generator", "error", err)
		os.Exit(1)
	}
	slog.Info("narrative generator configured", "provider", "openai", "model", gen.Model())
	return gen, gen.Model()
}
