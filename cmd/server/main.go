package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	githubadapter "readme-generator/internal/adapter/github"
	httpadapter "readme-generator/internal/adapter/http"
	repo "readme-generator/internal/adapter/repository"
	"readme-generator/internal/config"
	"readme-generator/internal/infrastructure/migration"
	"readme-generator/internal/logging"
	"readme-generator/internal/usecase"
	infra "readme-generator/pkg/infrastructure"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("Generation log DB not available", zap.Error(err))
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, logger); err != nil {
			logger.Warn("Migrations failed, continuing without generation log", zap.Error(err))
			pool.Close()
			pool = nil
		}
	}
	if cfg.GitHubToken == "" {
		logger.Info("GITHUB_TOKEN not set, using unauthenticated GitHub API (rate limited)")
	}

	client := githubadapter.New(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.GitHubTimeout)
	fetcher := usecase.NewFetcher(client, logger, cfg.GitHubTimeout)
	session := usecase.NewSession(fetcher, repo.NewGenerationsRepo(pool), logger)

	app := fiber.New(fiber.Config{
		AppName:               "readme-generator",
		DisableStartupMessage: true,
		ErrorHandler:          httpadapter.ErrorHandler(logger),
	})
	httpadapter.Register(app, httpadapter.NewHandler(session, logger))

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Warn("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("Server failed", zap.Error(err))
	}

	session.Close()
}
