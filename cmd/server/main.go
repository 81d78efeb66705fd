package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"groq-chat/internal/config"
	"groq-chat/internal/llm"
	"groq-chat/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn(".env file not found", zap.Error(err))
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.GroqAPIKey == "" {
		logger.Fatal("GROQ_API_KEY is required")
	}

	upstream := llm.NewOpenAI(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.DefaultModel)
	srv := server.New(upstream, logger, cfg.StaticDir, cfg.DefaultModel, cfg.Port)

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down")
	if err := srv.Stop(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}
