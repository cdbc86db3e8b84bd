package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagesmith/internal/api"
	"pagesmith/internal/config"
	"pagesmith/internal/cycle"
	"pagesmith/internal/generate"

	"github.com/joho/godotenv"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var client generate.Client
	if cfg.MockLLM {
		log.Warn("using mock generation backend")
		client = generate.MockClient{}
	} else {
		client = generate.NewAnthropicClient(generate.Settings{
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			Timeout: cfg.LLMTimeout,
		})
	}

	stats := generate.NewStats(cfg.StatsWindow)
	runner := cycle.NewRunner(client, stats, log)

	srv := api.NewServer(runner, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if c, ok := client.(*generate.AnthropicClient); ok {
			c.Close()
		}
	}()

	log.Info("starting pagesmith", "port", cfg.Port, "model", client.Model())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
