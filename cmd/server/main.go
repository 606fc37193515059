// Package main implements the entry point for the AI Website Builder API
// server, which relays natural-language site descriptions to Gemini and
// returns the generated HTML and CSS fragments.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ADNAN-ZEYA/Website-Builder/internal/api"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/config"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/generation"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/platform/gemini"
	"github.com/ADNAN-ZEYA/Website-Builder/internal/platform/logger"
)

func main() {
	// Load .env before viper reads the environment. Missing files are
	// normal in production, so only real read errors are worth a warning.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"models", cfg.LLM.Models,
		"api_key_present", cfg.LLM.GeminiAPIKey != "")

	caller, err := gemini.NewCaller(cfg.LLM, appLogger)
	if err != nil {
		log.Fatalf("Failed to create Gemini caller: %v", err)
	}

	resolver, err := generation.NewResolver(
		caller,
		cfg.LLM.Models,
		time.Duration(cfg.LLM.FallbackPauseMS)*time.Millisecond,
		appLogger,
	)
	if err != nil {
		log.Fatalf("Failed to create resolver: %v", err)
	}

	service, err := generation.NewService(resolver, appLogger)
	if err != nil {
		log.Fatalf("Failed to create generation service: %v", err)
	}

	router := newRouter(api.NewSiteHandler(service))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
		// Generation calls are slow, so the write timeout is generous.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("shutting down server", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	appLogger.Info("server shutdown completed")
}
