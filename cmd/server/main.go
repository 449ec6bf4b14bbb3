package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/solari/bff/internal/auth"
	"codeberg.org/solari/bff/internal/config"
	"codeberg.org/solari/bff/internal/logger"
)

// @title Solari BFF API
// @version 1.0
// @description Backend-for-frontend for the Solari dashboard
// @description
// @description Features:
// @description - Access gating by sign-in state and team billing status
// @description - Live access decisions over WebSockets
// @description - Rating analytics for agent answers
// @description - Pass-through routes to the Solari backend (Slack, Jira, Confluence, billing, booking, agents)

// @contact.name API Support

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	logger.Info("starting solari bff")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Configure(cfg.Environment)

	// initialize OAuth providers
	if err := auth.InitializeProviders(cfg); err != nil {
		if !stderrors.Is(err, auth.ErrLoginDisabled) {
			logger.Fatal("failed to initialize OAuth providers", "error", err)
		}

		logger.Warn("GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET not set, login is disabled")
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// proxied backend calls may take up to the backend timeout
		WriteTimeout: cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// notify websocket clients and close connections first
	srv.hub.Shutdown()

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.Close()

	logger.Info("server stopped")
}
