// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-wave-defense/internal/api"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/leaderboard"
)

func main() {
	cfg := config.Load()

	var store leaderboard.Store = leaderboard.NewMemoryStore()
	if cfg.Store.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pg, err := leaderboard.OpenPostgres(ctx, cfg.Store.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Println("Leaderboard backed by PostgreSQL")
	} else {
		log.Println("DATABASE_URL not set, leaderboard is in-memory")
	}

	limiter := api.NewIPRateLimiter(api.RateLimitConfig{
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
		Burst:             cfg.Server.Burst,
		CleanupInterval:   time.Minute,
	})
	defer limiter.Stop()

	router := api.NewRouter(api.RouterConfig{
		Store:       store,
		RateLimiter: limiter,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Leaderboard server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
