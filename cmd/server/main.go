package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jetwave/jetski-booking-backend/internal/app"
	"github.com/jetwave/jetski-booking-backend/internal/auth"
	"github.com/jetwave/jetski-booking-backend/internal/config"
	"github.com/jetwave/jetski-booking-backend/internal/db"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect DB. Without a DSN, or when the database is unreachable,
	// the server falls back to the seeded in-memory stores.
	var pool *pgxpool.Pool
	if cfg.DBDSN == "" {
		log.Println("no DB_DSN set, using in-memory stores")
	} else {
		pool, err = db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			log.Printf("database unavailable, using in-memory stores: %v", err)
			pool = nil
		} else {
			defer pool.Close()
		}
	}

	// Resolve the admin credential to a bcrypt hash.
	adminHash := cfg.AdminPasswordHash
	if adminHash == "" {
		hasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
		adminHash, err = hasher.Hash(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
	}

	// Assemble application
	container := app.NewContainer(app.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		DBPool:            pool,
		JWTSecret:         cfg.JWTSecret,
		JWTTTL:            cfg.JWTAccessTokenTTL,
		BcryptCost:        cfg.BcryptCost,
		AdminPasswordHash: adminHash,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}
