package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"emi-planner/config"
	httpLayer "emi-planner/http"
	"emi-planner/repository"
	"emi-planner/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	var planRepo repository.PlanRepository
	switch cfg.Storage {
	case "sqlite":
		sqliteRepo, err := repository.OpenPlanRepositorySQLite(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to open plan database: %v", err)
		}
		defer sqliteRepo.Close()
		planRepo = sqliteRepo
	default:
		planRepo = repository.NewPlanRepositoryMemory()
	}

	var cache repository.CacheRepository
	switch cfg.Cache {
	case "redis":
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Printf("Warning: redis at %s not reachable, schedules will not be cached until it is: %v", cfg.RedisAddr, err)
		}
		cancel()
		defer redisCache.Close()
		cache = redisCache
	default:
		cache = repository.NewMemoryCache()
	}

	loanService := service.NewLoanService(planRepo, cache)
	tenureService := service.NewTenureService(loanService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := httpLayer.NewRouter(
		httpLayer.NewLoanHandler(loanService),
		httpLayer.NewTenureHandler(tenureService),
		rateLimiter,
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
