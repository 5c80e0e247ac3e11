package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cs-exp/tracker-backend/config"
	"github.com/cs-exp/tracker-backend/internal/bootstrap"
	"github.com/cs-exp/tracker-backend/internal/reporting"
)

// The worker keeps the dashboard cache warm so the API never recomputes
// aggregates on a user request path.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := bootstrap.OpenPool(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("report pool: %v", err)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	statsSvc := reporting.NewService(reporting.NewPostgresSource(pool), rdb, 24*time.Hour)

	// Warm the cache once at startup, then hand over to the scheduler.
	if _, err := statsSvc.Refresh(ctx); err != nil {
		log.Printf("initial stats refresh failed: %v", err)
	}

	scheduler := reporting.NewScheduler(statsSvc)
	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("worker shutting down")
}
