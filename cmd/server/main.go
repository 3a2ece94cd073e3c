package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serunimart/api/internal/cache"
	"github.com/serunimart/api/internal/config"
	"github.com/serunimart/api/internal/database"
	"github.com/serunimart/api/internal/router"
	"github.com/serunimart/api/internal/ws"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	log.Println("Connected to database")

	queries := database.New(pool)

	// Redis is optional. When it is absent or unreachable the dashboard
	// summary is simply recomputed on every request.
	var summaryCache cache.SummaryCache = cache.NoopSummaryCache{}
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisSummaryCache(cfg.RedisAddr, cfg.RedisPassword, 0)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: Redis unreachable, dashboard caching disabled: %v", err)
		} else {
			log.Println("Connected to Redis")
			summaryCache = redisCache
			defer redisCache.Close()
		}
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, queries, pool, hub, summaryCache)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
