package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"collection-route-service/internal/adapters/cache"
	"collection-route-service/internal/adapters/repositories"
	"collection-route-service/internal/api"
	"collection-route-service/internal/config"
	"collection-route-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	redisAddr := config.Get("REDIS_ADDR", "localhost:6379")
	cacheTTL := parseDuration(config.Get("SCHEDULE_CACHE_TTL", "5m"))
	port := config.Get("PORT", "8080")
	origins := strings.Split(config.Get("ALLOWED_ORIGINS", "http://localhost:5173"), ",")

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping addr=%s: %v", redisAddr, err)
	}

	scheduleRepo := repositories.NewPostgresScheduleRepository(pg)
	materialRepo := repositories.NewPostgresMaterialRepository(pg)
	scheduleCache := cache.NewRedisScheduleCache(redisClient, cacheTTL)

	router := api.NewRouter(scheduleRepo, scheduleCache, materialRepo, pg, origins)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("invalid duration %q: %v", s, err)
	}
	return d
}
