package main

import (
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"train-dispatch-service/internal/adapters/cache"
	"train-dispatch-service/internal/adapters/repositories"
	"train-dispatch-service/internal/api"
	"train-dispatch-service/internal/config"
	"train-dispatch-service/internal/platform/db"
	"train-dispatch-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (postgres, redis) behind ports and starts
// the HTTP server.
func main() {
	setupLogging()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to postgres")
	}
	defer pg.Close()

	repo := repositories.NewPostgresScenarioRepository(pg)

	// The plan cache is optional: without redis every request recomputes.
	var planCache ports.PlanCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		planCache = cache.NewRedisPlanCache(client, 24*time.Hour)
		log.Info().Str("addr", addr).Msg("plan cache enabled")
	}

	router := api.NewRouter(repo, planCache)

	// Write timeout leaves headroom for searches on dense scenarios.
	log.Info().Str("addr", ":"+port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Send()
}

func setupLogging() {
	if os.Getenv("LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
