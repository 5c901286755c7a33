package main

import (
	"database/sql"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"train-dispatch-service/internal/adapters/repositories"
	"train-dispatch-service/internal/config"
	"train-dispatch-service/internal/platform/db"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	defer pg.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/scenario.json")
	if err := initAndSeed(pg, seedPath); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func initAndSeed(pg *sql.DB, seedPath string) error {
	log.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(pg); err != nil {
		return err
	}
	log.Info().Msg("Schema ready.")

	log.Info().Str("path", seedPath).Msg("Seeding database...")
	if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
		return err
	}
	log.Info().Msg("Seeding complete.")

	return nil
}
