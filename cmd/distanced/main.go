package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/api/calcapi"
	"address-distance-service/internal/platform/db"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

// main is the distance service composition root: the engine, its calculation
// store and the configuration endpoint, exposed over HTTP for the split
// deployment.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}
	setupLogging()

	port := getEnv("PORT", "5000")
	rateLimit := getEnvInt("RATE_LIMIT_PER_MINUTE", 120)

	dbh, calculations, config, err := openStores()
	if err != nil {
		log.Fatal().Err(err).Msg("open stores")
	}
	defer dbh.Close()

	if err := config.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seed configuration defaults")
	}

	engine := services.NewEngine(config)
	service := services.NewCalculations(engine, calculations)
	router := calcapi.NewRouter(service, config, rateLimit)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Info().Str("addr", srv.Addr).Msg("distance service listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func openStores() (*sql.DB, ports.CalculationRepository, ports.ConfigRepository, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dbh, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repositories.InitCalculationSchema(dbh); err != nil {
			return nil, nil, nil, err
		}
		return dbh, repositories.NewPostgresCalculations(dbh), repositories.NewPostgresConfig(dbh), nil
	}

	dbh, err := db.OpenSQLite(getEnv("DB_PATH", "data/distance.db"))
	if err != nil {
		return nil, nil, nil, err
	}
	if err := repositories.InitCalculationSchema(dbh); err != nil {
		return nil, nil, nil, err
	}
	return dbh, repositories.NewSqliteCalculations(dbh), repositories.NewSqliteConfig(dbh), nil
}

func setupLogging() {
	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
