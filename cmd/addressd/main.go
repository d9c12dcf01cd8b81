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

	"address-distance-service/internal/adapters/distcalc"
	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/adapters/viacep"
	"address-distance-service/internal/api/addressapi"
	"address-distance-service/internal/platform/db"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

// main is the address service composition root. It wires the durable stores,
// the ViaCEP lookup client and either an embedded distance engine or the
// HTTP client for a separately deployed distance service.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}
	setupLogging()

	port := getEnv("PORT", "8000")
	lookupURL := os.Getenv("VIACEP_BASE_URL") // empty selects the public service
	lookupTimeout := getEnvDuration("VIACEP_TIMEOUT", 10*time.Second)
	calcURL := os.Getenv("CALC_API_URL")
	calcTimeout := getEnvDuration("CALC_API_TIMEOUT", 15*time.Second)
	rateLimit := getEnvInt("RATE_LIMIT_PER_MINUTE", 120)

	dbh, st, err := openStores()
	if err != nil {
		log.Fatal().Err(err).Msg("open stores")
	}
	defer dbh.Close()

	lookup := viacep.NewClient(lookupURL, lookupTimeout)
	resolver := services.NewResolver(st.addresses, st.history, lookup)
	users := services.NewUsers(st.users)

	var calculator ports.DistanceCalculator
	if calcURL != "" {
		calculator = distcalc.NewHTTPClient(calcURL, calcTimeout)
		log.Info().Str("calc_api_url", calcURL).Msg("using remote distance service")
	} else {
		// Single-process shape: the engine and its calculation store run
		// in this binary.
		if err := repositories.InitCalculationSchema(dbh); err != nil {
			log.Fatal().Err(err).Msg("init calculation schema")
		}
		if err := st.config.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("seed configuration defaults")
		}
		engine := services.NewEngine(st.config)
		calculator = distcalc.NewLocal(services.NewCalculations(engine, st.calculations))
		log.Info().Msg("using embedded distance engine")
	}

	trips := services.NewTrips(resolver, calculator, st.history)
	router := addressapi.NewRouter(resolver, trips, users, st.history, rateLimit)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Info().Str("addr", srv.Addr).Msg("address service listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

// stores bundles the repositories of whichever backend is configured.
type stores struct {
	addresses    ports.AddressRepository
	history      ports.HistoryRepository
	users        ports.UserRepository
	calculations ports.CalculationRepository
	config       ports.ConfigRepository
}

// openStores picks PostgreSQL when DATABASE_URL is set, otherwise the
// embedded SQLite file, and applies the address-side schema.
func openStores() (*sql.DB, stores, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dbh, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, stores{}, err
		}
		if err := repositories.InitAddressSchema(dbh); err != nil {
			return nil, stores{}, err
		}
		return dbh, stores{
			addresses:    repositories.NewPostgresAddresses(dbh),
			history:      repositories.NewPostgresHistory(dbh),
			users:        repositories.NewPostgresUsers(dbh),
			calculations: repositories.NewPostgresCalculations(dbh),
			config:       repositories.NewPostgresConfig(dbh),
		}, nil
	}

	dbh, err := db.OpenSQLite(getEnv("DB_PATH", "data/address.db"))
	if err != nil {
		return nil, stores{}, err
	}
	if err := repositories.InitAddressSchema(dbh); err != nil {
		return nil, stores{}, err
	}
	return dbh, stores{
		addresses:    repositories.NewSqliteAddresses(dbh),
		history:      repositories.NewSqliteHistory(dbh),
		users:        repositories.NewSqliteUsers(dbh),
		calculations: repositories.NewSqliteCalculations(dbh),
		config:       repositories.NewSqliteConfig(dbh),
	}, nil
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

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
