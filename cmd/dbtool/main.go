package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/platform/db"
)

// dbtool provisions a managed PostgreSQL deployment: migrate applies both
// service schemas, seed inserts the default configuration entries without
// touching keys an operator already changed.
func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "dbtool",
		Short:         "Provision the address/distance PostgreSQL database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCommand(), newSeedCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dbtool:", err)
		os.Exit(1)
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of both services if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbh, err := open()
			if err != nil {
				return err
			}
			defer dbh.Close()

			if err := repositories.InitAddressSchema(dbh); err != nil {
				return err
			}
			if err := repositories.InitCalculationSchema(dbh); err != nil {
				return err
			}

			fmt.Println("schema ready")
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert default configuration entries (never overwrites)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbh, err := open()
			if err != nil {
				return err
			}
			defer dbh.Close()

			if err := repositories.InitCalculationSchema(dbh); err != nil {
				return err
			}
			if err := repositories.NewPostgresConfig(dbh).Seed(context.Background()); err != nil {
				return err
			}

			fmt.Println("configuration defaults seeded")
			return nil
		},
	}
}

func open() (*sql.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return db.OpenPostgres(databaseURL)
}
