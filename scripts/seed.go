package main

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/database"
	"github.com/spf13/cobra"
)

var (
	dbURI string
	reset bool
)

// rootCmd seeds the database used by the API server
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the pizza restaurants database with sample data",
	Long: `Migrate the schema and insert sample restaurants, pizzas and prices.

Seeding only happens when the restaurants table is empty. Use --reset to
delete every row first.

Examples:
  go run ./scripts                            # Uses DB_URI or sqlite://app.db
  go run ./scripts --db-uri sqlite://dev.db   # Seed another SQLite file
  go run ./scripts --reset                    # Wipe and seed again`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed()
	},
}

func init() {
	config.LoadDotenv()

	rootCmd.Flags().StringVar(&dbURI, "db-uri", config.GetEnvWithDefault("DB_URI", "sqlite://app.db"), "Database connection string")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "Delete all rows before seeding")
}

func runSeed() error {
	dbConfig, err := database.ConfigFromURL(dbURI)
	if err != nil {
		return err
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		return err
	}

	if reset {
		if err := database.Reset(db); err != nil {
			return err
		}
		fmt.Println("Deleted existing rows")
	}

	seeded, err := database.Seed(db)
	if err != nil {
		return err
	}
	if seeded {
		fmt.Printf("Seeded %s\n", database.MaskURL(dbURI))
	} else {
		fmt.Println("Database already has restaurants, nothing to seed")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
