package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"youquote/internal/config"
	"youquote/internal/database"
	"youquote/internal/pkg/logger"
)

var (
	// Global flags
	dbURL   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quotectl",
	Short: "YouQuote maintenance commands",
	Long: `quotectl runs one-off maintenance tasks against the YouQuote database.

Commands:
  migrate       - Create or update the schema
  seed          - Insert an admin account, categories, tags and sample quotes
  purge-tokens  - Delete revoked tokens that have already expired
  promote       - Give an existing user the admin role`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		logger.Init(os.Getenv("APP_ENV"), verbose)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// openDB resolves the database from --db or the regular application config.
func openDB() (*gorm.DB, error) {
	dsn := dbURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		dsn = cfg.DatabaseURL
	}
	return database.Connect(dsn)
}
