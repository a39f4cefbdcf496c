package commands

import (
	"github.com/spf13/cobra"

	"youquote/internal/database"
	"youquote/internal/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			logger.Error("migration failed", err)
			return err
		}
		logger.Info("migration completed", map[string]interface{}{
			"tables": len(database.Models()),
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
