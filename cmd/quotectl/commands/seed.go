package commands

import (
	"github.com/spf13/cobra"

	"youquote/internal/database"
	"youquote/internal/pkg/logger"
	"youquote/internal/seed"
)

var seedOpts seed.Options

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert an admin account, categories, tags and sample quotes",
	Long: `Seed the database with demo data. Roughly 70% of the generated quotes
are validated and each gets a popularity between 0 and 100.

Examples:
  quotectl seed --admin-password 'S3cret!pass'
  quotectl seed --quotes 100 --admin-email root@example.com --admin-password 'S3cret!pass'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		res, err := seed.Run(cmd.Context(), db, seedOpts)
		if err != nil {
			logger.Error("seed failed", err)
			return err
		}
		logger.Info("seed completed", map[string]interface{}{
			"admin":      res.Admin.Email,
			"categories": res.Categories,
			"tags":       res.Tags,
			"quotes":     res.Quotes,
			"validated":  res.Validated,
		})
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedOpts.AdminName, "admin-name", "Admin", "Admin display name")
	seedCmd.Flags().StringVar(&seedOpts.AdminEmail, "admin-email", "admin@youquote.local", "Admin email")
	seedCmd.Flags().StringVar(&seedOpts.AdminPassword, "admin-password", "", "Admin password (required)")
	seedCmd.Flags().IntVar(&seedOpts.Quotes, "quotes", 30, "Number of sample quotes")
	_ = seedCmd.MarkFlagRequired("admin-password")

	rootCmd.AddCommand(seedCmd)
}
