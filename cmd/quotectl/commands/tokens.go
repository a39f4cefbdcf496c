package commands

import (
	"time"

	"github.com/spf13/cobra"

	"youquote/internal/pkg/logger"
	"youquote/internal/repository"
)

var purgeTokensCmd = &cobra.Command{
	Use:   "purge-tokens",
	Short: "Delete revoked tokens that have already expired",
	Long: `Revoked tokens are only kept until their natural expiry. Run this
periodically (cron) when revocations are stored in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		purged, err := repository.NewRevokedTokenRepository(db).PurgeExpired(cmd.Context(), time.Now())
		if err != nil {
			logger.Error("token cleanup failed", err)
			return err
		}
		logger.Info("token cleanup completed", map[string]interface{}{"revoked_tokens": purged})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeTokensCmd)
}
