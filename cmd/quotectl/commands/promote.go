package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"youquote/internal/domain"
	"youquote/internal/pkg/logger"
	"youquote/internal/repository"
)

var demote bool

var promoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Give an existing user the admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		users := repository.NewUserRepository(db)
		user, err := users.GetByEmail(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("no user with email %s", args[0])
			}
			return err
		}

		role := domain.RoleAdmin
		if demote {
			role = domain.RoleAuthor
		}
		if err := users.UpdateRole(cmd.Context(), user.ID, role); err != nil {
			logger.Error("role update failed", err)
			return err
		}
		logger.Info("role updated", map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
			"role":    role,
		})
		return nil
	},
}

func init() {
	promoteCmd.Flags().BoolVar(&demote, "demote", false, "Turn an admin back into an author")
	rootCmd.AddCommand(promoteCmd)
}
