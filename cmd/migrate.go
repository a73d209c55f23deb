package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/enterprisetech/admin-seed/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the admin panel schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return database.WithDB(cfg, log, func(db *gorm.DB) error {
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			color.Green("✅ Schema is up to date")
			return nil
		})
	},
}
