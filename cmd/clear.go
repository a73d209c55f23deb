package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/enterprisetech/admin-seed/app/seeder"
	"github.com/enterprisetech/admin-seed/database"
	"github.com/enterprisetech/admin-seed/models"
)

var clearConfirmed bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every seeded row (destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearConfirmed {
			return fmt.Errorf("refusing to clear the database without --yes")
		}

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return database.WithDB(cfg, log, func(db *gorm.DB) error {
			s := seeder.New(models.NewSeedRepository(db), nil, nil, log)
			cleared, err := s.Clear(cmd.Context())
			if err != nil {
				return err
			}
			for _, tc := range cleared {
				fmt.Printf("  %-26s %d\n", tc.Table, tc.Rows)
			}
			color.Green("✅ Database cleared")
			return nil
		})
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearConfirmed, "yes", false, "Confirm deleting all seeded data")
}
