package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/enterprisetech/admin-seed/app/auth"
	"github.com/enterprisetech/admin-seed/app/seeder"
	"github.com/enterprisetech/admin-seed/config"
	"github.com/enterprisetech/admin-seed/database"
	"github.com/enterprisetech/admin-seed/models"
)

var (
	seedClear    bool
	seedMigrate  bool
	seedDataFile string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with the demo catalog",
	Long: `Insert the admin user, categories, tags, products, articles, case studies,
their relations and the site settings, in dependency order.

Running seed twice without --clear fails on the first duplicate slug.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		dataFile := cfg.Seed.DataFile
		if seedDataFile != "" {
			dataFile = seedDataFile
		}
		data, err := seeder.LoadDataset(dataFile)
		if err != nil {
			return err
		}

		hasher, err := auth.NewBcryptHasher(cfg.Seed.BcryptCost)
		if err != nil {
			return err
		}

		color.Cyan("🌱 Seeding database...")
		if seedClear {
			color.Yellow("⚠️  --clear set: every seeded table will be emptied first")
		}

		return database.WithDB(cfg, log, func(db *gorm.DB) error {
			if seedMigrate {
				if err := database.Migrate(cmd.Context(), db); err != nil {
					return err
				}
			}

			s := seeder.New(models.NewSeedRepository(db), hasher, data, log)
			rep, err := s.Run(cmd.Context(), seedOptions(cfg))
			if err != nil {
				log.Error("seeding failed", zap.Error(err))
				return err
			}

			printReport(rep)
			return nil
		})
	},
}

// seedOptions reads the clear toggle from the command line only.
func seedOptions(cfg *config.Config) seeder.Options {
	return seeder.Options{
		Clear:             seedClear,
		ConcurrentDetails: cfg.Seed.ConcurrentDetails,
		Admin: seeder.AdminAccount{
			Email:    cfg.Admin.Email,
			Name:     cfg.Admin.Name,
			Password: cfg.Admin.Password,
		},
	}
}

func printReport(rep *seeder.Report) {
	rows := []struct {
		label string
		count int
	}{
		{"users", rep.Users},
		{"product categories", rep.ProductCategories},
		{"article categories", rep.ArticleCategories},
		{"tags", rep.Tags},
		{"products", rep.Products},
		{"product images", rep.ProductImages},
		{"specifications", rep.Specifications},
		{"product documents", rep.ProductDocuments},
		{"product tags", rep.ProductTags},
		{"articles", rep.Articles},
		{"article tags", rep.ArticleTags},
		{"case studies", rep.CaseStudies},
		{"case study tags", rep.CaseTags},
		{"product-article relations", rep.ProductArticleRelations},
		{"product-case relations", rep.ProductCaseRelations},
		{"product relations", rep.ProductRelations},
		{"site settings", rep.SiteSettings},
	}
	for _, r := range rows {
		fmt.Printf("  %-26s %d\n", r.label, r.count)
	}
	color.Green("\n✅ Database seeding completed successfully!")
}

func init() {
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "Delete all seeded rows before seeding (destructive)")
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "Run schema migration before seeding")
	seedCmd.Flags().StringVar(&seedDataFile, "data", "", "YAML dataset to seed instead of the built-in catalog")
}
