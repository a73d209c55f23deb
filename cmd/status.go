package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/enterprisetech/admin-seed/database"
	"github.com/enterprisetech/admin-seed/models"
)

var statusProduct string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts of the seeded tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return database.WithDB(cfg, log, func(db *gorm.DB) error {
			repo := models.NewSeedRepository(db)

			if statusProduct != "" {
				product, err := repo.GetProductBySlug(cmd.Context(), statusProduct)
				if err != nil {
					return fmt.Errorf("product %s: %w", statusProduct, err)
				}
				printProduct(product)
				return nil
			}

			counts, err := repo.Counts(cmd.Context())
			if err != nil {
				return err
			}
			for _, tc := range counts {
				fmt.Printf("  %-26s %d\n", tc.Table, tc.Rows)
			}
			return nil
		})
	},
}

func printProduct(p *models.Product) {
	fmt.Printf("%s (%s)\n", p.Name, p.Slug)
	if p.Category != nil {
		fmt.Printf("  category: %s\n", p.Category.Slug)
	}
	fmt.Printf("  price: %s  sku: %s  stock: %d\n", p.Price.StringFixed(2), p.SKU, p.StockQuantity)

	fmt.Println("  images:")
	for _, img := range p.Images {
		fmt.Printf("    %d. %s\n", img.DisplayOrder, img.ImageURL)
	}
	fmt.Println("  specifications:")
	for _, spec := range p.Specifications {
		unit := ""
		if spec.Unit != nil {
			unit = " " + *spec.Unit
		}
		fmt.Printf("    %d. [%s] %s: %s%s\n", spec.DisplayOrder, spec.Group, spec.Name, spec.Value, unit)
	}
	fmt.Println("  documents:")
	for _, doc := range p.Documents {
		fmt.Printf("    %s (%s, %d KB)\n", doc.Title, doc.FileType, doc.FileSize)
	}
	fmt.Print("  tags:")
	for _, link := range p.Tags {
		if link.Tag != nil {
			fmt.Printf(" %s", link.Tag.Slug)
		}
	}
	fmt.Println()
}

func init() {
	statusCmd.Flags().StringVar(&statusProduct, "product", "", "Show one product with its detail rows")
}
