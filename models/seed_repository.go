package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

var (
	// ErrDuplicateKey wraps unique constraint violations, e.g. seeding twice
	// without clearing.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKeyViolation wraps writes or deletes that break a reference.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// TableCount is the number of rows in (or removed from) one table.
type TableCount struct {
	Table string
	Rows  int64
}

// SeedRepository is the persistence side of seeding. Every create fills in
// the generated ID of the passed rows.
type SeedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{
		db: db,
	}
}

// UpsertUser creates the user or, if the email already exists, updates its
// role only. u is reloaded from the store either way.
func (r *SeedRepository) UpsertUser(ctx context.Context, u *User) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{
				"role":       u.Role,
				"updated_at": time.Now(),
			}),
		}).
		Omit(clause.Associations).
		Create(u).Error
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", u.Email, translate(err))
	}

	// The conflict branch does not report the existing ID on every driver.
	var stored User
	if err := r.db.WithContext(ctx).Where("email = ?", u.Email).First(&stored).Error; err != nil {
		return fmt.Errorf("reload user %s: %w", u.Email, translate(err))
	}
	*u = stored
	return nil
}

func (r *SeedRepository) CreateProductCategory(ctx context.Context, c *ProductCategory) error {
	return r.create(ctx, c, "product category "+c.Slug)
}

func (r *SeedRepository) CreateArticleCategory(ctx context.Context, c *ArticleCategory) error {
	return r.create(ctx, c, "article category "+c.Slug)
}

func (r *SeedRepository) CreateTag(ctx context.Context, t *Tag) error {
	return r.create(ctx, t, "tag "+t.Slug)
}

func (r *SeedRepository) CreateProduct(ctx context.Context, p *Product) error {
	return r.create(ctx, p, "product "+p.Slug)
}

func (r *SeedRepository) CreateProductImages(ctx context.Context, images []ProductImage) error {
	return createBatch(ctx, r.db, images, "product images")
}

func (r *SeedRepository) CreateSpecifications(ctx context.Context, specs []Specification) error {
	return createBatch(ctx, r.db, specs, "specifications")
}

func (r *SeedRepository) CreateProductDocuments(ctx context.Context, docs []ProductDocument) error {
	return createBatch(ctx, r.db, docs, "product documents")
}

func (r *SeedRepository) CreateProductVideos(ctx context.Context, videos []ProductVideo) error {
	return createBatch(ctx, r.db, videos, "product videos")
}

func (r *SeedRepository) CreateProductAttributes(ctx context.Context, attrs []ProductAttribute) error {
	return createBatch(ctx, r.db, attrs, "product attributes")
}

func (r *SeedRepository) CreateProductTags(ctx context.Context, links []TagsOnProducts) error {
	return createBatch(ctx, r.db, links, "product tags")
}

func (r *SeedRepository) CreateArticle(ctx context.Context, a *Article) error {
	return r.create(ctx, a, "article "+a.Slug)
}

func (r *SeedRepository) CreateArticleTags(ctx context.Context, links []TagsOnArticles) error {
	return createBatch(ctx, r.db, links, "article tags")
}

func (r *SeedRepository) CreateCaseStudy(ctx context.Context, c *CaseStudy) error {
	return r.create(ctx, c, "case study "+c.Slug)
}

func (r *SeedRepository) CreateCaseTags(ctx context.Context, links []TagsOnCases) error {
	return createBatch(ctx, r.db, links, "case study tags")
}

func (r *SeedRepository) CreateProductArticleRelation(ctx context.Context, rel *ProductArticleRelation) error {
	return r.create(ctx, rel, "product-article relation")
}

func (r *SeedRepository) CreateProductCaseRelation(ctx context.Context, rel *ProductCaseRelation) error {
	return r.create(ctx, rel, "product-case relation")
}

func (r *SeedRepository) CreateProductRelations(ctx context.Context, rels []ProductRelation) error {
	return createBatch(ctx, r.db, rels, "product relations")
}

func (r *SeedRepository) CreateSiteSettings(ctx context.Context, settings []SiteSetting) error {
	return createBatch(ctx, r.db, settings, "site settings")
}

// ClearAll deletes every row of every seeded table in ClearOrder and
// reports how many rows each table lost.
func (r *SeedRepository) ClearAll(ctx context.Context) ([]TableCount, error) {
	db := r.db.WithContext(ctx)
	removed := make([]TableCount, 0, len(ClearOrder()))

	for _, model := range ClearOrder() {
		table := TableOf(model)

		// Detach the category tree first so no row is deleted while a child
		// still points at it.
		if _, ok := model.(*ProductCategory); ok {
			if err := db.Model(model).Where("parent_id IS NOT NULL").Update("parent_id", nil).Error; err != nil {
				return removed, fmt.Errorf("detach %s: %w", table, translate(err))
			}
		}

		res := db.Where("1 = 1").Delete(model)
		if res.Error != nil {
			return removed, fmt.Errorf("clear %s: %w", table, translate(res.Error))
		}
		removed = append(removed, TableCount{Table: table, Rows: res.RowsAffected})
	}

	return removed, nil
}

// Counts returns the row count of every table in dependency order.
func (r *SeedRepository) Counts(ctx context.Context) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(All()))
	for _, model := range All() {
		var n int64
		if err := r.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", TableOf(model), translate(err))
		}
		counts = append(counts, TableCount{Table: TableOf(model), Rows: n})
	}
	return counts, nil
}

// GetProductBySlug loads a product with its category, tags and detail rows.
// Images and specifications come back in display order.
func (r *SeedRepository) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	byDisplayOrder := func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order")
	}

	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", byDisplayOrder).
		Preload("Specifications", byDisplayOrder).
		Preload("Videos", byDisplayOrder).
		Preload("Documents").
		Preload("Attributes").
		Preload("Tags.Tag").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

func (r *SeedRepository) GetAllProductCategories(ctx context.Context) ([]ProductCategory, error) {
	var categories []ProductCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *SeedRepository) create(ctx context.Context, value any, what string) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(value).Error; err != nil {
		return fmt.Errorf("create %s: %w", what, translate(err))
	}
	return nil
}

func createBatch[T any](ctx context.Context, db *gorm.DB, rows []T, what string) error {
	if len(rows) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return fmt.Errorf("create %s: %w", what, translate(err))
	}
	return nil
}

// translate maps driver specific constraint errors onto ErrDuplicateKey and
// ErrForeignKeyViolation, keeping the driver message.
func translate(err error) error {
	var (
		pgErr *pgconn.PgError
		pqErr *pq.Error
		code  string
	)
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), code == "23505":
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), code == "23503":
		return fmt.Errorf("%w: %v", ErrForeignKeyViolation, err)
	}
	return err
}
