package seeder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/enterprisetech/admin-seed/models"
)

// Store is the persistence engine the seeder writes through. Every create
// fills in the generated IDs of the rows it is given.
type Store interface {
	ClearAll(ctx context.Context) ([]models.TableCount, error)

	UpsertUser(ctx context.Context, u *models.User) error
	CreateProductCategory(ctx context.Context, c *models.ProductCategory) error
	CreateArticleCategory(ctx context.Context, c *models.ArticleCategory) error
	CreateTag(ctx context.Context, t *models.Tag) error

	CreateProduct(ctx context.Context, p *models.Product) error
	CreateProductImages(ctx context.Context, images []models.ProductImage) error
	CreateSpecifications(ctx context.Context, specs []models.Specification) error
	CreateProductDocuments(ctx context.Context, docs []models.ProductDocument) error
	CreateProductVideos(ctx context.Context, videos []models.ProductVideo) error
	CreateProductAttributes(ctx context.Context, attrs []models.ProductAttribute) error
	CreateProductTags(ctx context.Context, links []models.TagsOnProducts) error

	CreateArticle(ctx context.Context, a *models.Article) error
	CreateArticleTags(ctx context.Context, links []models.TagsOnArticles) error
	CreateCaseStudy(ctx context.Context, c *models.CaseStudy) error
	CreateCaseTags(ctx context.Context, links []models.TagsOnCases) error

	CreateProductArticleRelation(ctx context.Context, rel *models.ProductArticleRelation) error
	CreateProductCaseRelation(ctx context.Context, rel *models.ProductCaseRelation) error
	CreateProductRelations(ctx context.Context, rels []models.ProductRelation) error

	CreateSiteSettings(ctx context.Context, settings []models.SiteSetting) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// AdminAccount is the account upserted at the start of every run.
type AdminAccount struct {
	Email    string
	Name     string
	Password string
}

type Options struct {
	// Clear empties every seeded table before seeding. Destructive.
	Clear bool
	// ConcurrentDetails inserts a product's images, specifications,
	// documents, videos and attributes concurrently.
	ConcurrentDetails bool
	Admin             AdminAccount
}

// Report counts the rows a run created.
type Report struct {
	Cleared []models.TableCount

	Users             int
	ProductCategories int
	ArticleCategories int
	Tags              int

	Products          int
	ProductImages     int
	Specifications    int
	ProductDocuments  int
	ProductVideos     int
	ProductAttributes int
	ProductTags       int

	Articles    int
	ArticleTags int
	CaseStudies int
	CaseTags    int

	ProductArticleRelations int
	ProductCaseRelations    int
	ProductRelations        int

	SiteSettings int
}

// Seeder populates the store from a Dataset in dependency order. It does
// not own the store: the caller opens it and closes it after Run returns.
type Seeder struct {
	store  Store
	hasher PasswordHasher
	data   *Dataset
	log    *zap.Logger
	now    func() time.Time
}

func New(store Store, hasher PasswordHasher, data *Dataset, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{
		store:  store,
		hasher: hasher,
		data:   data,
		log:    log,
		now:    time.Now,
	}
}

// Clear deletes all seeded rows in reverse dependency order.
func (s *Seeder) Clear(ctx context.Context) ([]models.TableCount, error) {
	cleared, err := s.store.ClearAll(ctx)
	if err != nil {
		return cleared, err
	}
	var total int64
	for _, tc := range cleared {
		total += tc.Rows
	}
	s.log.Info("cleared seeded tables", zap.Int("tables", len(cleared)), zap.Int64("rows", total))
	return cleared, nil
}

// Run executes every stage in order and stops at the first error. Rows
// written before the failure stay in the store; the returned Report
// counts them.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Report, error) {
	log := s.log.With(zap.String("method", "Run"))
	log.Info("starting database seeding")

	rep := &Report{}
	now := s.now()

	if opts.Clear {
		cleared, err := s.Clear(ctx)
		rep.Cleared = cleared
		if err != nil {
			return rep, fmt.Errorf("clear database: %w", err)
		}
	}

	admin, err := seedAdmin(ctx, s.store, s.hasher, opts.Admin)
	if err != nil {
		return rep, fmt.Errorf("seed admin user: %w", err)
	}
	rep.Users = 1
	log.Info("admin user ready", zap.String("email", admin.Email), zap.Uint("id", admin.ID))

	productCategories, err := seedProductCategories(ctx, s.store, s.data.ProductCategories)
	rep.ProductCategories = productCategories.Len()
	if err != nil {
		return rep, fmt.Errorf("seed product categories: %w", err)
	}
	log.Info("created product categories", zap.Int("count", rep.ProductCategories))

	articleCategories, err := seedArticleCategories(ctx, s.store, s.data.ArticleCategories)
	rep.ArticleCategories = articleCategories.Len()
	if err != nil {
		return rep, fmt.Errorf("seed article categories: %w", err)
	}
	log.Info("created article categories", zap.Int("count", rep.ArticleCategories))

	tags, err := seedTags(ctx, s.store, s.data.Tags)
	rep.Tags = tags.Len()
	if err != nil {
		return rep, fmt.Errorf("seed tags: %w", err)
	}
	log.Info("created tags", zap.Int("count", rep.Tags))

	products, err := seedProducts(ctx, s.store, s.data.Products, productCategories, tags, productOptions{
		now:        now,
		concurrent: opts.ConcurrentDetails,
	}, rep)
	if err != nil {
		return rep, fmt.Errorf("seed products: %w", err)
	}
	log.Info("created products",
		zap.Int("count", rep.Products),
		zap.Int("images", rep.ProductImages),
		zap.Int("specifications", rep.Specifications),
		zap.Int("documents", rep.ProductDocuments),
		zap.Int("tags", rep.ProductTags),
	)

	articles, err := seedArticles(ctx, s.store, s.data.Articles, articleCategories, tags, admin.ID, now, rep)
	if err != nil {
		return rep, fmt.Errorf("seed articles: %w", err)
	}
	log.Info("created articles", zap.Int("count", rep.Articles), zap.Int("tags", rep.ArticleTags))

	cases, err := seedCaseStudies(ctx, s.store, s.data.CaseStudies, tags, admin.ID, now, rep)
	if err != nil {
		return rep, fmt.Errorf("seed case studies: %w", err)
	}
	log.Info("created case studies", zap.Int("count", rep.CaseStudies), zap.Int("tags", rep.CaseTags))

	if err := seedContentRelations(ctx, s.store, s.data.Products, products, articles, cases, rep); err != nil {
		return rep, fmt.Errorf("seed content relations: %w", err)
	}
	log.Info("created product-content relations",
		zap.Int("articles", rep.ProductArticleRelations),
		zap.Int("case_studies", rep.ProductCaseRelations),
		zap.Int("products", rep.ProductRelations),
	)

	if err := seedSiteSettings(ctx, s.store, s.data.SiteSettings, rep); err != nil {
		return rep, fmt.Errorf("seed site settings: %w", err)
	}
	log.Info("created site settings", zap.Int("count", rep.SiteSettings))

	log.Info("database seeding completed")
	return rep, nil
}
