package seeder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/enterprisetech/admin-seed/models"
)

// --- In-memory Store ---

// memStore enforces the constraints the real schema has: unique slugs,
// emails and keys, and references to rows that already exist.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	calls  []string
	failOn map[string]error

	users             []models.User
	productCategories []models.ProductCategory
	articleCategories []models.ArticleCategory
	tags              []models.Tag
	products          []models.Product
	images            []models.ProductImage
	specs             []models.Specification
	docs              []models.ProductDocument
	videos            []models.ProductVideo
	attrs             []models.ProductAttribute
	productTags       []models.TagsOnProducts
	articles          []models.Article
	articleTags       []models.TagsOnArticles
	cases             []models.CaseStudy
	caseTags          []models.TagsOnCases
	productArticles   []models.ProductArticleRelation
	productCases      []models.ProductCaseRelation
	productRelations  []models.ProductRelation
	settings          []models.SiteSetting
}

func newMemStore() *memStore {
	return &memStore{failOn: map[string]error{}}
}

func (m *memStore) step(name string) error {
	m.calls = append(m.calls, name)
	return m.failOn[name]
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) called(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

func duplicate(what, key string) error {
	return fmt.Errorf("%w: %s %q", models.ErrDuplicateKey, what, key)
}

func dangling(what string, id uint) error {
	return fmt.Errorf("%w: %s %d", models.ErrForeignKeyViolation, what, id)
}

func (m *memStore) ClearAll(ctx context.Context) ([]models.TableCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("ClearAll"); err != nil {
		return nil, err
	}
	removed := []models.TableCount{
		{Table: "site_settings", Rows: int64(len(m.settings))},
		{Table: "tags_on_products", Rows: int64(len(m.productTags))},
		{Table: "products", Rows: int64(len(m.products))},
		{Table: "tags", Rows: int64(len(m.tags))},
		{Table: "product_categories", Rows: int64(len(m.productCategories))},
		{Table: "users", Rows: int64(len(m.users))},
	}
	m.users, m.productCategories, m.articleCategories, m.tags = nil, nil, nil, nil
	m.products, m.images, m.specs, m.docs, m.videos, m.attrs = nil, nil, nil, nil, nil, nil
	m.productTags, m.articles, m.articleTags, m.cases, m.caseTags = nil, nil, nil, nil, nil
	m.productArticles, m.productCases, m.productRelations, m.settings = nil, nil, nil, nil
	return removed, nil
}

func (m *memStore) UpsertUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("UpsertUser"); err != nil {
		return err
	}
	for i := range m.users {
		if m.users[i].Email == u.Email {
			m.users[i].Role = u.Role
			*u = m.users[i]
			return nil
		}
	}
	u.ID = m.id()
	m.users = append(m.users, *u)
	return nil
}

func (m *memStore) CreateProductCategory(ctx context.Context, c *models.ProductCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductCategory"); err != nil {
		return err
	}
	for _, existing := range m.productCategories {
		if existing.Slug == c.Slug {
			return duplicate("product category", c.Slug)
		}
	}
	if c.ParentID != nil && !m.hasProductCategory(*c.ParentID) {
		return dangling("parent category", *c.ParentID)
	}
	c.ID = m.id()
	m.productCategories = append(m.productCategories, *c)
	return nil
}

func (m *memStore) hasProductCategory(id uint) bool {
	for _, c := range m.productCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (m *memStore) CreateArticleCategory(ctx context.Context, c *models.ArticleCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateArticleCategory"); err != nil {
		return err
	}
	for _, existing := range m.articleCategories {
		if existing.Slug == c.Slug {
			return duplicate("article category", c.Slug)
		}
	}
	c.ID = m.id()
	m.articleCategories = append(m.articleCategories, *c)
	return nil
}

func (m *memStore) CreateTag(ctx context.Context, t *models.Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateTag"); err != nil {
		return err
	}
	for _, existing := range m.tags {
		if existing.Slug == t.Slug {
			return duplicate("tag", t.Slug)
		}
	}
	t.ID = m.id()
	m.tags = append(m.tags, *t)
	return nil
}

func (m *memStore) hasTag(id uint) bool {
	for _, t := range m.tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (m *memStore) CreateProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProduct"); err != nil {
		return err
	}
	for _, existing := range m.products {
		if existing.Slug == p.Slug {
			return duplicate("product", p.Slug)
		}
	}
	if !m.hasProductCategory(p.CategoryID) {
		return dangling("product category", p.CategoryID)
	}
	p.ID = m.id()
	m.products = append(m.products, *p)
	return nil
}

func (m *memStore) hasProduct(id uint) bool {
	for _, p := range m.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *memStore) CreateProductImages(ctx context.Context, images []models.ProductImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductImages"); err != nil {
		return err
	}
	for i := range images {
		if !m.hasProduct(images[i].ProductID) {
			return dangling("product", images[i].ProductID)
		}
		images[i].ID = m.id()
	}
	m.images = append(m.images, images...)
	return nil
}

func (m *memStore) CreateSpecifications(ctx context.Context, specs []models.Specification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateSpecifications"); err != nil {
		return err
	}
	for i := range specs {
		if !m.hasProduct(specs[i].ProductID) {
			return dangling("product", specs[i].ProductID)
		}
		specs[i].ID = m.id()
	}
	m.specs = append(m.specs, specs...)
	return nil
}

func (m *memStore) CreateProductDocuments(ctx context.Context, docs []models.ProductDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductDocuments"); err != nil {
		return err
	}
	for i := range docs {
		if !m.hasProduct(docs[i].ProductID) {
			return dangling("product", docs[i].ProductID)
		}
		docs[i].ID = m.id()
	}
	m.docs = append(m.docs, docs...)
	return nil
}

func (m *memStore) CreateProductVideos(ctx context.Context, videos []models.ProductVideo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductVideos"); err != nil {
		return err
	}
	m.videos = append(m.videos, videos...)
	return nil
}

func (m *memStore) CreateProductAttributes(ctx context.Context, attrs []models.ProductAttribute) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductAttributes"); err != nil {
		return err
	}
	m.attrs = append(m.attrs, attrs...)
	return nil
}

func (m *memStore) CreateProductTags(ctx context.Context, links []models.TagsOnProducts) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductTags"); err != nil {
		return err
	}
	for _, l := range links {
		if !m.hasProduct(l.ProductID) {
			return dangling("product", l.ProductID)
		}
		if !m.hasTag(l.TagID) {
			return dangling("tag", l.TagID)
		}
	}
	m.productTags = append(m.productTags, links...)
	return nil
}

func (m *memStore) CreateArticle(ctx context.Context, a *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateArticle"); err != nil {
		return err
	}
	for _, existing := range m.articles {
		if existing.Slug == a.Slug {
			return duplicate("article", a.Slug)
		}
	}
	a.ID = m.id()
	m.articles = append(m.articles, *a)
	return nil
}

func (m *memStore) CreateArticleTags(ctx context.Context, links []models.TagsOnArticles) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateArticleTags"); err != nil {
		return err
	}
	for _, l := range links {
		if !m.hasTag(l.TagID) {
			return dangling("tag", l.TagID)
		}
	}
	m.articleTags = append(m.articleTags, links...)
	return nil
}

func (m *memStore) CreateCaseStudy(ctx context.Context, c *models.CaseStudy) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateCaseStudy"); err != nil {
		return err
	}
	for _, existing := range m.cases {
		if existing.Slug == c.Slug {
			return duplicate("case study", c.Slug)
		}
	}
	c.ID = m.id()
	m.cases = append(m.cases, *c)
	return nil
}

func (m *memStore) CreateCaseTags(ctx context.Context, links []models.TagsOnCases) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateCaseTags"); err != nil {
		return err
	}
	for _, l := range links {
		if !m.hasTag(l.TagID) {
			return dangling("tag", l.TagID)
		}
	}
	m.caseTags = append(m.caseTags, links...)
	return nil
}

func (m *memStore) CreateProductArticleRelation(ctx context.Context, rel *models.ProductArticleRelation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductArticleRelation"); err != nil {
		return err
	}
	rel.ID = m.id()
	m.productArticles = append(m.productArticles, *rel)
	return nil
}

func (m *memStore) CreateProductCaseRelation(ctx context.Context, rel *models.ProductCaseRelation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductCaseRelation"); err != nil {
		return err
	}
	rel.ID = m.id()
	m.productCases = append(m.productCases, *rel)
	return nil
}

func (m *memStore) CreateProductRelations(ctx context.Context, rels []models.ProductRelation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateProductRelations"); err != nil {
		return err
	}
	for _, r := range rels {
		if !m.hasProduct(r.ProductID) || !m.hasProduct(r.RelatedProductID) {
			return dangling("product", r.RelatedProductID)
		}
	}
	m.productRelations = append(m.productRelations, rels...)
	return nil
}

func (m *memStore) CreateSiteSettings(ctx context.Context, settings []models.SiteSetting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.step("CreateSiteSettings"); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, s := range m.settings {
		seen[s.Key] = true
	}
	for _, s := range settings {
		if seen[s.Key] {
			return duplicate("site setting", s.Key)
		}
		seen[s.Key] = true
	}
	m.settings = append(m.settings, settings...)
	return nil
}

// --- Hasher ---

type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

var errStoreDown = errors.New("db down")
