package seeder

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/enterprisetech/admin-seed/models"
)

// Stage functions take the store and the indexes of earlier stages as
// arguments. Index-returning stages return a non-nil Index even on error,
// holding what was created before the failure.

func seedAdmin(ctx context.Context, store Store, hasher PasswordHasher, acct AdminAccount) (*models.User, error) {
	hash, err := hasher.Hash(acct.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    acct.Email,
		Name:     acct.Name,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := store.UpsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// seedProductCategories inserts the tree level by level: roots first, then
// every category whose parent was inserted in the previous level. Within a
// level the dataset order is kept.
func seedProductCategories(ctx context.Context, store Store, seeds []CategorySeed) (*Index, error) {
	index := newIndex("product category")

	pending := seeds
	for len(pending) > 0 {
		var (
			deferred []CategorySeed
			level    []models.ProductCategory
		)
		for _, cs := range pending {
			cat := models.ProductCategory{
				Name:        cs.Name,
				Slug:        cs.Slug,
				Description: cs.Description,
				ImageURL:    optional(cs.ImageURL),
			}
			if cs.Parent != "" {
				parentID, err := index.Resolve(cs.Parent)
				if err != nil {
					deferred = append(deferred, cs)
					continue
				}
				cat.ParentID = &parentID
			}
			if err := store.CreateProductCategory(ctx, &cat); err != nil {
				return index, err
			}
			level = append(level, cat)
		}

		if len(level) == 0 {
			// Nothing left can be placed, so the first remaining parent
			// was never created.
			return index, fmt.Errorf("category %s: %w", deferred[0].Slug,
				&MissingReferenceError{Kind: "product category", Slug: deferred[0].Parent})
		}
		for _, cat := range level {
			index.add(cat.Slug, cat.ID)
		}
		pending = deferred
	}

	return index, nil
}

func seedArticleCategories(ctx context.Context, store Store, seeds []ArticleCategorySeed) (*Index, error) {
	index := newIndex("article category")
	for _, cs := range seeds {
		cat := models.ArticleCategory{
			Name:        cs.Name,
			Slug:        cs.Slug,
			Description: cs.Description,
		}
		if err := store.CreateArticleCategory(ctx, &cat); err != nil {
			return index, err
		}
		index.add(cat.Slug, cat.ID)
	}
	return index, nil
}

func seedTags(ctx context.Context, store Store, seeds []TagSeed) (*Index, error) {
	index := newIndex("tag")
	for _, ts := range seeds {
		tag := models.Tag{Name: ts.Name, Slug: ts.Slug}
		if err := store.CreateTag(ctx, &tag); err != nil {
			return index, err
		}
		index.add(tag.Slug, tag.ID)
	}
	return index, nil
}

type productOptions struct {
	now        time.Time
	concurrent bool
}

// seedProducts creates each product, then its detail rows, then its tag
// links. The category and every tag are resolved before the product row is
// written, so a missing reference leaves no half-linked product behind.
func seedProducts(ctx context.Context, store Store, seeds []ProductSeed, categories, tags *Index, opts productOptions, rep *Report) (*Index, error) {
	index := newIndex("product")

	for _, ps := range seeds {
		categoryID, err := categories.Resolve(ps.Category)
		if err != nil {
			return index, fmt.Errorf("product %s: %w", ps.Slug, err)
		}
		tagIDs, err := tags.ResolveAll(ps.Tags)
		if err != nil {
			return index, fmt.Errorf("product %s: %w", ps.Slug, err)
		}

		product := models.Product{
			Name:             ps.Name,
			Slug:             ps.Slug,
			Description:      ps.Description,
			CategoryID:       categoryID,
			Price:            ps.Price,
			SKU:              ps.SKU,
			StockQuantity:    ps.StockQuantity,
			IsPublished:      ps.Published,
			PublishDate:      publishDate(ps.Published, opts.now),
			FeaturedImageURL: ps.FeaturedImageURL,
		}
		if err := store.CreateProduct(ctx, &product); err != nil {
			return index, err
		}
		index.add(product.Slug, product.ID)
		rep.Products++

		if err := seedProductDetails(ctx, store, product.ID, ps, opts.concurrent, rep); err != nil {
			return index, fmt.Errorf("product %s: %w", ps.Slug, err)
		}

		links := make([]models.TagsOnProducts, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, models.TagsOnProducts{ProductID: product.ID, TagID: tagID})
		}
		if err := store.CreateProductTags(ctx, links); err != nil {
			return index, err
		}
		rep.ProductTags += len(links)
	}

	return index, nil
}

// seedProductDetails bulk-inserts the rows owned by one product. The
// batches are independent of each other and may run concurrently.
func seedProductDetails(ctx context.Context, store Store, productID uint, ps ProductSeed, concurrent bool, rep *Report) error {
	images := make([]models.ProductImage, 0, len(ps.Images))
	for _, img := range ps.Images {
		images = append(images, models.ProductImage{
			ProductID:    productID,
			ImageURL:     img.URL,
			AltText:      img.AltText,
			DisplayOrder: img.DisplayOrder,
		})
	}

	specs := make([]models.Specification, 0, len(ps.Specifications))
	for _, spec := range ps.Specifications {
		specs = append(specs, models.Specification{
			ProductID:    productID,
			Group:        spec.Group,
			Name:         spec.Name,
			Value:        spec.Value,
			Unit:         optional(spec.Unit),
			DisplayOrder: spec.DisplayOrder,
		})
	}

	docs := make([]models.ProductDocument, 0, len(ps.Documents))
	for _, doc := range ps.Documents {
		docs = append(docs, models.ProductDocument{
			ProductID:   productID,
			DocumentURL: doc.URL,
			Title:       doc.Title,
			FileType:    doc.FileType,
			FileSize:    doc.FileSize,
		})
	}

	videos := make([]models.ProductVideo, 0, len(ps.Videos))
	for _, v := range ps.Videos {
		videos = append(videos, models.ProductVideo{
			ProductID:    productID,
			VideoURL:     v.URL,
			Title:        v.Title,
			DisplayOrder: v.DisplayOrder,
		})
	}

	attrs := make([]models.ProductAttribute, 0, len(ps.Attributes))
	for _, a := range ps.Attributes {
		attrs = append(attrs, models.ProductAttribute{
			ProductID: productID,
			Name:      a.Name,
			Value:     a.Value,
		})
	}

	inserts := []func(ctx context.Context) error{
		func(ctx context.Context) error { return store.CreateProductImages(ctx, images) },
		func(ctx context.Context) error { return store.CreateSpecifications(ctx, specs) },
		func(ctx context.Context) error { return store.CreateProductDocuments(ctx, docs) },
		func(ctx context.Context) error { return store.CreateProductVideos(ctx, videos) },
		func(ctx context.Context) error { return store.CreateProductAttributes(ctx, attrs) },
	}

	if concurrent {
		g, gctx := errgroup.WithContext(ctx)
		for _, insert := range inserts {
			g.Go(func() error { return insert(gctx) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for _, insert := range inserts {
			if err := insert(ctx); err != nil {
				return err
			}
		}
	}

	rep.ProductImages += len(images)
	rep.Specifications += len(specs)
	rep.ProductDocuments += len(docs)
	rep.ProductVideos += len(videos)
	rep.ProductAttributes += len(attrs)
	return nil
}

func seedArticles(ctx context.Context, store Store, seeds []ArticleSeed, categories, tags *Index, authorID uint, now time.Time, rep *Report) (*Index, error) {
	index := newIndex("article")

	for _, as := range seeds {
		categoryID, err := categories.Resolve(as.Category)
		if err != nil {
			return index, fmt.Errorf("article %s: %w", as.Slug, err)
		}
		tagIDs, err := tags.ResolveAll(as.Tags)
		if err != nil {
			return index, fmt.Errorf("article %s: %w", as.Slug, err)
		}

		article := models.Article{
			Title:            as.Title,
			Slug:             as.Slug,
			Content:          as.Content,
			Excerpt:          as.Excerpt,
			CategoryID:       categoryID,
			AuthorID:         authorID,
			FeaturedImageURL: as.FeaturedImageURL,
			IsPublished:      as.Published,
			PublishDate:      publishDate(as.Published, now),
		}
		if err := store.CreateArticle(ctx, &article); err != nil {
			return index, err
		}
		index.add(article.Slug, article.ID)
		rep.Articles++

		links := make([]models.TagsOnArticles, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, models.TagsOnArticles{ArticleID: article.ID, TagID: tagID})
		}
		if err := store.CreateArticleTags(ctx, links); err != nil {
			return index, err
		}
		rep.ArticleTags += len(links)
	}

	return index, nil
}

func seedCaseStudies(ctx context.Context, store Store, seeds []CaseStudySeed, tags *Index, authorID uint, now time.Time, rep *Report) (*Index, error) {
	index := newIndex("case study")

	for _, cs := range seeds {
		tagIDs, err := tags.ResolveAll(cs.Tags)
		if err != nil {
			return index, fmt.Errorf("case study %s: %w", cs.Slug, err)
		}

		caseStudy := models.CaseStudy{
			Title:            cs.Title,
			Slug:             cs.Slug,
			Content:          cs.Content,
			Excerpt:          cs.Excerpt,
			ClientName:       cs.ClientName,
			Industry:         cs.Industry,
			ChallengeDesc:    cs.Challenge,
			SolutionDesc:     cs.Solution,
			ResultDesc:       cs.Result,
			AuthorID:         authorID,
			FeaturedImageURL: cs.FeaturedImageURL,
			IsPublished:      cs.Published,
			PublishDate:      publishDate(cs.Published, now),
		}
		if err := store.CreateCaseStudy(ctx, &caseStudy); err != nil {
			return index, err
		}
		index.add(caseStudy.Slug, caseStudy.ID)
		rep.CaseStudies++

		links := make([]models.TagsOnCases, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			links = append(links, models.TagsOnCases{CaseID: caseStudy.ID, TagID: tagID})
		}
		if err := store.CreateCaseTags(ctx, links); err != nil {
			return index, err
		}
		rep.CaseTags += len(links)
	}

	return index, nil
}

// seedContentRelations links the first product to the first article and to
// the first case study, when those exist, then writes the product-to-product
// links declared in the dataset.
func seedContentRelations(ctx context.Context, store Store, productSeeds []ProductSeed, products, articles, cases *Index, rep *Report) error {
	if productID, ok := products.First(); ok {
		if articleID, ok := articles.First(); ok {
			rel := models.ProductArticleRelation{ProductID: productID, ArticleID: articleID}
			if err := store.CreateProductArticleRelation(ctx, &rel); err != nil {
				return err
			}
			rep.ProductArticleRelations++
		}
		if caseID, ok := cases.First(); ok {
			rel := models.ProductCaseRelation{ProductID: productID, CaseID: caseID}
			if err := store.CreateProductCaseRelation(ctx, &rel); err != nil {
				return err
			}
			rep.ProductCaseRelations++
		}
	}

	var rels []models.ProductRelation
	for _, ps := range productSeeds {
		if len(ps.Related) == 0 {
			continue
		}
		productID, err := products.Resolve(ps.Slug)
		if err != nil {
			return err
		}
		relatedIDs, err := products.ResolveAll(ps.Related)
		if err != nil {
			return fmt.Errorf("product %s related: %w", ps.Slug, err)
		}
		for _, relatedID := range relatedIDs {
			rels = append(rels, models.ProductRelation{ProductID: productID, RelatedProductID: relatedID})
		}
	}
	if err := store.CreateProductRelations(ctx, rels); err != nil {
		return err
	}
	rep.ProductRelations += len(rels)
	return nil
}

func seedSiteSettings(ctx context.Context, store Store, seeds []SettingSeed, rep *Report) error {
	settings := make([]models.SiteSetting, 0, len(seeds))
	for _, ss := range seeds {
		group := ss.Group
		if group == "" {
			group = "general"
		}
		settings = append(settings, models.SiteSetting{
			Key:         ss.Key,
			Value:       ss.Value,
			Group:       group,
			Description: ss.Description,
		})
	}
	if err := store.CreateSiteSettings(ctx, settings); err != nil {
		return err
	}
	rep.SiteSettings = len(settings)
	return nil
}

func publishDate(published bool, now time.Time) *time.Time {
	if !published {
		return nil
	}
	return &now
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
