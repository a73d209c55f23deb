package seeder

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Dataset is the complete set of records one run inserts. Cross references
// between records are slugs, resolved against the IDs created earlier in
// the same run.
type Dataset struct {
	ProductCategories []CategorySeed        `yaml:"product_categories"`
	ArticleCategories []ArticleCategorySeed `yaml:"article_categories"`
	Tags              []TagSeed             `yaml:"tags"`
	Products          []ProductSeed         `yaml:"products"`
	Articles          []ArticleSeed         `yaml:"articles"`
	CaseStudies       []CaseStudySeed       `yaml:"case_studies"`
	SiteSettings      []SettingSeed         `yaml:"site_settings"`
}

type CategorySeed struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	Parent      string `yaml:"parent"` // slug of the parent; empty for a root
}

type ArticleCategorySeed struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type TagSeed struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type ProductSeed struct {
	Name             string          `yaml:"name"`
	Slug             string          `yaml:"slug"`
	Description      string          `yaml:"description"`
	Category         string          `yaml:"category"`
	Price            decimal.Decimal `yaml:"price"`
	SKU              string          `yaml:"sku"`
	StockQuantity    int             `yaml:"stock_quantity"`
	Published        bool            `yaml:"published"`
	FeaturedImageURL string          `yaml:"featured_image_url"`
	Images           []ImageSeed     `yaml:"images"`
	Specifications   []SpecSeed      `yaml:"specifications"`
	Documents        []DocumentSeed  `yaml:"documents"`
	Videos           []VideoSeed     `yaml:"videos"`
	Attributes       []AttributeSeed `yaml:"attributes"`
	Tags             []string        `yaml:"tags"`
	Related          []string        `yaml:"related"`
}

// Display orders left at zero are numbered by position, starting at 1.

type ImageSeed struct {
	URL          string `yaml:"url"`
	AltText      string `yaml:"alt_text"`
	DisplayOrder int    `yaml:"display_order"`
}

type SpecSeed struct {
	Group        string `yaml:"group"`
	Name         string `yaml:"name"`
	Value        string `yaml:"value"`
	Unit         string `yaml:"unit"`
	DisplayOrder int    `yaml:"display_order"`
}

type DocumentSeed struct {
	URL      string `yaml:"url"`
	Title    string `yaml:"title"`
	FileType string `yaml:"file_type"`
	FileSize int    `yaml:"file_size"`
}

type VideoSeed struct {
	URL          string `yaml:"url"`
	Title        string `yaml:"title"`
	DisplayOrder int    `yaml:"display_order"`
}

type AttributeSeed struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type ArticleSeed struct {
	Title            string   `yaml:"title"`
	Slug             string   `yaml:"slug"`
	Content          string   `yaml:"content"`
	Excerpt          string   `yaml:"excerpt"`
	Category         string   `yaml:"category"`
	FeaturedImageURL string   `yaml:"featured_image_url"`
	Published        bool     `yaml:"published"`
	Tags             []string `yaml:"tags"`
}

type CaseStudySeed struct {
	Title            string   `yaml:"title"`
	Slug             string   `yaml:"slug"`
	Content          string   `yaml:"content"`
	Excerpt          string   `yaml:"excerpt"`
	ClientName       string   `yaml:"client_name"`
	Industry         string   `yaml:"industry"`
	Challenge        string   `yaml:"challenge"`
	Solution         string   `yaml:"solution"`
	Result           string   `yaml:"result"`
	FeaturedImageURL string   `yaml:"featured_image_url"`
	Published        bool     `yaml:"published"`
	Tags             []string `yaml:"tags"`
}

type SettingSeed struct {
	Key         string `yaml:"key"`
	Value       string `yaml:"value"`
	Group       string `yaml:"group"`
	Description string `yaml:"description"`
}

// DefaultDataset returns the built-in demo catalog.
func DefaultDataset() (*Dataset, error) {
	return ParseDataset(defaultCatalog)
}

// LoadDataset reads a dataset from a YAML file, or returns the built-in
// catalog when path is empty.
func LoadDataset(path string) (*Dataset, error) {
	if path == "" {
		return DefaultDataset()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := ParseDataset(raw)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// ParseDataset decodes YAML seed data, numbers unset display orders and
// validates the result. Unknown keys are rejected.
func ParseDataset(raw []byte) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	ds.numberDisplayOrders()
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) numberDisplayOrders() {
	for i := range ds.Products {
		p := &ds.Products[i]
		for j := range p.Images {
			if p.Images[j].DisplayOrder == 0 {
				p.Images[j].DisplayOrder = j + 1
			}
		}
		for j := range p.Specifications {
			if p.Specifications[j].DisplayOrder == 0 {
				p.Specifications[j].DisplayOrder = j + 1
			}
		}
		for j := range p.Videos {
			if p.Videos[j].DisplayOrder == 0 {
				p.Videos[j].DisplayOrder = j + 1
			}
		}
	}
}

// Validate checks everything that can be checked without a store: required
// fields, slug and key uniqueness within each kind, and display order
// uniqueness. Slug references are checked while seeding.
func (ds *Dataset) Validate() error {
	if err := uniqueSlugs("product category", len(ds.ProductCategories), func(i int) string { return ds.ProductCategories[i].Slug }); err != nil {
		return err
	}
	for _, c := range ds.ProductCategories {
		if c.Name == "" {
			return invalidf("product category %q has no name", c.Slug)
		}
		if c.Parent == c.Slug {
			return invalidf("product category %q is its own parent", c.Slug)
		}
	}

	if err := uniqueSlugs("article category", len(ds.ArticleCategories), func(i int) string { return ds.ArticleCategories[i].Slug }); err != nil {
		return err
	}
	if err := uniqueSlugs("tag", len(ds.Tags), func(i int) string { return ds.Tags[i].Slug }); err != nil {
		return err
	}

	if err := uniqueSlugs("product", len(ds.Products), func(i int) string { return ds.Products[i].Slug }); err != nil {
		return err
	}
	for _, p := range ds.Products {
		if err := p.validate(); err != nil {
			return err
		}
	}

	if err := uniqueSlugs("article", len(ds.Articles), func(i int) string { return ds.Articles[i].Slug }); err != nil {
		return err
	}
	for _, a := range ds.Articles {
		if a.Category == "" {
			return invalidf("article %q has no category", a.Slug)
		}
		if err := uniqueStrings("article "+a.Slug+" tag", a.Tags); err != nil {
			return err
		}
	}

	if err := uniqueSlugs("case study", len(ds.CaseStudies), func(i int) string { return ds.CaseStudies[i].Slug }); err != nil {
		return err
	}
	for _, c := range ds.CaseStudies {
		if err := uniqueStrings("case study "+c.Slug+" tag", c.Tags); err != nil {
			return err
		}
	}

	if err := uniqueSlugs("site setting key", len(ds.SiteSettings), func(i int) string { return ds.SiteSettings[i].Key }); err != nil {
		return err
	}

	return nil
}

func (p ProductSeed) validate() error {
	if p.Name == "" {
		return invalidf("product %q has no name", p.Slug)
	}
	if p.Category == "" {
		return invalidf("product %q has no category", p.Slug)
	}
	if p.Price.IsNegative() {
		return invalidf("product %q has negative price %s", p.Slug, p.Price)
	}

	imageOrders := make(map[int]bool, len(p.Images))
	for _, img := range p.Images {
		if imageOrders[img.DisplayOrder] {
			return invalidf("product %q has two images at display order %d", p.Slug, img.DisplayOrder)
		}
		imageOrders[img.DisplayOrder] = true
	}

	type groupOrder struct {
		group string
		order int
	}
	specOrders := make(map[groupOrder]bool, len(p.Specifications))
	for _, spec := range p.Specifications {
		key := groupOrder{spec.Group, spec.DisplayOrder}
		if specOrders[key] {
			return invalidf("product %q has two %q specifications at display order %d", p.Slug, spec.Group, spec.DisplayOrder)
		}
		specOrders[key] = true
	}

	videoOrders := make(map[int]bool, len(p.Videos))
	for _, v := range p.Videos {
		if videoOrders[v.DisplayOrder] {
			return invalidf("product %q has two videos at display order %d", p.Slug, v.DisplayOrder)
		}
		videoOrders[v.DisplayOrder] = true
	}

	if err := uniqueStrings("product "+p.Slug+" tag", p.Tags); err != nil {
		return err
	}
	if err := uniqueStrings("product "+p.Slug+" related product", p.Related); err != nil {
		return err
	}
	for _, r := range p.Related {
		if r == p.Slug {
			return invalidf("product %q is related to itself", p.Slug)
		}
	}
	return nil
}

func uniqueSlugs(kind string, n int, slugAt func(i int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		slug := slugAt(i)
		if slug == "" {
			return invalidf("%s #%d has an empty slug", kind, i+1)
		}
		if seen[slug] {
			return invalidf("duplicate %s %q", kind, slug)
		}
		seen[slug] = true
	}
	return nil
}

func uniqueStrings(kind string, values []string) error {
	return uniqueSlugs(kind, len(values), func(i int) string { return values[i] })
}
