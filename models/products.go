package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// It belongs to exactly one category and owns its images, specifications,
// documents, videos and attributes.
type Product struct {
	ID               uint             `gorm:"primaryKey"`
	Name             string           `gorm:"not null"`
	Slug             string           `gorm:"size:191;uniqueIndex;not null"`
	Description      string           `gorm:"type:text"`
	CategoryID       uint             `gorm:"not null;index"`
	Category         *ProductCategory `gorm:"foreignKey:CategoryID"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	SKU              string           `gorm:"column:sku;size:64"`
	StockQuantity    int              `gorm:"not null;default:0"`
	IsPublished      bool             `gorm:"not null;default:false"`
	PublishDate      *time.Time
	FeaturedImageURL string `gorm:"column:featured_image_url"`

	Images         []ProductImage     `gorm:"foreignKey:ProductID"`
	Specifications []Specification    `gorm:"foreignKey:ProductID"`
	Documents      []ProductDocument  `gorm:"foreignKey:ProductID"`
	Videos         []ProductVideo     `gorm:"foreignKey:ProductID"`
	Attributes     []ProductAttribute `gorm:"foreignKey:ProductID"`
	Tags           []TagsOnProducts   `gorm:"foreignKey:ProductID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// ProductImage is rendered in ascending DisplayOrder.
type ProductImage struct {
	ID           uint     `gorm:"primaryKey"`
	ProductID    uint     `gorm:"not null;index"`
	Product      *Product `gorm:"foreignKey:ProductID"`
	ImageURL     string   `gorm:"column:image_url;not null"`
	AltText      string
	DisplayOrder int `gorm:"not null;default:0"`
}

func (i *ProductImage) TableName() string {
	return "product_images"
}

// Specification is a single technical value, grouped for display
// ("Physical", "Performance", ...) and ordered by DisplayOrder.
type Specification struct {
	ID           uint     `gorm:"primaryKey"`
	ProductID    uint     `gorm:"not null;index"`
	Product      *Product `gorm:"foreignKey:ProductID"`
	Group        string   `gorm:"column:group;size:100;not null"`
	Name         string   `gorm:"not null"`
	Value        string   `gorm:"not null"`
	Unit         *string
	DisplayOrder int `gorm:"not null;default:0"`
}

func (s *Specification) TableName() string {
	return "specifications"
}

// ProductDocument is a downloadable file. FileSize is in kilobytes.
type ProductDocument struct {
	ID          uint     `gorm:"primaryKey"`
	ProductID   uint     `gorm:"not null;index"`
	Product     *Product `gorm:"foreignKey:ProductID"`
	DocumentURL string   `gorm:"column:document_url;not null"`
	Title       string   `gorm:"not null"`
	FileType    string   `gorm:"size:32"`
	FileSize    int
}

func (d *ProductDocument) TableName() string {
	return "product_documents"
}

type ProductVideo struct {
	ID           uint     `gorm:"primaryKey"`
	ProductID    uint     `gorm:"not null;index"`
	Product      *Product `gorm:"foreignKey:ProductID"`
	VideoURL     string   `gorm:"column:video_url;not null"`
	Title        string
	DisplayOrder int `gorm:"not null;default:0"`
}

func (v *ProductVideo) TableName() string {
	return "product_videos"
}

type ProductAttribute struct {
	ID        uint     `gorm:"primaryKey"`
	ProductID uint     `gorm:"not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Name      string   `gorm:"not null"`
	Value     string   `gorm:"not null"`
}

func (a *ProductAttribute) TableName() string {
	return "product_attributes"
}
