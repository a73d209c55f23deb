package models

import "time"

// ProductCategory represents a node in the product category tree.
// Root categories have no parent; a child references its parent by ID.
type ProductCategory struct {
	ID          uint             `gorm:"primaryKey"`
	Name        string           `gorm:"not null"`
	Slug        string           `gorm:"size:191;uniqueIndex;not null"`
	Description string           `gorm:"type:text"`
	ImageURL    *string          `gorm:"column:image_url"`
	ParentID    *uint            `gorm:"index"`
	Parent      *ProductCategory `gorm:"foreignKey:ParentID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *ProductCategory) TableName() string {
	return "product_categories"
}

// ArticleCategory is a flat grouping for articles.
type ArticleCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"size:191;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *ArticleCategory) TableName() string {
	return "article_categories"
}
