package models

import "time"

// Article is a rich-text post filed under an ArticleCategory.
type Article struct {
	ID               uint             `gorm:"primaryKey"`
	Title            string           `gorm:"not null"`
	Slug             string           `gorm:"size:191;uniqueIndex;not null"`
	Content          string           `gorm:"type:text"`
	Excerpt          string           `gorm:"type:text"`
	CategoryID       uint             `gorm:"not null;index"`
	Category         *ArticleCategory `gorm:"foreignKey:CategoryID"`
	AuthorID         uint             `gorm:"not null;index"`
	Author           *User            `gorm:"foreignKey:AuthorID"`
	FeaturedImageURL string           `gorm:"column:featured_image_url"`
	IsPublished      bool             `gorm:"not null;default:false"`
	PublishDate      *time.Time
	Tags             []TagsOnArticles `gorm:"foreignKey:ArticleID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (a *Article) TableName() string {
	return "articles"
}

// CaseStudy describes a customer deployment. It has no category; it is
// reachable through tags and product relations only.
type CaseStudy struct {
	ID               uint   `gorm:"primaryKey"`
	Title            string `gorm:"not null"`
	Slug             string `gorm:"size:191;uniqueIndex;not null"`
	Content          string `gorm:"type:text"`
	Excerpt          string `gorm:"type:text"`
	ClientName       string
	Industry         string
	ChallengeDesc    string `gorm:"type:text"`
	SolutionDesc     string `gorm:"type:text"`
	ResultDesc       string `gorm:"type:text"`
	AuthorID         uint   `gorm:"not null;index"`
	Author           *User  `gorm:"foreignKey:AuthorID"`
	FeaturedImageURL string `gorm:"column:featured_image_url"`
	IsPublished      bool   `gorm:"not null;default:false"`
	PublishDate      *time.Time
	Tags             []TagsOnCases `gorm:"foreignKey:CaseID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *CaseStudy) TableName() string {
	return "case_studies"
}
