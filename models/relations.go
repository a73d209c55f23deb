package models

// Join rows use the pair of foreign keys as a composite primary key, so a
// pair can be linked at most once.

type TagsOnProducts struct {
	ProductID uint     `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint     `gorm:"primaryKey;autoIncrement:false"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Tag       *Tag     `gorm:"foreignKey:TagID"`
}

func (t *TagsOnProducts) TableName() string {
	return "tags_on_products"
}

type TagsOnArticles struct {
	ArticleID uint     `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint     `gorm:"primaryKey;autoIncrement:false"`
	Article   *Article `gorm:"foreignKey:ArticleID"`
	Tag       *Tag     `gorm:"foreignKey:TagID"`
}

func (t *TagsOnArticles) TableName() string {
	return "tags_on_articles"
}

type TagsOnCases struct {
	CaseID uint       `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint       `gorm:"primaryKey;autoIncrement:false"`
	Case   *CaseStudy `gorm:"foreignKey:CaseID"`
	Tag    *Tag       `gorm:"foreignKey:TagID"`
}

func (t *TagsOnCases) TableName() string {
	return "tags_on_cases"
}

type ProductArticleRelation struct {
	ID        uint     `gorm:"primaryKey"`
	ProductID uint     `gorm:"not null;uniqueIndex:idx_product_article"`
	ArticleID uint     `gorm:"not null;uniqueIndex:idx_product_article"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Article   *Article `gorm:"foreignKey:ArticleID"`
}

func (r *ProductArticleRelation) TableName() string {
	return "product_article_relations"
}

type ProductCaseRelation struct {
	ID        uint       `gorm:"primaryKey"`
	ProductID uint       `gorm:"not null;uniqueIndex:idx_product_case"`
	CaseID    uint       `gorm:"not null;uniqueIndex:idx_product_case"`
	Product   *Product   `gorm:"foreignKey:ProductID"`
	Case      *CaseStudy `gorm:"foreignKey:CaseID"`
}

func (r *ProductCaseRelation) TableName() string {
	return "product_case_relations"
}

// ProductRelation links a product to another product shown as related.
type ProductRelation struct {
	ID               uint     `gorm:"primaryKey"`
	ProductID        uint     `gorm:"not null;uniqueIndex:idx_product_related"`
	RelatedProductID uint     `gorm:"not null;uniqueIndex:idx_product_related"`
	Product          *Product `gorm:"foreignKey:ProductID"`
	RelatedProduct   *Product `gorm:"foreignKey:RelatedProductID"`
}

func (r *ProductRelation) TableName() string {
	return "product_relations"
}
