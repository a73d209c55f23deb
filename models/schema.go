package models

// All returns every model in dependency order: a model only references
// models listed before it.
func All() []any {
	return []any{
		&User{},
		&ProductCategory{},
		&ArticleCategory{},
		&Tag{},
		&Product{},
		&ProductImage{},
		&Specification{},
		&ProductDocument{},
		&ProductVideo{},
		&ProductAttribute{},
		&Article{},
		&CaseStudy{},
		&Inquiry{},
		&TagsOnProducts{},
		&TagsOnArticles{},
		&TagsOnCases{},
		&ProductArticleRelation{},
		&ProductCaseRelation{},
		&ProductRelation{},
		&SiteSetting{},
		&AdminActivity{},
	}
}

// ClearOrder lists models in the order they must be emptied: join tables,
// then detail rows, then content, then categories and tags, then users.
func ClearOrder() []any {
	return []any{
		&AdminActivity{},
		&SiteSetting{},
		&TagsOnCases{},
		&TagsOnArticles{},
		&TagsOnProducts{},
		&ProductCaseRelation{},
		&ProductArticleRelation{},
		&ProductRelation{},
		&Specification{},
		&ProductAttribute{},
		&ProductDocument{},
		&ProductVideo{},
		&ProductImage{},
		&Inquiry{},
		&CaseStudy{},
		&Article{},
		&Product{},
		&Tag{},
		&ArticleCategory{},
		&ProductCategory{},
		&User{},
	}
}

type tabler interface {
	TableName() string
}

// TableOf returns the table name of a model value from All.
func TableOf(model any) string {
	if t, ok := model.(tabler); ok {
		return t.TableName()
	}
	return ""
}
