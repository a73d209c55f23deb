package models

import "time"

// Tag is a flat label shared by products, articles and case studies.
type Tag struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Slug      string `gorm:"size:191;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (t *Tag) TableName() string {
	return "tags"
}
