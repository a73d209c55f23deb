package models

import "time"

// SiteSetting is one entry of the flat key/value site configuration.
type SiteSetting struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"column:key;size:191;uniqueIndex;not null"`
	Value       string `gorm:"type:text;not null"`
	Group       string `gorm:"column:group;size:100;not null;default:general"`
	Description string
	UpdatedAt   time.Time
}

func (s *SiteSetting) TableName() string {
	return "site_settings"
}
