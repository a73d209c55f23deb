package models

import "time"

// AdminActivity is the admin panel audit trail. Seeding never writes it but
// clearing must empty it before users can be deleted.
type AdminActivity struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	User       *User  `gorm:"foreignKey:UserID"`
	Action     string `gorm:"size:64;not null"`
	EntityType string `gorm:"size:64"`
	EntityID   *uint
	Details    string `gorm:"type:text"`
	CreatedAt  time.Time
}

func (a *AdminActivity) TableName() string {
	return "admin_activities"
}

// Inquiry is a contact form submission, optionally about a product.
type Inquiry struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Company   string
	Phone     string
	Message   string   `gorm:"type:text;not null"`
	ProductID *uint    `gorm:"index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Status    string   `gorm:"size:32;not null;default:NEW"`
	CreatedAt time.Time
}

func (i *Inquiry) TableName() string {
	return "inquiries"
}
