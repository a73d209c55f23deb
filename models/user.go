package models

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
)

// User is an admin panel account. Password always holds a one-way hash.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:191;uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Password  string `gorm:"not null"`
	Role      Role   `gorm:"size:32;not null;default:EDITOR"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) TableName() string {
	return "users"
}
