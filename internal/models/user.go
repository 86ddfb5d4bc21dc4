package models

import (
	"gorm.io/gorm"
)

// User represents a user account in the system
type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Title    string `json:"title" gorm:"not null"`
	Role     string `json:"role" gorm:"not null"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	IsAdmin  bool   `json:"isAdmin" gorm:"not null;default:false"`
	// No column default here: gorm skips zero-valued fields that carry a
	// default tag, which would turn an insert of false into true. Callers
	// set the flag explicitly.
	IsActive bool `json:"isActive" gorm:"not null"`
	gorm.Model
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
