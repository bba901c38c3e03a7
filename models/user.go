package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the sole authorization signal.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;size:191" json:"email"`
	Name  string `gorm:"size:255;default:'User'" json:"name"`
	Phone string `gorm:"size:32" json:"phone"`

	// Empty for accounts provisioned through Google sign-in.
	Password string `gorm:"size:255" json:"-"`

	Role string `gorm:"size:16;default:'user'" json:"role"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
