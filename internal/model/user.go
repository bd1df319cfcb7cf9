package model

import (
	"time"
)

type UserRole string

const (
	Caregiver UserRole = "caregiver"
	Admin     UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	FullName  string     `gorm:"size:100;not null" json:"fullName"`
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	Role      UserRole   `gorm:"size:20;default:'caregiver'" json:"role"`
	Avatar    string     `gorm:"size:255" json:"avatar"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func (User) TableName() string {
	return "users"
}
