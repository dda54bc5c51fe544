package models

import "time"

// User represents an account. Email is the login identifier.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	IsActive    bool      `json:"-" gorm:"default:true"`
	IsStaff     bool      `json:"-"`
	IsSuperuser bool      `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
