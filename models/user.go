package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Name      string         `json:"name"`
	Password  *string        `json:"-"` // scrypt hash, nil for OAuth-only accounts
	IsAdmin   bool           `gorm:"default:false" json:"isAdmin"`
	Avatar    string         `json:"avatar"`
	GoogleID  *string        `gorm:"uniqueIndex" json:"-"`
	Provider  string         `gorm:"default:'email'" json:"-"`

	Places      []Place      `json:"places,omitempty" gorm:"foreignKey:CreatedBy"`
	Friendships []Friendship `json:"friendships,omitempty" gorm:"foreignKey:UserID"`
	Sessions    []Session    `json:"-" gorm:"foreignKey:UserID"`
}
