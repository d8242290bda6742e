package models

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken backs the "forgot my password" flow. The emailed link
// carries the signed Token, manual entry uses the 6-digit Code. A row is
// consumed exactly once (IsUsed false->true) and rejected after ExpiresAt.
type PasswordResetToken struct {
	gorm.Model
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Token     string    `json:"-" gorm:"type:varchar(512);not null"`
	Code      string    `json:"-" gorm:"type:varchar(6);not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	IsUsed    bool      `json:"isUsed" gorm:"default:false"`
}

func (t *PasswordResetToken) Usable() bool {
	return !t.IsUsed && time.Now().Before(t.ExpiresAt)
}
