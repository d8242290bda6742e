package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a server-side login session. The cookie carries only the
// opaque token; everything else lives in this row.
type Session struct {
	gorm.Model
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
