package models

import "gorm.io/gorm"

// Friendship is a directed edge: UserID follows FriendID. The UI says
// "friends" but there is no symmetry guarantee.
type Friendship struct {
	gorm.Model
	UserID   uint `json:"userId" gorm:"not null;uniqueIndex:idx_friendship_edge"`
	FriendID uint `json:"friendId" gorm:"not null;uniqueIndex:idx_friendship_edge"`

	User   User `json:"-" gorm:"foreignKey:UserID"`
	Friend User `json:"friend" gorm:"foreignKey:FriendID"`
}
