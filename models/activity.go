package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ActivityNewRecommendation = "new-recommendation"
	ActivityNewRating         = "new-rating"
	ActivityRatingChanged     = "rating-changed"
)

type Activity struct {
	gorm.Model
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Type      string    `json:"type" gorm:"not null;type:varchar(50)"`
	// Nullable on purpose: the place may be deleted after the activity
	// was recorded and the feed still shows the entry.
	PlaceID   *uint    `json:"placeId"`
	Place     *Place   `json:"place,omitempty" gorm:"foreignKey:PlaceID"`
	OldRating *float64 `json:"oldRating" gorm:"type:decimal(2,1)"`
	NewRating *float64 `json:"newRating" gorm:"type:decimal(2,1)"`
}
