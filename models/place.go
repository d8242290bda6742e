package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Place struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Name        string         `json:"name" gorm:"not null"`
	PlaceTypeID uint           `json:"typeId" gorm:"not null;index"`
	PlaceType   PlaceType      `json:"type" gorm:"foreignKey:PlaceTypeID"`

	// Location is kept denormalized: numeric id plus display name for both
	// state and city, as picked from the location autocomplete.
	StateID   int    `json:"stateId"`
	StateName string `json:"stateName"`
	CityID    int    `json:"cityId"`
	CityName  string `json:"cityName"`

	Address     string `json:"address"`
	Description string `json:"description" gorm:"type:text"`
	Instagram   string `json:"instagram"`

	// Rating is nil until the owner rates the place. When set it must be a
	// multiple of 0.5 in [0,5].
	Rating *float64 `json:"rating" gorm:"type:decimal(2,1)"`

	HasRodizio         bool `json:"hasRodizio" gorm:"default:false"`
	PetFriendly        bool `json:"petFriendly" gorm:"default:false"`
	RecommendToFriends bool `json:"recommendToFriends" gorm:"default:false"`
	IsVisited          bool `json:"isVisited" gorm:"default:false"`
	IsClone            bool `json:"isClone" gorm:"default:false"`

	ImageURL     string         `json:"imageUrl"`
	ItineraryURL string         `json:"itineraryUrl"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Owner     User  `json:"-" gorm:"foreignKey:CreatedBy"`
	// Set on clones: the user whose recommendation this place was copied from.
	ClonedFromUserID *uint `json:"clonedFromUserId"`
}
