package models

import "gorm.io/gorm"

type CarouselImage struct {
	gorm.Model
	ImageURL     string `json:"imageUrl" gorm:"not null"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	DisplayOrder int    `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool   `json:"isActive" gorm:"default:true"`
	CreatedBy    uint   `json:"createdBy" gorm:"not null"`
	Creator      User   `json:"-" gorm:"foreignKey:CreatedBy"`
}
