package models

import "gorm.io/gorm"

type PlaceType struct {
	gorm.Model
	Name   string  `json:"name" gorm:"unique;not null"`
	Places []Place `json:"-" gorm:"foreignKey:PlaceTypeID"`
}
