package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/models"
	"gorm.io/gorm"
)

type PlaceTypeController struct {
	DB *gorm.DB
}

func NewPlaceTypeController(db *gorm.DB) *PlaceTypeController {
	return &PlaceTypeController{DB: db}
}

func (tc *PlaceTypeController) ListPlaceTypes(c *gin.Context) {
	var placeTypes []models.PlaceType
	if err := tc.DB.Order("name asc").Find(&placeTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching place types", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "placeTypes": placeTypes})
}

func (tc *PlaceTypeController) CreatePlaceType(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,min=2,max=50"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	placeType := models.PlaceType{Name: input.Name}
	if err := tc.DB.Create(&placeType).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Place type already exists", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "placeType": placeType})
}

func (tc *PlaceTypeController) UpdatePlaceType(c *gin.Context) {
	var placeType models.PlaceType
	if err := tc.DB.First(&placeType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place type not found", "success": false})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required,min=2,max=50"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	placeType.Name = input.Name
	if err := tc.DB.Save(&placeType).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Place type already exists", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "placeType": placeType})
}

// DeletePlaceType refuses to delete a type that places still reference.
func (tc *PlaceTypeController) DeletePlaceType(c *gin.Context) {
	var placeType models.PlaceType
	if err := tc.DB.First(&placeType, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place type not found", "success": false})
		return
	}

	var count int64
	tc.DB.Model(&models.Place{}).Where("place_type_id = ?", placeType.ID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Place type is in use", "success": false})
		return
	}

	if err := tc.DB.Delete(&placeType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place type", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Place type deleted successfully"})
}
