package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/models"
	"github.com/rolemap/api-go/storage"
	"github.com/rolemap/api-go/utils"
	"gorm.io/gorm"
)

type CarouselController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewCarouselController(db *gorm.DB, store storage.Storage) *CarouselController {
	return &CarouselController{DB: db, Storage: store}
}

type CarouselInput struct {
	ImageURL     string `json:"imageUrl" form:"imageUrl"`
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	DisplayOrder int    `json:"displayOrder" form:"displayOrder"`
	IsActive     *bool  `json:"isActive" form:"isActive"`
}

// ListActiveImages is the public carousel query. Ties on display_order are
// broken by insertion order.
func (cc *CarouselController) ListActiveImages(c *gin.Context) {
	var images []models.CarouselImage
	result := cc.DB.Where("is_active = ?", true).
		Order("display_order asc, id asc").
		Find(&images)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching carousel images", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

// ListAllImages is the admin view, inactive images included.
func (cc *CarouselController) ListAllImages(c *gin.Context) {
	var images []models.CarouselImage
	if err := cc.DB.Order("display_order asc, id asc").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching carousel images", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}

func (cc *CarouselController) CreateImage(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var input CarouselInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	image := models.CarouselImage{
		ImageURL:     input.ImageURL,
		Title:        input.Title,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
		CreatedBy:    user.UserID,
	}

	if input.IsActive != nil {
		image.IsActive = *input.IsActive
	}

	if c.ContentType() == "multipart/form-data" {
		if header, err := c.FormFile("image"); err == nil {
			url, err := storage.SaveUpload(cc.Storage, user.UserID, "carousel", header, false)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
				return
			}
			image.ImageURL = url
		}
	}

	if image.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required", "success": false})
		return
	}

	if err := cc.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create carousel image", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "image": image})
}

func (cc *CarouselController) UpdateImage(c *gin.Context) {
	var image models.CarouselImage
	if err := cc.DB.First(&image, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carousel image not found", "success": false})
		return
	}

	var input CarouselInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if input.ImageURL != "" {
		image.ImageURL = input.ImageURL
	}
	image.Title = input.Title
	image.Description = input.Description
	image.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		image.IsActive = *input.IsActive
	}

	if err := cc.DB.Save(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update carousel image", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image": image})
}

func (cc *CarouselController) DeleteImage(c *gin.Context) {
	var image models.CarouselImage
	if err := cc.DB.First(&image, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Carousel image not found", "success": false})
		return
	}

	if err := cc.DB.Delete(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete carousel image", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carousel image deleted successfully"})
}
