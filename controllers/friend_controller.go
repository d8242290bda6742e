package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/models"
	"github.com/rolemap/api-go/utils"
	"gorm.io/gorm"
)

type FriendController struct {
	DB *gorm.DB
}

func NewFriendController(db *gorm.DB) *FriendController {
	return &FriendController{DB: db}
}

func (fc *FriendController) AddFriend(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var input struct {
		FriendID uint `json:"friendId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if input.FriendID == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot add yourself as a friend", "success": false})
		return
	}

	var friend models.User
	if err := fc.DB.First(&friend, input.FriendID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var existing models.Friendship
	if err := fc.DB.Where("user_id = ? AND friend_id = ?", user.UserID, input.FriendID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already following this user", "success": false})
		return
	}

	friendship := models.Friendship{UserID: user.UserID, FriendID: input.FriendID}
	if err := fc.DB.Create(&friendship).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add friend", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Friend added successfully",
		"friend":  userPayload(&friend),
	})
}

func (fc *FriendController) RemoveFriend(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	result := fc.DB.Where("user_id = ? AND friend_id = ?", user.UserID, c.Param("id")).Delete(&models.Friendship{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove friend", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friendship not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Friend removed successfully"})
}

func (fc *FriendController) ListFriends(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var friends []struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
		Avatar   string `json:"avatar"`
	}

	result := fc.DB.Model(&models.Friendship{}).
		Select("users.id, users.username, users.name, users.avatar").
		Joins("JOIN users ON users.id = friendships.friend_id").
		Where("friendships.user_id = ?", user.UserID).
		Order("users.username asc").
		Find(&friends)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching friends", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "friends": friends})
}

// ListFriendPlaces returns a followee's places flagged as recommendations.
func (fc *FriendController) ListFriendPlaces(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var friendship models.Friendship
	if err := fc.DB.Where("user_id = ? AND friend_id = ?", user.UserID, c.Param("id")).First(&friendship).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friendship not found", "success": false})
		return
	}

	var places []models.Place
	result := fc.DB.Preload("PlaceType").
		Where("created_by = ? AND recommend_to_friends = ?", friendship.FriendID, true).
		Order("created_at DESC").
		Find(&places)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching places", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "places": places})
}

// ClonePlace copies a followee's recommended place into the caller's catalog.
// The copy starts unvisited and unrated and records where it came from.
func (fc *FriendController) ClonePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var source models.Place
	if err := fc.DB.First(&source, c.Param("placeId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found", "success": false})
		return
	}

	if source.CreatedBy == user.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot clone your own place", "success": false})
		return
	}

	var friendship models.Friendship
	if err := fc.DB.Where("user_id = ? AND friend_id = ?", user.UserID, source.CreatedBy).First(&friendship).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Place owner is not a friend", "success": false})
		return
	}

	if !source.RecommendToFriends {
		c.JSON(http.StatusForbidden, gin.H{"error": "Place is not shared as a recommendation", "success": false})
		return
	}

	var existing models.Place
	if err := fc.DB.Where("created_by = ? AND cloned_from_user_id = ? AND name = ?",
		user.UserID, source.CreatedBy, source.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Place already cloned", "success": false})
		return
	}

	sourceOwner := source.CreatedBy
	clone := models.Place{
		Name:             source.Name,
		PlaceTypeID:      source.PlaceTypeID,
		StateID:          source.StateID,
		StateName:        source.StateName,
		CityID:           source.CityID,
		CityName:         source.CityName,
		Address:          source.Address,
		Description:      source.Description,
		Instagram:        source.Instagram,
		HasRodizio:       source.HasRodizio,
		PetFriendly:      source.PetFriendly,
		ImageURL:         source.ImageURL,
		Tags:             source.Tags,
		CreatedBy:        user.UserID,
		IsClone:          true,
		ClonedFromUserID: &sourceOwner,
		// Visited state and rating never carry over to a clone.
		IsVisited: false,
		Rating:    nil,
	}

	if err := fc.DB.Create(&clone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clone place", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "place": clone})
}
