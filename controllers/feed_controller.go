package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/models"
	"github.com/rolemap/api-go/utils"
	"gorm.io/gorm"
)

type FeedController struct {
	DB *gorm.DB
}

type FeedQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=20" binding:"min=1,max=50"`
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// FeedEntry is an activity joined with its actor and, when the place still
// exists, the place details.
type FeedEntry struct {
	ID         uint      `json:"id"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     uint      `json:"userId"`
	Username   string    `json:"username"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	PlaceID    *uint     `json:"placeId"`
	PlaceName  *string   `json:"placeName"`
	OldRating  *float64  `json:"oldRating"`
	NewRating  *float64  `json:"newRating"`
}

// GetFeed returns followees' activities, newest first.
func (fc *FeedController) GetFeed(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	db := fc.DB.Model(&models.Activity{}).
		Joins("JOIN friendships ON friendships.friend_id = activities.user_id AND friendships.deleted_at IS NULL").
		Joins("JOIN users ON users.id = activities.user_id").
		Joins("LEFT JOIN places ON places.id = activities.place_id AND places.deleted_at IS NULL").
		Where("friendships.user_id = ?", user.UserID)

	var total int64
	db.Count(&total)

	offset := (query.Page - 1) * query.PageSize

	var entries []FeedEntry
	result := db.
		Select(`activities.id,
			activities.type,
			activities.created_at,
			activities.user_id,
			users.username,
			users.name as user_name,
			users.avatar as user_avatar,
			activities.place_id,
			places.name as place_name,
			activities.old_rating,
			activities.new_rating`).
		Order("activities.created_at DESC").
		Offset(offset).
		Limit(query.PageSize).
		Find(&entries)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching feed", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"activities": entries,
		"pagination": gin.H{
			"currentPage": query.Page,
			"pageSize":    query.PageSize,
			"totalItems":  total,
			"totalPages":  math.Ceil(float64(total) / float64(query.PageSize)),
		},
	})
}
