package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rolemap/api-go/models"
	"github.com/rolemap/api-go/storage"
	"github.com/rolemap/api-go/utils"
	"gorm.io/gorm"
)

type PlaceController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewPlaceController(db *gorm.DB, store storage.Storage) *PlaceController {
	return &PlaceController{DB: db, Storage: store}
}

type PlaceInput struct {
	Name               string   `json:"name" form:"name" binding:"required,min=2,max=120"`
	TypeID             uint     `json:"typeId" form:"typeId" binding:"required"`
	StateID            int      `json:"stateId" form:"stateId"`
	StateName          string   `json:"stateName" form:"stateName"`
	CityID             int      `json:"cityId" form:"cityId"`
	CityName           string   `json:"cityName" form:"cityName"`
	Address            string   `json:"address" form:"address"`
	Description        string   `json:"description" form:"description"`
	Instagram          string   `json:"instagram" form:"instagram"`
	Rating             *float64 `json:"rating" form:"rating" binding:"omitempty,halfstep"`
	HasRodizio         bool     `json:"hasRodizio" form:"hasRodizio"`
	PetFriendly        bool     `json:"petFriendly" form:"petFriendly"`
	RecommendToFriends bool     `json:"recommendToFriends" form:"recommendToFriends"`
	IsVisited          bool     `json:"isVisited" form:"isVisited"`
	Tags               []string `json:"tags" form:"tags"`
}

type PlaceFilterQuery struct {
	Types     string   `form:"types"`
	State     int      `form:"state"`
	City      int      `form:"city"`
	Rodizio   *bool    `form:"rodizio"`
	Visited   *bool    `form:"visited"`
	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
	Search    string   `form:"search"`
	UserID    uint     `form:"userId"`
}

// ListPlaces is the public catalog listing with optional filters.
func (pc *PlaceController) ListPlaces(c *gin.Context) {
	var query PlaceFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	db := pc.DB.Model(&models.Place{}).Preload("PlaceType")

	if query.Types != "" {
		var typeIDs []uint
		for _, raw := range strings.Split(query.Types, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type filter", "success": false})
				return
			}
			typeIDs = append(typeIDs, uint(id))
		}
		db = db.Where("place_type_id IN ?", typeIDs)
	}

	if query.State != 0 {
		db = db.Where("state_id = ?", query.State)
	}
	if query.City != 0 {
		db = db.Where("city_id = ?", query.City)
	}
	if query.Rodizio != nil {
		db = db.Where("has_rodizio = ?", *query.Rodizio)
	}
	if query.Visited != nil {
		db = db.Where("is_visited = ?", *query.Visited)
	}
	if query.MinRating != nil {
		db = db.Where("rating >= ?", *query.MinRating)
	}
	if query.Search != "" {
		db = db.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.UserID != 0 {
		db = db.Where("created_by = ?", query.UserID)
	}

	var places []models.Place
	if err := db.Order("created_at DESC").Find(&places).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching places", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "places": places})
}

func (pc *PlaceController) GetPlace(c *gin.Context) {
	var place models.Place
	if err := pc.DB.Preload("PlaceType").First(&place, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "place": place})
}

func (pc *PlaceController) CreatePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var input PlaceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var placeType models.PlaceType
	if err := pc.DB.First(&placeType, input.TypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown place type", "success": false})
		return
	}

	place := models.Place{
		Name:               input.Name,
		PlaceTypeID:        input.TypeID,
		StateID:            input.StateID,
		StateName:          input.StateName,
		CityID:             input.CityID,
		CityName:           input.CityName,
		Address:            input.Address,
		Description:        input.Description,
		Instagram:          input.Instagram,
		Rating:             input.Rating,
		HasRodizio:         input.HasRodizio,
		PetFriendly:        input.PetFriendly,
		RecommendToFriends: input.RecommendToFriends,
		IsVisited:          input.IsVisited,
		Tags:               pq.StringArray(input.Tags),
		CreatedBy:          user.UserID,
	}

	if !pc.attachUploads(c, user.UserID, &place) {
		return
	}

	// Place insert and its activity rows commit together.
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&place).Error; err != nil {
			return err
		}
		return writePlaceActivities(tx, nil, &place)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "place": place})
}

func (pc *PlaceController) UpdatePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var place models.Place
	if err := pc.DB.First(&place, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found", "success": false})
		return
	}

	if place.CreatedBy != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this place", "success": false})
		return
	}

	var input PlaceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var placeType models.PlaceType
	if err := pc.DB.First(&placeType, input.TypeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown place type", "success": false})
		return
	}

	before := place

	place.Name = input.Name
	place.PlaceTypeID = input.TypeID
	place.StateID = input.StateID
	place.StateName = input.StateName
	place.CityID = input.CityID
	place.CityName = input.CityName
	place.Address = input.Address
	place.Description = input.Description
	place.Instagram = input.Instagram
	place.Rating = input.Rating
	place.HasRodizio = input.HasRodizio
	place.PetFriendly = input.PetFriendly
	place.RecommendToFriends = input.RecommendToFriends
	place.IsVisited = input.IsVisited
	place.Tags = pq.StringArray(input.Tags)

	if !pc.attachUploads(c, user.UserID, &place) {
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&place).Error; err != nil {
			return err
		}
		return writePlaceActivities(tx, &before, &place)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update place", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "place": place})
}

func (pc *PlaceController) DeletePlace(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var place models.Place
	if err := pc.DB.First(&place, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found", "success": false})
		return
	}

	if place.CreatedBy != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this place", "success": false})
		return
	}

	if err := pc.DB.Delete(&place).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Place deleted successfully"})
}

// attachUploads stores multipart image/itinerary files when present and sets
// their URLs on the place. Writes the error response and returns false on
// failure.
func (pc *PlaceController) attachUploads(c *gin.Context, userID uint, place *models.Place) bool {
	if c.ContentType() != "multipart/form-data" {
		return true
	}

	if header, err := c.FormFile("image"); err == nil {
		url, err := storage.SaveUpload(pc.Storage, userID, "places", header, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
			return false
		}
		place.ImageURL = url
	}

	if header, err := c.FormFile("itinerary"); err == nil {
		url, err := storage.SaveUpload(pc.Storage, userID, "itineraries", header, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
			return false
		}
		place.ItineraryURL = url
	}

	return true
}

// writePlaceActivities records the feed entries a mutation produces. Runs
// inside the mutation's transaction. before is nil on create.
func writePlaceActivities(tx *gorm.DB, before, after *models.Place) error {
	placeID := after.ID

	newlyRecommended := after.RecommendToFriends && (before == nil || !before.RecommendToFriends)
	if newlyRecommended {
		activity := models.Activity{
			UserID:  after.CreatedBy,
			Type:    models.ActivityNewRecommendation,
			PlaceID: &placeID,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
	}

	var oldRating *float64
	if before != nil {
		oldRating = before.Rating
	}

	switch {
	case after.Rating != nil && oldRating == nil:
		activity := models.Activity{
			UserID:    after.CreatedBy,
			Type:      models.ActivityNewRating,
			PlaceID:   &placeID,
			NewRating: after.Rating,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
	case after.Rating != nil && oldRating != nil && *after.Rating != *oldRating:
		activity := models.Activity{
			UserID:    after.CreatedBy,
			Type:      models.ActivityRatingChanged,
			PlaceID:   &placeID,
			OldRating: oldRating,
			NewRating: after.Rating,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
	}

	return nil
}
