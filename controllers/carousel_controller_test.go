package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/middleware"
	"github.com/rolemap/api-go/utils"
	"github.com/stretchr/testify/assert"
)

func setupCarouselRouter(t *testing.T, principal *utils.Principal) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	cc := NewCarouselController(db, nil)

	r := gin.New()
	r.GET("/api/carousel-images", cc.ListActiveImages)

	admin := r.Group("/api", fakeAuth(principal), middleware.AdminMiddleware())
	admin.POST("/carousel-images", cc.CreateImage)
	admin.DELETE("/carousel-images/:id", cc.DeleteImage)
	return r, mock
}

func TestPublicCarouselExcludesInactive(t *testing.T) {
	router, mock := setupCarouselRouter(t, nil)

	// The public query filters on is_active and sorts by display order.
	mock.ExpectQuery(`SELECT \* FROM "carousel_images" WHERE is_active = .* ORDER BY display_order asc, id asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_url", "display_order", "is_active"}).
			AddRow(3, "/uploads/carousel/a.jpg", 1, true).
			AddRow(1, "/uploads/carousel/b.jpg", 2, true))

	w := jsonRequest(t, router, http.MethodGet, "/api/carousel-images", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	images := decodeBody(t, w)["images"].([]interface{})
	assert.Len(t, images, 2)
	assert.Equal(t, float64(3), images[0].(map[string]interface{})["ID"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarouselWriteRequiresAdmin(t *testing.T) {
	router, mock := setupCarouselRouter(t, regularUser())

	w := jsonRequest(t, router, http.MethodPost, "/api/carousel-images", gin.H{
		"imageUrl": "/uploads/carousel/a.jpg",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarouselCreateByAdmin(t *testing.T) {
	admin := &utils.Principal{UserID: 1, Username: "root", IsAdmin: true}
	router, mock := setupCarouselRouter(t, admin)

	mock.ExpectQuery(`INSERT INTO "carousel_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := jsonRequest(t, router, http.MethodPost, "/api/carousel-images", gin.H{
		"imageUrl":     "/uploads/carousel/a.jpg",
		"title":        "Bem-vindo",
		"displayOrder": 1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarouselCreateRequiresImage(t *testing.T) {
	admin := &utils.Principal{UserID: 1, Username: "root", IsAdmin: true}
	router, mock := setupCarouselRouter(t, admin)

	w := jsonRequest(t, router, http.MethodPost, "/api/carousel-images", gin.H{
		"title": "Sem imagem",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
