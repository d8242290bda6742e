package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupFriendRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	fc := NewFriendController(db)

	r := gin.New()
	authed := r.Group("/api", fakeAuth(regularUser()))
	authed.POST("/friends", fc.AddFriend)
	authed.DELETE("/friends/:id", fc.RemoveFriend)
	authed.GET("/friends", fc.ListFriends)
	authed.POST("/friends/places/:placeId/clone", fc.ClonePlace)
	return r, mock
}

func TestAddFriendRejectsSelf(t *testing.T) {
	router, mock := setupFriendRouter(t)

	w := jsonRequest(t, router, http.MethodPost, "/api/friends", gin.H{"friendId": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot add yourself as a friend", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFriendUnknownUser(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	w := jsonRequest(t, router, http.MethodPost, "/api/friends", gin.H{"friendId": 42})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFriendDuplicateEdge(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(42, "bia"))
	mock.ExpectQuery(`SELECT \* FROM "friendships" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "friend_id"}).AddRow(7, 1, 42))

	w := jsonRequest(t, router, http.MethodPost, "/api/friends", gin.H{"friendId": 42})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFriendMissingEdge(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectExec(`UPDATE "friendships" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := jsonRequest(t, router, http.MethodDelete, "/api/friends/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClonePlaceRejectsOwnPlace(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows(placeColumns()).
			AddRow(5, "Fogo Alto", 1, 4.5, true, false, true, 1))

	w := jsonRequest(t, router, http.MethodPost, "/api/friends/places/5/clone", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot clone your own place", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClonePlaceRequiresFriendship(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows(placeColumns()).
			AddRow(5, "Fogo Alto", 1, 4.5, true, false, true, 99))
	mock.ExpectQuery(`SELECT \* FROM "friendships" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "friend_id"}))

	w := jsonRequest(t, router, http.MethodPost, "/api/friends/places/5/clone", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClonePlaceRejectsDuplicateClone(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows(placeColumns()).
			AddRow(5, "Fogo Alto", 1, 4.5, true, false, true, 99))
	mock.ExpectQuery(`SELECT \* FROM "friendships" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "friend_id"}).AddRow(7, 1, 99))
	mock.ExpectQuery(`SELECT \* FROM "places" WHERE`).
		WillReturnRows(sqlmock.NewRows(placeColumns()).
			AddRow(8, "Fogo Alto", 1, nil, false, false, false, 1))

	w := jsonRequest(t, router, http.MethodPost, "/api/friends/places/5/clone", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Place already cloned", decodeBody(t, w)["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClonePlaceResetsVisitedAndRating(t *testing.T) {
	router, mock := setupFriendRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows(placeColumns()).
			AddRow(5, "Fogo Alto", 1, 4.5, true, false, true, 99))
	mock.ExpectQuery(`SELECT \* FROM "friendships" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "friend_id"}).AddRow(7, 1, 99))
	mock.ExpectQuery(`SELECT \* FROM "places" WHERE`).
		WillReturnRows(sqlmock.NewRows(placeColumns()))
	mock.ExpectQuery(`INSERT INTO "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	w := jsonRequest(t, router, http.MethodPost, "/api/friends/places/5/clone", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	place := body["place"].(map[string]interface{})
	assert.Equal(t, true, place["isClone"])
	assert.Equal(t, false, place["isVisited"])
	assert.Nil(t, place["rating"])
	assert.Equal(t, float64(99), place["clonedFromUserId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
