package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(db), func(c *gin.Context) {
		user := utils.GetUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.UserID, "isAdmin": user.IsAdmin})
	})

	return r, mock
}

func request(router *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionColumns() []string {
	return []string{"id", "created_at", "updated_at", "deleted_at", "user_id", "token", "expires_at"}
}

func TestAuthMiddlewareNoCookie(t *testing.T) {
	router, mock := setupAuthTest(t)

	w := request(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddlewareUnknownToken(t *testing.T) {
	router, mock := setupAuthTest(t)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token =`).
		WillReturnRows(sqlmock.NewRows(sessionColumns()))

	w := request(router, "bogus-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddlewareExpiredSession(t *testing.T) {
	router, mock := setupAuthTest(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token =`).
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow(1, now.Add(-48*time.Hour), now, nil, 1, "stale-token", now.Add(-time.Hour)))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_admin"}).
			AddRow(1, "ana", false))
	// The expired row is discarded on sight.
	mock.ExpectExec(`UPDATE "sessions" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := request(router, "stale-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthMiddlewareValidSession(t *testing.T) {
	router, mock := setupAuthTest(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token =`).
		WillReturnRows(sqlmock.NewRows(sessionColumns()).
			AddRow(1, now, now, nil, 7, "good-token", now.Add(time.Hour)))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_admin"}).
			AddRow(7, "ana", true))

	w := request(router, "good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
	assert.Contains(t, w.Body.String(), `"isAdmin":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		utils.SetUser(c, &utils.Principal{UserID: 1, Username: "ana", IsAdmin: false})
		c.Next()
	}, AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
