package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rolemap/api-go/models"
	"github.com/rolemap/api-go/utils"
	"gorm.io/gorm"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// AuthMiddleware resolves the session cookie to a user and attaches the
// principal to the context. Expired sessions are deleted on sight.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
			c.Abort()
			return
		}

		var session models.Session
		if err := db.Preload("User").Where("token = ?", token).First(&session).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session", "success": false})
			c.Abort()
			return
		}

		if session.Expired() {
			db.Delete(&session)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired", "success": false})
			c.Abort()
			return
		}

		utils.SetUser(c, &utils.Principal{
			UserID:   session.UserID,
			Username: session.User.Username,
			IsAdmin:  session.User.IsAdmin,
		})

		c.Next()
	}
}

// AdminMiddleware gates admin-only routes. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required", "success": false})
			c.Abort()
			return
		}

		c.Next()
	}
}
