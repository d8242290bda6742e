package utils

import (
	"github.com/gin-gonic/gin"
)

// Principal is the authenticated user attached to the request context by the
// session middleware.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *Principal {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if principal, ok := user.(*Principal); ok {
		return principal
	}
	return nil
}

func SetUser(c *gin.Context, p *Principal) {
	c.Set(string(UserContextKey), p)
}
