package middleware

import (
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/gin-gonic/gin"
)

// AnonymousUserID identifies callers when AUTH_MODE=none
const AnonymousUserID = "anonymous"

// NoAuth is a pass-through middleware for when AUTH_MODE=none.
// Every request is an anonymous free-tier caller.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetIdentity(c, entitlements.Identity{UserID: AnonymousUserID})
		c.Next()
	}
}
