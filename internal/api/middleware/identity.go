package middleware

import (
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// SetIdentity attaches an authenticated caller to the request
func SetIdentity(c *gin.Context, identity entitlements.Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.UserID)
	c.Set("user_email", identity.Email)
}

// GetIdentity retrieves the caller attached by one of the auth middlewares.
// ok is false for unauthenticated requests.
func GetIdentity(c *gin.Context) (entitlements.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return entitlements.Identity{}, false
	}
	identity, ok := value.(entitlements.Identity)
	return identity, ok && identity.UserID != ""
}
