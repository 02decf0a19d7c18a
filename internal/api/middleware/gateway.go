package middleware

import (
	"strings"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/gin-gonic/gin"
)

// GatewayAuth trusts user info from gateway headers (X-User-ID, X-User-Email, X-User-Plans).
// This is used when the API runs behind the account gateway, which handles session
// validation and billing.
//
// Requests without X-User-ID pass through unauthenticated; the enhance handler
// answers them with 401 so the response keeps the enhancement body shape.
// This should ONLY be used with proper network isolation.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			c.Next()
			return
		}

		SetIdentity(c, entitlements.Identity{
			UserID: userID,
			Email:  c.GetHeader("X-User-Email"),
			Plans:  parsePlans(c.GetHeader("X-User-Plans")),
		})

		c.Next()
	}
}

// parsePlans splits a comma separated plan list, dropping empty entries
func parsePlans(header string) []string {
	if header == "" {
		return nil
	}
	var plans []string
	for _, plan := range strings.Split(header, ",") {
		if plan = strings.TrimSpace(plan); plan != "" {
			plans = append(plans, plan)
		}
	}
	return plans
}
