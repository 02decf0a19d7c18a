package middleware

import (
	"fmt"
	"strings"

	apimiddleware "github.com/Conceptual-Machines/notes-enhance-api/internal/api/middleware"
	"github.com/Conceptual-Machines/notes-enhance-api/internal/entitlements"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	bearerPrefix      = "Bearer"
	accessTokenCookie = "access_token"
)

// Claims are the token claims issued by the account service
type Claims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Plans  []string `json:"plans,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth validates HS256 tokens and attaches the caller's identity to the context.
// Missing or invalid tokens leave the request unauthenticated; the enhance
// handler answers those with 401.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(tokenString, key)
		if err != nil {
			c.Set("auth_error", err.Error())
			c.Next()
			return
		}

		apimiddleware.SetIdentity(c, entitlements.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Plans:  claims.Plans,
		})

		c.Next()
	}
}

// ParseToken validates a token string and returns its claims
func ParseToken(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no user_id claim")
	}
	return claims, nil
}

// extractToken reads "Authorization: Bearer <token>", then the access_token cookie
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == bearerPrefix {
			return parts[1]
		}
	}

	// If no header, try cookie (for web users)
	tokenString, _ := c.Cookie(accessTokenCookie)
	return tokenString
}
