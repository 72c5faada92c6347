package middleware

import (
	"net/http"
	"strings"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/identity"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"github.com/gin-gonic/gin"
)

const (
	UIDKey  = "uid"
	RoleKey = "role"
)

// BearerAuth verifies the Authorization header and attaches the caller's uid
// and role to the gin context. Verification failures are 401, not the generic
// error path.
func BearerAuth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": consts.MissingToken})
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": consts.InvalidToken})
			return
		}

		c.Set(UIDKey, claims.UID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates the admin routes on the role claim.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": consts.AdminOnly})
			return
		}
		c.Next()
	}
}
