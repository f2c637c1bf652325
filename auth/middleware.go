package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"blogdesk/models"
)

const adminContextKey = "current_admin"

// RequireAuth guards a route group behind a bearer token. It resolves the
// Authorization header to an admin record and stashes it in the request
// context for handlers to pick up with CurrentAdmin.
func RequireAuth(db *gorm.DB, tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c, "Not authenticated")
			return
		}

		adminID, err := tokens.Resolve(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				unauthorized(c, "Token has expired")
				return
			}
			unauthorized(c, "Could not validate credentials")
			return
		}

		var admin models.Admin
		if err := db.First(&admin, adminID).Error; err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(adminContextKey, &admin)
		c.Next()
	}
}

// CurrentAdmin returns the admin resolved by RequireAuth, or nil on an
// unguarded route.
func CurrentAdmin(c *gin.Context) *models.Admin {
	if v, ok := c.Get(adminContextKey); ok {
		if admin, ok := v.(*models.Admin); ok {
			return admin
		}
	}
	return nil
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
