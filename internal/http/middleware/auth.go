package middleware

import (
	"net/http"
	"strings"

	"rexagon/internal/domain"
	"rexagon/internal/repository"
	"rexagon/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT authenticates the bearer token and puts the user id into the
// context. Token validity is entirely server-determined; any failure is
// a plain 401 the client treats as logged-out.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
			return
		}

		userID, err := service.ParseJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalJWT sets the user id when a valid bearer token is present, but
// lets anonymous requests through. Used on listings that enrich their
// output for logged-in users.
func OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if userID, err := service.ParseJWT(parts[1]); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// AdminOnly re-reads the caller's role from the database on every call.
// Requires JWT to have run first. The role claim is never taken from the
// client.
func AdminOnly(users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
			return
		}

		role, err := users.GetRole(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Kimlik doğrulanamadı"})
			return
		}
		if role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Yönetici yetkisi gerekli"})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user id set by JWT.
func GetUserID(c *gin.Context) (string, bool) {
	id := c.GetString("user_id")
	return id, id != ""
}
