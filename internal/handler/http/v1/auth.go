package v1

import (
	"net/http"
	"strings"

	"github.com/diyapatel028/Mangrove-sentinals/internal/auth"
	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const userContextKey = "currentUser"

// AuthMiddleware verifies the bearer token and resolves the account it is
// bound to into the request context.
func AuthMiddleware(tokens *auth.TokenManager, users service.UserService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		email, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			log.WithError(err).Warn("Token subject not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !user.IsActive {
			log.WithField("user_id", user.ID).Warn("Inactive account attempted access")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account deactivated"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// SentinelOnlyMiddleware restricts a route to sentinel accounts. Must run
// after AuthMiddleware.
func SentinelOnlyMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		if !user.IsSentinel {
			log.WithField("user_id", user.ID).Warn("Non-sentinel attempted a restricted operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "sentinel access required"})
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated account from the request context.
func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
