package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handestiy/handestiybackend/database"
	"github.com/handestiy/handestiybackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// BearerToken extracts the opaque token from an Authorization header.
// Returns "" when the header is missing or not a Bearer scheme.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthMiddleware gates admin routes. The token must exactly match a stored
// session whose expiry is still in the future; expiry is evaluated here, not
// purged in the store.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		ctx := c.Request.Context()
		sessionsCol := database.OpenCollection("admin_sessions")

		var session models.AdminSession
		err := sessionsCol.FindOne(ctx, bson.M{
			"token":     token,
			"expiresAt": bson.M{"$gt": time.Now().UTC()},
		}).Decode(&session)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		var admin models.AdminUser
		adminsCol := database.OpenCollection("admin_users")
		if err := adminsCol.FindOne(ctx, bson.M{"_id": session.AdminID}).Decode(&admin); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("adminID", admin.ID.Hex())
		c.Set("email", admin.Email)
		c.Next()
	}
}
