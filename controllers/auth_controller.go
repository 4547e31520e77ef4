package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handestiy/handestiybackend/database"
	"github.com/handestiy/handestiybackend/dto"
	"github.com/handestiy/handestiybackend/models"
	"github.com/handestiy/handestiybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// POST /api/admin/seed
func SeedAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SeedAdminDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		now := time.Now().UTC()
		admin := models.AdminUser{
			ID:           bson.NewObjectID(),
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		adminsCol := database.OpenCollection("admin_users")
		if _, err := adminsCol.InsertOne(c.Request.Context(), admin); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "admin already exists", "field": "email"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": admin.ID, "email": admin.Email})
	}
}

// POST /api/admin/login
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		email := strings.ToLower(strings.TrimSpace(body.Email))

		var admin models.AdminUser
		adminsCol := database.OpenCollection("admin_users")
		if err := adminsCol.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if err := utils.CheckPassword(admin.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := utils.NewSessionToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		now := time.Now().UTC()
		session := models.AdminSession{
			AdminID:   admin.ID,
			Token:     token,
			ExpiresAt: now.Add(utils.SessionTTL()),
			CreatedAt: now,
		}

		sessionsCol := database.OpenCollection("admin_sessions")

		// One live session per account: issuing a new token invalidates the
		// previous one immediately.
		if _, err := sessionsCol.DeleteMany(ctx, bson.M{"adminId": admin.ID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if _, err := sessionsCol.InsertOne(ctx, session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":     session.Token,
			"expiresAt": session.ExpiresAt,
		})
	}
}

// POST /api/admin/password
func ChangeMyPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ChangeMyPasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		adminIDStr, ok := c.Get("adminID")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		adminID, err := bson.ObjectIDFromHex(adminIDStr.(string))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth context"})
			return
		}

		ctx := c.Request.Context()
		adminsCol := database.OpenCollection("admin_users")

		var admin models.AdminUser
		if err := adminsCol.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}

		if err := utils.CheckPassword(admin.PasswordHash, body.CurrentPassword); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "current password is incorrect"})
			return
		}

		newHash, err := utils.HashPassword(body.NewPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		_, err = adminsCol.UpdateByID(ctx, adminID, bson.M{
			"$set": bson.M{
				"passwordHash": newHash,
				"updatedAt":    time.Now().UTC(),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Revoke every session of the account; the admin must log in again.
		sessionsCol := database.OpenCollection("admin_sessions")
		_, _ = sessionsCol.DeleteMany(ctx, bson.M{"adminId": adminID})

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
