package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/handestiy/handestiybackend/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// GET /test — connectivity report for deploy debugging.
func TestDatabase() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		report := gin.H{
			"backend":      "running",
			"database":     "not connected",
			"databaseName": os.Getenv("DATABASE_NAME"),
			"collections":  []string{},
		}

		client := database.Connect()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			report["database"] = "error: " + err.Error()
			c.JSON(http.StatusOK, report)
			return
		}
		report["database"] = "connected"

		if names, err := database.Database().ListCollectionNames(ctx, bson.M{}); err == nil {
			report["collections"] = names
		}

		c.JSON(http.StatusOK, report)
	}
}
