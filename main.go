package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/handestiy/handestiybackend/controllers"
	"github.com/handestiy/handestiybackend/database"
	"github.com/handestiy/handestiybackend/middleware"
	"github.com/handestiy/handestiybackend/utils"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}
	// seeding admin user (skipped when env vars are unset)
	adminsCol := database.OpenCollection("admin_users")
	if err := utils.SeedAdminUser(ctx, adminsCol); err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	v := utils.NewImageValidator()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// empty allow-list means any origin (storefront previews etc.)
			if len(allowedOrigins) == 0 {
				return true
			}
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"brand": "Handestiy", "status": "ok"})
	})
	r.GET("/test", controllers.TestDatabase())

	r.POST("/api/admin/seed", controllers.SeedAdmin())
	r.POST("/api/admin/login", controllers.Login())

	r.GET("/api/categories", controllers.GetCategories())
	r.GET("/api/products", controllers.GetProducts())
	r.GET("/api/products/id/:id", controllers.GetProductByID())
	r.GET("/api/products/:slug", controllers.GetProductBySlug())
	r.POST("/api/orders", controllers.CreateOrder())
	r.GET("/api/orders/:id", controllers.GetOrder())

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/categories", controllers.AddCategory())
		admin.PUT("/categories/:id", controllers.UpdateCategory())
		admin.DELETE("/categories/:id", controllers.DeleteCategory())

		admin.POST("/products", controllers.AddProduct())
		admin.PUT("/products/:id", controllers.UpdateProduct())
		admin.DELETE("/products/:id", controllers.DeleteProduct())
		admin.POST("/products/:id/images", controllers.AddProductImages(v))
		admin.DELETE("/products/:id/images", controllers.RemoveProductImages())

		admin.GET("/orders", controllers.GetOrders())
		admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus())

		admin.POST("/password", controllers.ChangeMyPassword())
	}

	// Server listens on 0.0.0.0:8080 unless PORT overrides it
	r.Run()
}
