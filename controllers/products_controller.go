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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /api/products?category&sort&page&limit
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		filter, sortDoc := utils.ProductListQuery(c.Query("category"), c.Query("sort"))
		page, limit, skip := utils.Pagination(c.Query("page"), c.Query("limit"), utils.DefaultProductPageSize)

		findOpts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(sortDoc)

		cursor, err := col.Find(ctx, filter, findOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Total over the filtered set, not the page.
		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": products,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

// GET /api/products/:slug
// The slug route only serves live catalog entries; inactive products 404.
func GetProductBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		slug := strings.TrimSpace(c.Param("slug"))

		var p models.Product
		if err := col.FindOne(ctx, bson.M{"slug": slug, "active": true}).Decode(&p); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, p)
	}
}

// GET /api/products/id/:id
func GetProductByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var p models.Product
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, p)
	}
}

// POST /api/admin/products
func AddProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		var body dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Title = strings.TrimSpace(body.Title)
		body.Slug = strings.TrimSpace(body.Slug)
		if body.Slug == "" {
			body.Slug = utils.GenerateSlug(body.Title)
		}

		active := true
		if body.Active != nil {
			active = *body.Active
		}
		images := body.Images
		if images == nil {
			images = []string{}
		}

		product := models.Product{
			Id:              bson.NewObjectID(),
			Title:           body.Title,
			Slug:            body.Slug,
			Description:     body.Description,
			DescriptionFull: body.DescriptionFull,
			Price:           body.Price,
			DiscountPrice:   body.DiscountPrice,
			Category:        body.Category,
			Stock:           body.Stock,
			Materials:       body.Materials,
			Dimensions:      body.Dimensions,
			Images:          images,
			Active:          active,
			CreatedAt:       time.Now().UTC(),
		}

		if _, err := col.InsertOne(ctx, product); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/admin/products/:id
func UpdateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var body dto.UpdateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{}
		if body.Title != nil {
			set["title"] = strings.TrimSpace(*body.Title)
		}
		if body.Slug != nil {
			v := strings.TrimSpace(*body.Slug)
			if v == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slug cannot be empty"})
				return
			}
			set["slug"] = v
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.DescriptionFull != nil {
			set["descriptionFull"] = *body.DescriptionFull
		}
		if body.Price != nil {
			set["price"] = *body.Price
		}
		if body.DiscountPrice != nil {
			set["discountPrice"] = *body.DiscountPrice
		}
		if body.Category != nil {
			set["category"] = *body.Category
		}
		if body.Stock != nil {
			set["stock"] = *body.Stock
		}
		if body.Materials != nil {
			set["materials"] = *body.Materials
		}
		if body.Dimensions != nil {
			set["dimensions"] = *body.Dimensions
		}
		if body.Images != nil {
			set["images"] = *body.Images
		}
		if body.Active != nil {
			set["active"] = *body.Active
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		res, err := col.UpdateByID(ctx, prodID, bson.M{"$set": set})
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DELETE /api/admin/products/:id
// Idempotent like category delete. Orders keep their snapshots either way.
func DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		if _, err := col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /api/admin/products/:id/images
// Multipart upload; files land in GCS and their public URLs are appended to
// the product's image list.
func AddProductImages(v *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing images"})
			return
		}

		for _, fh := range files {
			if _, err := v.ValidateFile(fh); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "file": fh.Filename})
				return
			}
		}

		gcsClient, bucket, err := utils.NewGCSClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create storage client"})
			return
		}

		urls, err := utils.UploadProductImages(ctx, gcsClient, bucket, product.Slug, files)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := col.UpdateByID(ctx, prodID, bson.M{
			"$push": bson.M{"images": bson.M{"$each": urls}},
		})
		if err != nil || res.MatchedCount == 0 {
			// best effort cleanup of the uploaded objects
			objectNames := make([]string, 0, len(urls))
			for _, u := range urls {
				if obj, err := utils.ObjectNameFromGCSPublicURL(bucket, u); err == nil {
					objectNames = append(objectNames, obj)
				}
			}
			_ = utils.DeleteGCSObjects(ctx, gcsClient, bucket, objectNames)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"imageUrls": urls})
	}
}

// DELETE /api/admin/products/:id/images
func RemoveProductImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("products")

		prodID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var body dto.RemoveProductImagesDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := col.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		// Only URLs the product actually holds are removed.
		toRemove := utils.IntersectStrings(body.ImageUrls, product.Images)
		if len(toRemove) == 0 {
			c.JSON(http.StatusOK, gin.H{"ok": true, "removed": 0})
			return
		}

		if _, err := col.UpdateByID(ctx, prodID, bson.M{
			"$pull": bson.M{"images": bson.M{"$in": toRemove}},
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// DB updated; delete the objects best effort.
		gcsClient, bucket, err := utils.NewGCSClient(ctx)
		if err == nil {
			objectNames := make([]string, 0, len(toRemove))
			for _, u := range toRemove {
				if obj, err := utils.ObjectNameFromGCSPublicURL(bucket, u); err == nil {
					objectNames = append(objectNames, obj)
				}
			}
			_ = utils.DeleteGCSObjects(ctx, gcsClient, bucket, objectNames)
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "removed": len(toRemove)})
	}
}
