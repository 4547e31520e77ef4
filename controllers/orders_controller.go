package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handestiy/handestiybackend/database"
	"github.com/handestiy/handestiybackend/dto"
	"github.com/handestiy/handestiybackend/models"
	"github.com/handestiy/handestiybackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// POST /api/orders
// Public checkout. The server stamps creation time and forces the initial
// status; whatever the client sends for either is ignored.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("orders")

		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(body.Items))
		for _, it := range body.Items {
			items = append(items, models.OrderItem{
				ProductID: it.ProductID,
				Title:     it.Title,
				Price:     it.Price,
				Quantity:  it.Quantity,
				Image:     it.Image,
			})
		}

		method := models.ShippingMethod(body.ShippingMethod)
		if method == "" {
			method = models.ShippingStandard
		}

		order := models.Order{
			Id:             bson.NewObjectID(),
			Items:          items,
			Subtotal:       body.Subtotal,
			Shipping:       body.Shipping,
			Total:          body.Total,
			Customer:       models.CustomerInfo(body.Customer),
			ShippingMethod: method,
			Status:         models.OrderStatusPending,
			CreatedAt:      time.Now().UTC(),
		}

		if _, err := col.InsertOne(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": order.Id})
	}
}

// GET /api/orders/:id
func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("orders")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var order models.Order
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/admin/orders?status&search
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("orders")

		filter, sortDoc := utils.OrderListQuery(c.Query("status"), c.Query("search"))

		cursor, err := col.Find(ctx, filter, options.Find().SetSort(sortDoc))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": orders})
	}
}

// PATCH /api/admin/orders/:id/status
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("orders")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.UpdateOrderStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !models.IsValidOrderStatus(body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status", "field": "status"})
			return
		}

		res, err := col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": body.Status}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
