package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "Standard Shipping"
	ShippingExpress  ShippingMethod = "Express Shipping"
)

// OrderItem snapshots the product at order time. Editing or deleting the
// product afterwards must not change historical orders.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

type CustomerInfo struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address" json:"address"`
}

type Order struct {
	Id             bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Items          []OrderItem    `bson:"items" json:"items"`
	Subtotal       float64        `bson:"subtotal" json:"subtotal"`
	Shipping       float64        `bson:"shipping" json:"shipping"`
	Total          float64        `bson:"total" json:"total"`
	Customer       CustomerInfo   `bson:"customer" json:"customer"`
	ShippingMethod ShippingMethod `bson:"shippingMethod" json:"shippingMethod"`
	Status         OrderStatus    `bson:"status" json:"status"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
}
