package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Product struct {
	Id              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string        `bson:"title" json:"title"`
	Slug            string        `bson:"slug" json:"slug"`
	Description     string        `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionFull string        `bson:"descriptionFull,omitempty" json:"descriptionFull,omitempty"`
	Price           float64       `bson:"price" json:"price"`
	DiscountPrice   *float64      `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Category        string        `bson:"category" json:"category"` // category slug, not enforced by the store
	Stock           int           `bson:"stock" json:"stock"`
	Materials       string        `bson:"materials,omitempty" json:"materials,omitempty"`
	Dimensions      string        `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Images          []string      `bson:"images" json:"images"`
	Active          bool          `bson:"active" json:"active"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}
