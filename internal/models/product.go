package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionProduct is the collection backing Product documents.
const CollectionProduct = "product"

// Product is declared for the schema catalogue; no route exercises it yet.
type Product struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" binding:"required"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price" binding:"gte=0"`
	Category    string             `json:"category" bson:"category" binding:"required"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
}
