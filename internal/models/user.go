package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionUser is the collection backing User documents.
const CollectionUser = "user"

// User is declared for the schema catalogue; no route exercises it yet.
type User struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" binding:"required"`
	Email     string             `json:"email" bson:"email" binding:"required"`
	AvatarURL *string            `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
}
