package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionPlaylist is the collection backing Playlist documents.
const CollectionPlaylist = "playlist"

// Playlist references tracks by id string; the referenced tracks are not
// required to exist. The ID is assigned by the database on insert; client
// input cannot set it.
type Playlist struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" binding:"required"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty"`
	CoverURL    *string            `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	Tracks      []string           `json:"tracks" bson:"tracks"`
}
