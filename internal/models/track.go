package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionTrack is the collection backing Track documents.
const CollectionTrack = "track"

// Track is a music track with a publicly accessible audio URL. The ID is
// assigned by the database on insert; client input cannot set it.
type Track struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title      string             `json:"title" bson:"title" binding:"required"`
	Artist     string             `json:"artist" bson:"artist" binding:"required"`
	Album      *string            `json:"album,omitempty" bson:"album,omitempty"`
	CoverURL   *string            `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	AudioURL   string             `json:"audio_url" bson:"audio_url" binding:"required"`
	DurationMS *int64             `json:"duration_ms,omitempty" bson:"duration_ms,omitempty"`
}
