package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"spotify-lite/internal/models"
	"spotify-lite/internal/store"
)

type PlaylistHandler struct {
	store DocumentStore
}

func NewPlaylistHandler(s DocumentStore) *PlaylistHandler {
	return &PlaylistHandler{store: s}
}

// AddTrackRequest is the body of POST /playlists/:playlist_id/tracks.
type AddTrackRequest struct {
	TrackID string `json:"track_id" binding:"required"`
}

// ListPlaylists returns up to ?limit playlists (default 50), serialized.
func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	docs, err := h.store.GetDocuments(c.Request.Context(), models.CollectionPlaylist, nil, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store.SerializeAll(docs))
}

// CreatePlaylist inserts a playlist with an empty track list attached and
// returns the stored document re-fetched by its new id.
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var playlist models.Playlist
	if err := c.ShouldBindJSON(&playlist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Track membership is only ever changed through the add-track route.
	playlist.Tracks = []string{}

	id, err := h.store.CreateDocument(c.Request.Context(), models.CollectionPlaylist, playlist)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.store.FindByID(c.Request.Context(), models.CollectionPlaylist, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store.Serialize(doc))
}

// AddTrack adds a track id to a playlist's track set. The update is a
// single atomic $addToSet, so concurrent adds to the same playlist cannot
// drop entries, and a duplicate id is never stored twice. The referenced
// track is not required to exist.
func (h *PlaylistHandler) AddTrack(c *gin.Context) {
	playlistID := c.Param("playlist_id")
	if _, err := primitive.ObjectIDFromHex(playlistID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid playlist id"})
		return
	}

	var req AddTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trackID, err := primitive.ObjectIDFromHex(req.TrackID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid track id"})
		return
	}

	matched, err := h.store.AddToSet(c.Request.Context(), models.CollectionPlaylist,
		playlistID, "tracks", trackID.Hex())
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "playlist not found"})
		return
	}

	doc, err := h.store.FindByID(c.Request.Context(), models.CollectionPlaylist, playlistID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store.Serialize(doc))
}
