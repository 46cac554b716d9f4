package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spotify-lite/internal/models"
	"spotify-lite/internal/store"
)

const defaultListLimit = 50

type TrackHandler struct {
	store DocumentStore
}

func NewTrackHandler(s DocumentStore) *TrackHandler {
	return &TrackHandler{store: s}
}

// ListTracks returns up to ?limit tracks (default 50), serialized.
func (h *TrackHandler) ListTracks(c *gin.Context) {
	docs, err := h.store.GetDocuments(c.Request.Context(), models.CollectionTrack, nil, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store.SerializeAll(docs))
}

// CreateTrack validates the payload, inserts it and returns the stored
// document re-fetched by its new id.
func (h *TrackHandler) CreateTrack(c *gin.Context) {
	var track models.Track
	if err := c.ShouldBindJSON(&track); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.store.CreateDocument(c.Request.Context(), models.CollectionTrack, track)
	if err != nil {
		if errors.Is(err, store.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.store.FindByID(c.Request.Context(), models.CollectionTrack, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, store.Serialize(doc))
}

// listLimit reads the optional ?limit query parameter.
func listLimit(c *gin.Context) int64 {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit < 1 {
		limit = defaultListLimit
	}
	return int64(limit)
}
