package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spotify-lite/internal/models"
)

type SystemHandler struct {
	store DocumentStore
}

func NewSystemHandler(s DocumentStore) *SystemHandler {
	return &SystemHandler{store: s}
}

// Root is the static liveness message.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Spotify-lite API running"})
}

// Seed inserts three demo tracks, once. A non-empty track collection
// makes it a no-op reporting the existing count.
func (h *SystemHandler) Seed(c *gin.Context) {
	if !h.store.Available() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
		return
	}

	count, err := h.store.CountDocuments(c.Request.Context(), models.CollectionTrack)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "seeded": false, "existing": count})
		return
	}

	for _, track := range demoTracks() {
		if _, err := h.store.CreateDocument(c.Request.Context(), models.CollectionTrack, track); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "seeded": true, "count": len(demoTracks())})
}

// TestDatabase reports liveness, database availability and whether the
// connection env vars are set. It always answers 200; failures are
// downgraded to status strings.
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store.Available() {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		names, err := h.store.ListCollectionNames(c.Request.Context())
		if err != nil {
			response["database"] = fmt.Sprintf("⚠️ Connected but Error: %.50s", err.Error())
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// demoTracks returns the fixed seed catalogue.
func demoTracks() []models.Track {
	return []models.Track{
		{
			Title:      "Dreamscape",
			Artist:     "Nocturne",
			Album:      ptr("Midnight City"),
			CoverURL:   ptr("https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&q=80&auto=format&fit=crop"),
			AudioURL:   "https://cdn.pixabay.com/download/audio/2021/11/16/audio_7b2a3f9b9a.mp3?filename=lofi-study-112191.mp3",
			DurationMS: ptr(int64(152000)),
		},
		{
			Title:      "Sunset Drive",
			Artist:     "Neon Waves",
			Album:      ptr("Coastal Roads"),
			CoverURL:   ptr("https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=800&q=80&auto=format&fit=crop"),
			AudioURL:   "https://cdn.pixabay.com/download/audio/2021/12/07/audio_7b5b2f6d8b.mp3?filename=vibes-122242.mp3",
			DurationMS: ptr(int64(180000)),
		},
		{
			Title:      "Crystal Air",
			Artist:     "Aurora",
			Album:      ptr("Skylight"),
			CoverURL:   ptr("https://images.unsplash.com/photo-1515263487990-61b07816b324?w=800&q=80&auto=format&fit=crop"),
			AudioURL:   "https://cdn.pixabay.com/download/audio/2022/03/15/audio_7e0b7b5d03.mp3?filename=chill-ambient-10962.mp3",
			DurationMS: ptr(int64(210000)),
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
