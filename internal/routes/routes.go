package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spotify-lite/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, store handlers.DocumentStore) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AllowMethods = []string{"*"}
	router.Use(cors.New(corsConfig))

	system := handlers.NewSystemHandler(store)
	tracks := handlers.NewTrackHandler(store)
	playlists := handlers.NewPlaylistHandler(store)

	router.GET("/", system.Root)
	router.POST("/seed", system.Seed)
	router.GET("/test", system.TestDatabase)

	router.GET("/tracks", tracks.ListTracks)
	router.POST("/tracks", tracks.CreateTrack)

	router.GET("/playlists", playlists.ListPlaylists)
	router.POST("/playlists", playlists.CreatePlaylist)
	router.POST("/playlists/:playlist_id/tracks", playlists.AddTrack)
}
