package main

import (
	"log"

	"spotify-lite/internal/config"
	"spotify-lite/internal/database"
	"spotify-lite/internal/routes"
	"spotify-lite/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.LoadConfig()

	var db *mongo.Database
	if cfg.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, starting without storage")
	} else {
		client, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Failed to connect to database: ", err)
		}
		db = client.Database(cfg.DatabaseName)
		log.Println("✅ Connected to database", cfg.DatabaseName)
	}

	router := gin.Default()
	routes.RegisterRoutes(router, store.New(db))

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
