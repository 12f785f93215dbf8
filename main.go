package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ReiKama414/mysterious-art-marketplace/catalog"
	"github.com/ReiKama414/mysterious-art-marketplace/prefs"
	"github.com/ReiKama414/mysterious-art-marketplace/routes"
	"github.com/ReiKama414/mysterious-art-marketplace/storage"
)

func main() {
	log.Println("✅ Starting art marketplace API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB and key-value persistence
	db := initDatabase()
	kv := storage.NewKV(db)
	if err := kv.Migrate(); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Build the immutable catalog from the seed data. Preferences and the
	// catalog come up before any cart is touched; carts resolve artworks from
	// the catalog only at add time.
	artworks, artists := catalog.Seed()
	cat := catalog.New(artworks, artists)
	log.Printf("🖼️ Catalog loaded: %d artworks, %d artists", len(artworks), len(artists))

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", "Sec-CH-Prefers-Color-Scheme"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog: cat,
		KV:      kv,
		Prefs:   prefs.NewStore(kv),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. A DATABASE_URL switches to
// postgres; the default is a local sqlite file, which is all the demo needs.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "marketplace.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
