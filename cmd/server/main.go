package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/rpipaliya/student-journal-api/internal/config"
	"github.com/rpipaliya/student-journal-api/internal/database"
	"github.com/rpipaliya/student-journal-api/internal/middleware"
	"github.com/rpipaliya/student-journal-api/internal/repository/mongodb"
	"github.com/rpipaliya/student-journal-api/internal/routes"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to Redis (rate limiter backing store). The limiter fails open
	// when Redis is down, so a failed connect is a warning, not fatal.
	log.Printf("Connecting to Redis...")
	rdb, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Printf("⚠️  WARNING: failed to connect to Redis: %v", err)
		log.Println("   Rate limiting is disabled until the process is restarted.")
		rdb = nil
	}
	defer database.DisconnectRedis(rdb)

	// Connect to MongoDB. The handle is kept even when the connect fails;
	// requests then fail individually instead of crashing the process.
	log.Printf("Connecting to MongoDB...")
	db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		if db == nil {
			// The client itself could not be built (malformed URI).
			log.Fatal("Failed to create MongoDB client: ", err)
		}
		log.Printf("⚠️  WARNING: failed to connect to MongoDB: %v", err)
		log.Println("   Requests will fail until the store becomes reachable.")
	}
	defer database.Disconnect()

	if db != nil {
		if err := database.EnsureIndexes(context.Background(), db); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
		} else {
			log.Println("✅ MongoDB indexes ensured")
		}
	}

	entries := mongodb.NewEntryRepository(db)
	quotes := mongodb.NewQuoteRepository(db)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimit(rdb))

	routes.SetupRoutes(r, entries, quotes)

	log.Println("📋 Registered routes:")
	log.Println("  GET    /")
	log.Println("  GET    /api-docs")
	log.Println("  GET    /entry")
	log.Println("  POST   /entry")
	log.Println("  GET    /entry/{id}")
	log.Println("  PUT    /entry/{id}")
	log.Println("  DELETE /entry/{id}")
	log.Println("  POST   /quote")
	log.Println("  GET    /quote/{id}")

	log.Printf("🚀 Student Journal API listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
