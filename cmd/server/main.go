package main

import (
	"context"
	"log"
	"os"

	"safar-travel-api/config"
	"safar-travel-api/internal/assist"
	"safar-travel-api/internal/auth"
	"safar-travel-api/internal/booking"
	"safar-travel-api/internal/catalog"
	"safar-travel-api/internal/contact"
	"safar-travel-api/internal/logs"
	"safar-travel-api/internal/media"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&catalog.PackageRecord{},
		&booking.Trip{},
		&booking.Booking{},
		&contact.ContactMessage{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://safar-travel.web.app"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	store := &media.GCSStore{Bucket: cfg.BucketName}
	logService := &logs.LogService{DB: db}

	authService := &auth.AuthService{
		Verifier: &auth.EnvCredentialVerifier{
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
		},
		JWTSecret: cfg.JWTSecret,
	}
	auth.RegisterRoutes(r, authService, logService)

	catalogService := &catalog.CatalogService{DB: db, Media: store}
	catalog.RegisterRoutes(r, catalogService, logService)

	bookingService := &booking.BookingService{DB: db, Media: store}
	booking.RegisterRoutes(r, bookingService, logService)

	contactService := &contact.ContactService{DB: db, CFG: &cfg}
	contact.RegisterRoutes(r, contactService, logService)

	logs.RegisterRoutes(r, logService)

	auditService := &media.AuditService{DB: db, Store: store}
	media.RegisterRoutes(r, auditService)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Gemini client unavailable, assistant disabled: %v", err)
		client = nil
	}

	assistService := &assist.AssistService{DB: db, Client: client}
	assist.RegisterRoutes(r, assistService)

	// Cloud Run expects plain HTTP on $PORT, bound to 0.0.0.0
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
