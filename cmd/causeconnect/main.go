package main

import (
	"os"

	"github.com/causeconnect-dev/causeconnect/db"
	"github.com/causeconnect-dev/causeconnect/internal/auth"
	"github.com/causeconnect-dev/causeconnect/internal/graph"
	"github.com/causeconnect-dev/causeconnect/internal/router"
	"github.com/causeconnect-dev/causeconnect/internal/services"
	"github.com/causeconnect-dev/causeconnect/internal/store"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		logrus.Fatalf("Failed to initialize JWT: %v", err)
	}

	stores := store.New(db.DB)
	notifier := services.NewWebhookNotifier(os.Getenv("CAUSE_WEBHOOK_URL"))

	schema, err := graph.NewSchema(stores, notifier)
	if err != nil {
		logrus.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	r := router.NewRouter(schema)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
		logrus.Println("PORT not set, defaulting to 4000")
	}

	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
