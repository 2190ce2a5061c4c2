package main

import (
	"log"

	"venuebooking/internal/config"
	"venuebooking/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{LogLevel: cfg.DBLogLevel})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db, database.MigrateOptions{ExclusionConstraint: cfg.BookingExclusionConstraint}); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	log.Printf("migration completed: tables=venues,booking_inquiries exclusion_constraint=%t", cfg.BookingExclusionConstraint)
}
