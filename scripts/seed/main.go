// Script to seed the database with sample users and daily aggregates.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/config"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	var users []domain.User
	if err := db.Order("created_at").Find(&users).Error; err != nil {
		log.Fatalf("Failed to list seeded users: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
