package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/addsmd/healthy-api/internal/config"
	"github.com/addsmd/healthy-api/internal/database"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seed-activities <name>...")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for _, name := range os.Args[1:] {
		result, err := db.Pool.Exec(ctx, `
			INSERT INTO activities (name)
			SELECT $1
			WHERE NOT EXISTS (SELECT 1 FROM activities WHERE name = $1)
		`, name)
		if err != nil {
			log.Fatalf("Failed to insert activity %q: %v", name, err)
		}

		if result.RowsAffected() == 0 {
			fmt.Printf("Activity %q already exists, skipped\n", name)
			continue
		}
		fmt.Printf("Seeded activity %q\n", name)
	}
}
