package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/safar/go-storefront/internal/config"
	"github.com/safar/go-storefront/internal/database"
	"github.com/safar/go-storefront/internal/models"
	"github.com/safar/go-storefront/internal/seed"
	"github.com/safar/go-storefront/internal/store"
)

func main() {
	clearFirst := flag.Bool("clear", false, "delete every product before seeding")
	file := flag.String("file", "", "catalog YAML file (defaults to the embedded sample catalog)")
	flag.Parse()

	var (
		products []models.Product
		err      error
	)
	if *file != "" {
		products, err = seed.LoadFile(*file)
	} else {
		products, err = seed.Default()
	}
	if err != nil {
		log.Fatalf("Load catalog: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("Run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var results []store.SeedResult
	err = database.WithTransaction(ctx, db, func(tx *sql.Tx) error {
		if *clearFirst {
			deleted, err := store.DeleteAllProducts(ctx, tx)
			if err != nil {
				return err
			}
			log.Printf("Deleted %d existing product(s)", deleted)
		}

		seeded, err := store.SeedProducts(ctx, tx, products)
		if err != nil {
			return err
		}
		results = seeded
		return nil
	})
	if err != nil {
		log.Fatalf("Seed products: %v", err)
	}

	created := 0
	for _, r := range results {
		if r.Created {
			created++
			log.Printf("Created product: %s", r.Name)
		} else {
			log.Printf("Product already exists: %s", r.Name)
		}
	}

	log.Printf("Seeding complete: %d new product(s) created", created)
}
