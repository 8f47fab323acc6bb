// Command seed populates the development database with fake profiles and posts.
package main

import (
	"flag"
	"log"

	"postify/internal/config"
	"postify/internal/database"
	"postify/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "number of profiles to create")
	numPosts := flag.Int("posts", 50, "number of posts to create")
	clean := flag.Bool("clean", false, "delete existing data first")
	fixtures := flag.String("fixtures", "", "optional YAML fixture file applied before generated data")
	password := flag.String("password", "password123", "login password for every seeded account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
		FixtureFile: *fixtures,
		Password:    *password,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
