package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/ParthMistry57/Blog-application/config"
	"github.com/ParthMistry57/Blog-application/internal/infrastructure/mongodb"
)

// Wipes every collection. Development convenience only.
func main() {
	yes := flag.Bool("yes", false, "confirm wiping all users, posts, and comments")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	if !*yes {
		log.Fatalf("refusing to clear %q without --yes", cfg.MongoDBName)
	}

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.NewAdminRepository(db).ClearAll(ctx); err != nil {
		log.Fatalf("failed to clear database: %v", err)
	}
	fmt.Printf("cleared database %q\n", cfg.MongoDBName)
}
