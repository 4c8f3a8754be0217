package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/config"
	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
	"github.com/ParthMistry57/Blog-application/internal/infrastructure/mongodb"
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

type samplePost struct {
	title    string
	excerpt  string
	content  string
	category string
	tags     []string
}

var samples = []samplePost{
	{
		title:    "Getting Started with Go",
		excerpt:  "A quick tour of modules, packages, and the toolchain.",
		content:  "Go ships with everything you need to build and test a project.\n\nStart with go mod init, keep packages small, and let gofmt settle every style argument before it starts.",
		category: "programming",
		tags:     []string{"go", "tutorial"},
	},
	{
		title:    "Designing REST APIs That Age Well",
		excerpt:  "Naming, pagination, and error shapes you will not regret.",
		content:  "An API outlives the first client written against it.\n\nPick plural nouns, paginate every list from day one, and keep error bodies to a single predictable shape.",
		category: "web",
		tags:     []string{"rest", "api-design"},
	},
	{
		title:    "MongoDB Schema Design for Blogs",
		excerpt:  "When to embed, when to reference.",
		content:  "Comments are the classic embedding question.\n\nReference them in their own collection once they grow unbounded, and keep the id list on the post for cheap counts.",
		category: "databases",
		tags:     []string{"mongodb", "schema"},
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	users := mongodb.NewUserRepository(db)
	posts := mongodb.NewPostRepository(db)

	admin, err := ensureUser(ctx, users, "admin", "admin@example.com", "admin123", entity.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("admin ready: id=%s email=%s password=admin123\n", admin.ID.Hex(), admin.Email)

	author, err := ensureUser(ctx, users, "demo", "demo@example.com", "demo123", entity.RoleUser)
	if err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
	fmt.Printf("demo user ready: id=%s email=%s password=demo123\n", author.ID.Hex(), author.Email)

	for _, s := range samples {
		slug := helpers.Slugify(s.title)
		if _, err := posts.GetBySlug(ctx, slug); err == nil {
			fmt.Printf("post exists, skipping: %s\n", slug)
			continue
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("failed to check slug %s: %v", slug, err)
		}
		now := time.Now().UTC()
		p := &entity.Post{
			Title:       s.title,
			Content:     s.content,
			Excerpt:     s.excerpt,
			Slug:        slug,
			AuthorID:    author.ID,
			Tags:        s.tags,
			Category:    s.category,
			Status:      entity.StatusPublished,
			PublishedAt: &now,
		}
		if err := posts.Create(ctx, p); err != nil {
			log.Fatalf("failed to seed post %s: %v", slug, err)
		}
		fmt.Printf("seeded post: %s\n", slug)
	}
}

func ensureUser(ctx context.Context, users repository.UserRepository, username, email, password, role string) (*entity.User, error) {
	if u, err := users.GetByEmail(ctx, email); err == nil {
		return u, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
