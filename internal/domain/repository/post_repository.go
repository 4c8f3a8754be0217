package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
)

// Post list ordering.
const (
	SortByPublishedAt = "publishedAt"
	SortByCreatedAt   = "createdAt"
)

// PostFilter narrows a post listing. Zero values mean "no constraint".
// Search is a case-insensitive substring match over title OR content.
type PostFilter struct {
	Status   string
	Category string
	Tag      string
	Search   string
	AuthorID primitive.ObjectID
	SortBy   string // descending; defaults to createdAt
	Skip     int64
	Limit    int64
}

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, f PostFilter) ([]entity.Post, int64, error)
	// RecentByAuthor returns the author's newest posts by publish date,
	// capped at limit, for the public profile view.
	RecentByAuthor(ctx context.Context, authorID primitive.ObjectID, limit int64) ([]entity.Post, error)
	// DeleteWithComments removes the post and every comment referencing it
	// as a single transaction.
	DeleteWithComments(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
