package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]entity.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
