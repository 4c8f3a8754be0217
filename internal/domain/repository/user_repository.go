package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// UserFilter narrows a directory listing. Search is a case-insensitive
// substring match over username, first/last name and email.
type UserFilter struct {
	Search string
	Skip   int64
	Limit  int64
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context, f UserFilter) ([]entity.User, int64, error)
	// DeleteCascade removes the user together with their posts, the comments
	// on those posts, and the comments they authored elsewhere.
	DeleteCascade(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
