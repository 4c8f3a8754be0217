package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
)

// AdminService exposes the operational endpoints: database statistics and
// the destructive clear-database action.
type AdminService struct {
	Users    repository.UserRepository
	Posts    repository.PostRepository
	Comments repository.CommentRepository
	Store    repository.AdminRepository
	Logger   *logrus.Logger
}

func NewAdminService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository, store repository.AdminRepository, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Posts: posts, Comments: comments, Store: store, Logger: logger}
}

type Stats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
	Total    int64 `json:"total"`
}

func (s *AdminService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.Posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Users: users, Posts: posts, Comments: comments, Total: users + posts + comments}, nil
}

// ClearDatabase empties every collection as one transaction and returns
// their names.
func (s *AdminService) ClearDatabase(ctx context.Context) ([]string, error) {
	if err := s.Store.ClearAll(ctx); err != nil {
		return nil, err
	}
	s.Logger.Warn("database cleared")
	return []string{"users", "posts", "comments"}, nil
}
