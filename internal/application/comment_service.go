package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
)

// CommentService manages the comments attached to posts.
type CommentService struct {
	Comments repository.CommentRepository
	Posts    repository.PostRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Comments: comments, Posts: posts, Users: users, Logger: logger}
}

// ListForPost returns a post's comments oldest first, authors populated.
func (s *CommentService) ListForPost(ctx context.Context, postID primitive.ObjectID) ([]CommentView, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{Comment: c, Author: newAuthorView(users[c.AuthorID], false)})
	}
	return views, nil
}

// Add appends a comment to a post.
func (s *CommentService) Add(ctx context.Context, postID primitive.ObjectID, author *entity.User, content string) (*CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}

	c := &entity.Comment{PostID: postID, AuthorID: author.ID, Content: content}
	if err := s.Comments.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	return &CommentView{Comment: *c, Author: newAuthorView(author, false)}, nil
}

// Delete removes a comment. Allowed for the comment author, the post
// author, or an admin.
func (s *CommentService) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	c, err := s.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: comment", ErrNotFound)
		}
		return err
	}

	allowed := c.AuthorID == actor.ID || actor.IsAdmin()
	if !allowed {
		if p, err := s.Posts.GetByID(ctx, c.PostID); err == nil && p.AuthorID == actor.ID {
			allowed = true
		}
	}
	if !allowed {
		return fmt.Errorf("%w: not authorized to delete this comment", ErrForbidden)
	}

	return s.Comments.Delete(ctx, id)
}
