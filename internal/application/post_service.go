package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

// maxSlugAttempts caps the collision probe loop; past the cap a short
// random suffix guarantees termination without another round-trip per
// candidate.
const maxSlugAttempts = 50

// PostService owns the post lifecycle: slug assignment, the
// publish-timestamp rule, listing/filtering, likes, and cascade deletes.
type PostService struct {
	Posts    repository.PostRepository
	Users    repository.UserRepository
	Comments repository.CommentRepository
	Logger   *logrus.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, comments repository.CommentRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Comments: comments, Logger: logger}
}

// resolveSlug derives the base slug from title and probes base, base-1,
// base-2, ... until a candidate is free or held by the record itself.
func (s *PostService) resolveSlug(ctx context.Context, title string, selfID primitive.ObjectID) (string, error) {
	base := helpers.Slugify(title)
	candidate := base

	for n := 0; n < maxSlugAttempts; n++ {
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		existing, err := s.Posts.GetBySlug(ctx, candidate)
		if errors.Is(err, repository.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if existing.ID == selfID {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

type CreatePostInput struct {
	Title         string
	Content       string
	Excerpt       string
	Tags          []string
	Category      string
	FeaturedImage string
	Status        string
}

// Create persists a new post for the author. Status defaults to draft; a
// post created as published gets its publishedAt stamped immediately.
func (s *PostService) Create(ctx context.Context, author *entity.User, in CreatePostInput) (*PostView, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, in.Status)
	}

	slug, err := s.resolveSlug(ctx, in.Title, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	p := &entity.Post{
		Title:         strings.TrimSpace(in.Title),
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Slug:          slug,
		AuthorID:      author.ID,
		Tags:          normalizeTags(in.Tags),
		Category:      strings.TrimSpace(in.Category),
		FeaturedImage: in.FeaturedImage,
		Status:        status,
	}
	if status == entity.StatusPublished {
		now := time.Now()
		p.PublishedAt = &now
	}

	if err := s.Posts.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// slug race against a concurrent save
			return nil, fmt.Errorf("%w: slug already taken", ErrConflict)
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID.Hex(), "slug": p.Slug, "status": p.Status}).Info("post created")
	return &PostView{Post: *p, Author: newAuthorView(author, false)}, nil
}

type UpdatePostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Tags          *[]string
	Category      *string
	FeaturedImage *string
	Status        *string
}

// Update applies the allow-listed fields. Title, content, and category
// are required at creation and cannot be blanked here. Only a title
// change regenerates the slug; the first transition to published stamps
// publishedAt, and later saves never touch it again.
func (s *PostService) Update(ctx context.Context, id primitive.ObjectID, actor *entity.User, in UpdatePostInput) (*PostView, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	if p.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: not authorized to update this post", ErrForbidden)
	}

	titleChanged := false
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		if title != p.Title {
			p.Title = title
			titleChanged = true
		}
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", ErrValidation)
		}
		p.Content = *in.Content
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Tags != nil {
		p.Tags = normalizeTags(*in.Tags)
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", ErrValidation)
		}
		p.Category = category
	}
	if in.FeaturedImage != nil {
		p.FeaturedImage = *in.FeaturedImage
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *in.Status)
		}
		if *in.Status == entity.StatusPublished && p.Status != entity.StatusPublished && p.PublishedAt == nil {
			now := time.Now()
			p.PublishedAt = &now
		}
		p.Status = *in.Status
	}

	if titleChanged || p.Slug == "" {
		slug, err := s.resolveSlug(ctx, p.Title, p.ID)
		if err != nil {
			return nil, err
		}
		p.Slug = slug
	}

	if err := s.Posts.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug already taken", ErrConflict)
		}
		return nil, err
	}

	author, err := s.Users.GetByID(ctx, p.AuthorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &PostView{Post: *p, Author: newAuthorView(author, false)}, nil
}

// Delete removes the post and its comments; author or admin only.
func (s *PostService) Delete(ctx context.Context, id primitive.ObjectID, actor *entity.User) error {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: post", ErrNotFound)
		}
		return err
	}
	if p.AuthorID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("%w: not authorized to delete this post", ErrForbidden)
	}
	if err := s.Posts.DeleteWithComments(ctx, id); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": id.Hex(), "by": actor.ID.Hex()}).Info("post deleted")
	return nil
}

type ListPostsInput struct {
	Page     int64
	Limit    int64
	Category string
	Tag      string
	Search   string
}

// List returns the public page of published posts, newest publish first.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (*PostPage, error) {
	skip, page, limit := pageWindow(in.Page, in.Limit)
	posts, total, err := s.Posts.List(ctx, repository.PostFilter{
		Status:   entity.StatusPublished,
		Category: in.Category,
		Tag:      in.Tag,
		Search:   in.Search,
		SortBy:   repository.SortByPublishedAt,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	authors, err := s.Users.GetByIDs(ctx, authorIDs(posts))
	if err != nil {
		return nil, err
	}
	return &PostPage{
		Posts:       newPostViews(posts, authors),
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// ListByAuthor returns the author's own posts across all statuses (or one
// status), newest created first.
func (s *PostService) ListByAuthor(ctx context.Context, author *entity.User, status string, page, limit int64) (*PostPage, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	skip, page, limit := pageWindow(page, limit)
	posts, total, err := s.Posts.List(ctx, repository.PostFilter{
		AuthorID: author.ID,
		Status:   status,
		SortBy:   repository.SortByCreatedAt,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	authors := map[primitive.ObjectID]*entity.User{author.ID: author}
	return &PostPage{
		Posts:       newPostViews(posts, authors),
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetBySlug is the canonical public lookup: published posts only, author
// and comments populated, view counter incremented as a side effect.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*PostDetailView, error) {
	p, err := s.Posts.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	if p.Status != entity.StatusPublished {
		return nil, fmt.Errorf("%w: post", ErrNotFound)
	}

	if err := s.Posts.IncrementViews(ctx, p.ID); err != nil {
		return nil, err
	}
	p.Views++

	comments, err := s.Comments.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	ids := authorIDs([]entity.Post{*p})
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
	return &PostDetailView{
		Post:     *p,
		Author:   newAuthorView(users[p.AuthorID], true),
		Comments: views,
	}, nil
}

// GetByID serves the edit form: any status, but only for the author or an
// admin. No view-count side effect.
func (s *PostService) GetByID(ctx context.Context, id primitive.ObjectID, actor *entity.User) (*PostView, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: post", ErrNotFound)
		}
		return nil, err
	}
	if p.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: access denied", ErrForbidden)
	}
	author, err := s.Users.GetByID(ctx, p.AuthorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &PostView{Post: *p, Author: newAuthorView(author, true)}, nil
}

// ToggleLike flips the caller's membership in the like set and reports the
// action taken together with the new count.
func (s *PostService) ToggleLike(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) (liked bool, likes int, err error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, 0, fmt.Errorf("%w: post", ErrNotFound)
		}
		return false, 0, err
	}

	if p.LikedBy(userID) {
		kept := p.Likes[:0]
		for _, uid := range p.Likes {
			if uid != userID {
				kept = append(kept, uid)
			}
		}
		p.Likes = kept
		liked = false
	} else {
		p.Likes = append(p.Likes, userID)
		liked = true
	}

	if err := s.Posts.Update(ctx, p); err != nil {
		return false, 0, err
	}
	return liked, len(p.Likes), nil
}
