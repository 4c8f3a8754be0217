package application

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
)

// AuthorView is the populated author reference embedded in post and
// comment payloads. Bio is only carried on detail views.
type AuthorView struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	FirstName string             `json:"firstName,omitempty"`
	LastName  string             `json:"lastName,omitempty"`
	Avatar    string             `json:"avatar,omitempty"`
	Bio       string             `json:"bio,omitempty"`
}

// PostView is a post with its author populated.
type PostView struct {
	entity.Post
	Author *AuthorView `json:"author,omitempty"`
}

// PostDetailView additionally populates the comment list.
type PostDetailView struct {
	entity.Post
	Author   *AuthorView   `json:"author,omitempty"`
	Comments []CommentView `json:"comments"`
}

// CommentView is a comment with its author populated.
type CommentView struct {
	entity.Comment
	Author *AuthorView `json:"author,omitempty"`
}

// PostPage is the paginated list payload: {posts, totalPages, currentPage, total}.
type PostPage struct {
	Posts       []PostView `json:"posts"`
	TotalPages  int64      `json:"totalPages"`
	CurrentPage int64      `json:"currentPage"`
	Total       int64      `json:"total"`
}

// UserPage mirrors PostPage for the admin directory.
type UserPage struct {
	Users       []entity.User `json:"users"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
	Total       int64         `json:"total"`
}

func newAuthorView(u *entity.User, withBio bool) *AuthorView {
	if u == nil {
		return nil
	}
	v := &AuthorView{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
	if withBio {
		v.Bio = u.Bio
	}
	return v
}

func newPostViews(posts []entity.Post, authors map[primitive.ObjectID]*entity.User) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, PostView{Post: p, Author: newAuthorView(authors[p.AuthorID], false)})
	}
	return views
}

func authorIDs(posts []entity.Post) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(posts))
	ids := make([]primitive.ObjectID, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.AuthorID]; !ok {
			seen[p.AuthorID] = struct{}{}
			ids = append(ids, p.AuthorID)
		}
	}
	return ids
}

// pageWindow normalizes page/limit and returns the skip offset.
func pageWindow(page, limit int64) (skip, p, l int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return (page - 1) * limit, page, limit
}

// totalPages is ceil(total/limit).
func totalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
