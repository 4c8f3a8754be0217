package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post status lifecycle: draft -> published -> archived.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatus reports whether s is a known post status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// Post is a blog post document. Slug is unique across all posts and only
// regenerated when the title changes. PublishedAt is stamped exactly once,
// on the first transition to published.
type Post struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title         string               `bson:"title" json:"title"`
	Content       string               `bson:"content" json:"content"`
	Excerpt       string               `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Slug          string               `bson:"slug" json:"slug"`
	AuthorID      primitive.ObjectID   `bson:"author" json:"-"`
	Tags          []string             `bson:"tags" json:"tags"`
	Category      string               `bson:"category" json:"category"`
	FeaturedImage string               `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Status        string               `bson:"status" json:"status"`
	PublishedAt   *time.Time           `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	Views         int64                `bson:"views" json:"views"`
	Likes         []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments      []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
