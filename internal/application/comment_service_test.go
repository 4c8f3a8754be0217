package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
)

func TestAddCommentValidatesContentAndPost(t *testing.T) {
	svc, cs, author, _ := newPostFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, author, CreatePostInput{Title: "Discussed", Content: "body", Category: "general"})
	require.NoError(t, err)

	_, err = cs.Add(ctx, p.ID, author, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = cs.Add(ctx, primitive.NewObjectID(), author, "hello")
	assert.ErrorIs(t, err, ErrNotFound)

	c, err := cs.Add(ctx, p.ID, author, "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", c.Content, "content is trimmed")
	require.NotNil(t, c.Author)
	assert.Equal(t, author.Username, c.Author.Username)
}

func TestListForPostOldestFirst(t *testing.T) {
	svc, cs, author, _ := newPostFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, author, CreatePostInput{Title: "Busy thread", Content: "body", Category: "general"})
	require.NoError(t, err)
	for _, text := range []string{"first", "second", "third"} {
		_, err := cs.Add(ctx, p.ID, author, text)
		require.NoError(t, err)
	}

	comments, err := cs.ListForPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)

	_, err = cs.ListForPost(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCommentPermissions(t *testing.T) {
	svc, cs, author, admin := newPostFixture(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, author, CreatePostInput{Title: "Moderated thread", Content: "body", Category: "general"})
	require.NoError(t, err)

	commenter := &entity.User{ID: primitive.NewObjectID(), Username: "carol", Role: entity.RoleUser, IsActive: true}
	stranger := &entity.User{ID: primitive.NewObjectID(), Username: "mallory", Role: entity.RoleUser, IsActive: true}

	c1, err := cs.Add(ctx, p.ID, commenter, "by commenter")
	require.NoError(t, err)
	c2, err := cs.Add(ctx, p.ID, commenter, "for post author")
	require.NoError(t, err)
	c3, err := cs.Add(ctx, p.ID, commenter, "for admin")
	require.NoError(t, err)

	err = cs.Delete(ctx, c1.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.NoError(t, cs.Delete(ctx, c1.ID, commenter), "comment author may delete")
	assert.NoError(t, cs.Delete(ctx, c2.ID, author), "post author may moderate")
	assert.NoError(t, cs.Delete(ctx, c3.ID, admin), "admin may moderate")

	err = cs.Delete(ctx, c3.ID, admin)
	assert.ErrorIs(t, err, ErrNotFound)
}
