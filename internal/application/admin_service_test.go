package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
)

func newAdminFixture(t *testing.T) (*AdminService, *PostService, *CommentService, *entity.User) {
	t.Helper()
	users, posts, comments := newFakes()
	logger := testLogger()

	author := &entity.User{Username: "alice", Email: "alice@example.com", Role: entity.RoleUser, IsActive: true}
	require.NoError(t, users.Create(context.Background(), author))

	svc := NewAdminService(users, posts, comments, &fakeAdmin{users.fakeStore}, logger)
	ps := NewPostService(posts, users, comments, logger)
	cs := NewCommentService(comments, posts, users, logger)
	return svc, ps, cs, author
}

func TestStatsCountsEveryCollection(t *testing.T) {
	svc, ps, cs, author := newAdminFixture(t)
	ctx := context.Background()

	p, err := ps.Create(ctx, author, CreatePostInput{Title: "Counted", Content: "body", Category: "general"})
	require.NoError(t, err)
	_, err = cs.Add(ctx, p.ID, author, "me too")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.Posts)
	assert.Equal(t, int64(1), stats.Comments)
	assert.Equal(t, int64(3), stats.Total)
}

func TestClearDatabaseEmptiesEveryCollection(t *testing.T) {
	svc, ps, cs, author := newAdminFixture(t)
	ctx := context.Background()

	p, err := ps.Create(ctx, author, CreatePostInput{Title: "Doomed", Content: "body", Category: "general"})
	require.NoError(t, err)
	_, err = cs.Add(ctx, p.ID, author, "gone soon")
	require.NoError(t, err)

	cleared, err := svc.ClearDatabase(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"users", "posts", "comments"}, cleared)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}
