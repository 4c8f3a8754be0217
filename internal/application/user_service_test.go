package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

func newUserFixture(t *testing.T) (*UserService, *PostService) {
	t.Helper()
	users, posts, comments := newFakes()
	logger := testLogger()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(users, posts, jwt, logger),
		NewPostService(posts, users, comments, logger)
}

func register(t *testing.T, svc *UserService, username, email string) *entity.User {
	t.Helper()
	u, _, err := svc.Register(context.Background(), RegisterInput{
		Username: username, Email: email, Password: "secret123",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterIssuesTokenAndDefaults(t *testing.T) {
	svc, _ := newUserFixture(t)

	u, token, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "Alice@Example.COM", Password: "secret123", FirstName: " Alice ",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email, "email is lowercased")
	assert.Equal(t, "Alice", u.FirstName)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "secret123", u.Password, "password must be stored hashed")

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UserID)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newUserFixture(t)
	register(t, svc, "alice", "alice@example.com")

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, _, err = svc.Register(context.Background(), RegisterInput{
		Username: "other", Email: "alice@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin(t *testing.T) {
	svc, _ := newUserFixture(t)
	register(t, svc, "alice", "alice@example.com")

	u, token, err := svc.Login(context.Background(), "ALICE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsDeactivated(t *testing.T) {
	svc, _ := newUserFixture(t)
	u := register(t, svc, "alice", "alice@example.com")

	admin := register(t, svc, "root", "root@example.com")
	admin.Role = entity.RoleAdmin
	_, err := svc.ChangeStatus(context.Background(), u.ID, admin, false)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateProfileAppliesOnlyProvidedFields(t *testing.T) {
	svc, _ := newUserFixture(t)
	u := register(t, svc, "alice", "alice@example.com")

	bio := "writes about Go"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "writes about Go", updated.Bio)
	assert.Equal(t, u.Username, updated.Username)
}

func TestUpdateUserRequiresSelfOrAdmin(t *testing.T) {
	svc, _ := newUserFixture(t)
	alice := register(t, svc, "alice", "alice@example.com")
	bob := register(t, svc, "bob", "bob@example.com")

	bio := "intruder"
	_, err := svc.UpdateUser(context.Background(), alice.ID, bob, UpdateProfileInput{Bio: &bio})
	assert.ErrorIs(t, err, ErrForbidden)

	bob.Role = entity.RoleAdmin
	_, err = svc.UpdateUser(context.Background(), alice.ID, bob, UpdateProfileInput{Bio: &bio})
	assert.NoError(t, err)
}

func TestChangeRole(t *testing.T) {
	svc, _ := newUserFixture(t)
	alice := register(t, svc, "alice", "alice@example.com")
	admin := register(t, svc, "root", "root@example.com")
	admin.Role = entity.RoleAdmin

	_, err := svc.ChangeRole(context.Background(), alice.ID, admin, "superuser")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ChangeRole(context.Background(), admin.ID, admin, entity.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden, "admins cannot demote themselves")

	u, err := svc.ChangeRole(context.Background(), alice.ID, admin, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

func TestChangeStatusSelfForbidden(t *testing.T) {
	svc, _ := newUserFixture(t)
	admin := register(t, svc, "root", "root@example.com")
	admin.Role = entity.RoleAdmin

	_, err := svc.ChangeStatus(context.Background(), admin.ID, admin, false)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteUserCascades(t *testing.T) {
	svc, posts := newUserFixture(t)
	ctx := context.Background()
	alice := register(t, svc, "alice", "alice@example.com")
	admin := register(t, svc, "root", "root@example.com")
	admin.Role = entity.RoleAdmin

	_, err := posts.Create(ctx, alice, CreatePostInput{
		Title: "Orphan soon", Content: "body", Category: "general", Status: entity.StatusPublished,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, alice.ID, admin))

	_, err = svc.GetPublicProfile(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := posts.Posts.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteSelfForbidden(t *testing.T) {
	svc, _ := newUserFixture(t)
	admin := register(t, svc, "root", "root@example.com")
	admin.Role = entity.RoleAdmin

	err := svc.Delete(context.Background(), admin.ID, admin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetPublicProfileIncludesRecentPosts(t *testing.T) {
	svc, posts := newUserFixture(t)
	ctx := context.Background()
	alice := register(t, svc, "alice", "alice@example.com")

	_, err := posts.Create(ctx, alice, CreatePostInput{
		Title: "Shown", Content: "body", Category: "general", Status: entity.StatusPublished,
	})
	require.NoError(t, err)
	_, err = posts.Create(ctx, alice, CreatePostInput{Title: "Draft hidden", Content: "body", Category: "general"})
	require.NoError(t, err)

	profile, err := svc.GetPublicProfile(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, profile.RecentPosts, 1)
	assert.Equal(t, "Shown", profile.RecentPosts[0].Title)
}

func TestListUsersSearch(t *testing.T) {
	svc, _ := newUserFixture(t)
	register(t, svc, "alice", "alice@example.com")
	register(t, svc, "bob", "bob@example.com")

	page, err := svc.List(context.Background(), 1, 10, "ali")
	require.NoError(t, err)
	require.Len(t, page.Users, 1)
	assert.Equal(t, "alice", page.Users[0].Username)
	assert.Equal(t, int64(1), page.Total)
}

func TestPageWindowNormalization(t *testing.T) {
	skip, page, limit := pageWindow(0, 0)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	skip, page, limit = pageWindow(3, 500)
	assert.Equal(t, int64(200), skip)
	assert.Equal(t, int64(3), page)
	assert.Equal(t, int64(100), limit)

	assert.Equal(t, int64(0), totalPages(0, 10))
	assert.Equal(t, int64(1), totalPages(10, 10))
	assert.Equal(t, int64(2), totalPages(11, 10))
}
