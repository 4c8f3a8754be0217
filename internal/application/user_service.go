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
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

// UserService covers registration, login, profiles, and the admin-facing
// user directory and moderation operations.
type UserService struct {
	Users  repository.UserRepository
	Posts  repository.PostRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, posts repository.PostRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Posts: posts, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a user and issues a bearer token. Duplicate username or
// email surfaces as a conflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := s.Users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", fmt.Errorf("%w: username or email already in use", ErrConflict)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Username:  username,
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Role:      entity.RoleUser,
		IsActive:  true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost the race against a concurrent registration
			return nil, "", fmt.Errorf("%w: username or email already in use", ErrConflict)
		}
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(u.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "username": u.Username}).Info("user registered")
	return u, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller; deactivated accounts are
// rejected outright.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, "", fmt.Errorf("%w: account is deactivated", ErrForbidden)
	}

	token, _, err := s.JWT.Generate(u.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Bio       *string
	Avatar    *string
}

// UpdateProfile applies the allow-listed profile fields to the caller's own
// record. Absent fields are left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// List returns the paginated admin directory, optionally filtered by a
// substring search over username, names, and email.
func (s *UserService) List(ctx context.Context, page, limit int64, search string) (*UserPage, error) {
	skip, page, limit := pageWindow(page, limit)
	users, total, err := s.Users.List(ctx, repository.UserFilter{Search: search, Skip: skip, Limit: limit})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.User{}
	}
	return &UserPage{
		Users:       users,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

// PublicProfile is a user plus their most recent posts.
type PublicProfile struct {
	entity.User
	RecentPosts []entity.Post `json:"posts"`
}

// GetPublicProfile returns the profile anyone may see: the user record
// (password excluded by serialization) and up to ten recent posts.
func (s *UserService) GetPublicProfile(ctx context.Context, id primitive.ObjectID) (*PublicProfile, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	posts, err := s.Posts.RecentByAuthor(ctx, id, 10)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []entity.Post{}
	}
	return &PublicProfile{User: *u, RecentPosts: posts}, nil
}

// UpdateUser applies the allow-listed profile fields to another user's
// record; permitted for the user themselves or an admin.
func (s *UserService) UpdateUser(ctx context.Context, targetID primitive.ObjectID, actor *entity.User, in UpdateProfileInput) (*entity.User, error) {
	if targetID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: not authorized to update this profile", ErrForbidden)
	}
	return s.UpdateProfile(ctx, targetID, in)
}

// ChangeRole sets the target's role. Admin-only at the route level;
// self-change is forbidden even for admins.
func (s *UserService) ChangeRole(ctx context.Context, targetID primitive.ObjectID, actor *entity.User, role string) (*entity.User, error) {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: invalid role", ErrValidation)
	}
	if targetID == actor.ID {
		return nil, fmt.Errorf("%w: cannot change your own role", ErrForbidden)
	}
	u, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	u.Role = role
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": targetID.Hex(), "role": role, "by": actor.ID.Hex()}).Info("user role changed")
	return u, nil
}

// ChangeStatus toggles the target's active flag; self-change is forbidden.
func (s *UserService) ChangeStatus(ctx context.Context, targetID primitive.ObjectID, actor *entity.User, isActive bool) (*entity.User, error) {
	if targetID == actor.ID {
		return nil, fmt.Errorf("%w: cannot change your own status", ErrForbidden)
	}
	u, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	u.IsActive = isActive
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the target user along with their posts and comments.
// Self-delete is forbidden.
func (s *UserService) Delete(ctx context.Context, targetID primitive.ObjectID, actor *entity.User) error {
	if targetID == actor.ID {
		return fmt.Errorf("%w: cannot delete your own account", ErrForbidden)
	}
	if _, err := s.Users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: user", ErrNotFound)
		}
		return err
	}
	if err := s.Users.DeleteCascade(ctx, targetID); err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": targetID.Hex(), "by": actor.ID.Hex()}).Info("user deleted")
	return nil
}
