package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ParthMistry57/Blog-application/internal/domain/entity"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

// Context keys set by Auth on success.
const (
	CtxUserKey   = "authUser"
	CtxUserIDKey = "userID"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

// authenticate resolves "Authorization: Bearer <token>" into a live user
// record attached to the Gin context. Header problems fail before any
// database read; a verified token whose user no longer exists (or was
// deactivated) is treated as invalid, not as a distinct error. Aborts the
// request and reports false on failure.
func authenticate(c *gin.Context, users repository.UserRepository, jwt *helpers.JWTManager) bool {
	header := c.GetHeader("Authorization")
	if header == "" {
		abortUnauthorized(c, "No token, authorization denied")
		return false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		abortUnauthorized(c, "No token, authorization denied")
		return false
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		abortUnauthorized(c, "Token is not valid")
		return false
	}
	uid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		abortUnauthorized(c, "Token is not valid")
		return false
	}

	u, err := users.GetByID(c.Request.Context(), uid)
	if err != nil || !u.IsActive {
		abortUnauthorized(c, "Token is not valid")
		return false
	}

	c.Set(CtxUserKey, u)
	c.Set(CtxUserIDKey, u.ID.Hex())
	return true
}

// Auth gates a route group on a valid bearer token. On success the user,
// password excluded by serialization, is available via UserFrom.
func Auth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, users, jwt) {
			return
		}
		c.Next()
	}
}

// AdminAuth authenticates and then requires the admin role.
func AdminAuth(users repository.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, users, jwt) {
			return
		}
		u := UserFrom(c)
		if u == nil || !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin role required."})
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user attached by Auth, or nil.
func UserFrom(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
