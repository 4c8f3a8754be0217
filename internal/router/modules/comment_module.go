package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ParthMistry57/Blog-application/internal/container"
	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
	handlers "github.com/ParthMistry57/Blog-application/internal/interface/http"
	"github.com/ParthMistry57/Blog-application/internal/interface/middleware"
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

// CommentModule wires the comment read and moderation routes.
// Public: GET /api/comments/post/:id
// Protected: DELETE /api/comments/:id
type CommentModule struct {
	Handler *handlers.CommentHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewCommentModule(h *handlers.CommentHandler, users repository.UserRepository, jwt *helpers.JWTManager) *CommentModule {
	return &CommentModule{Handler: h, Users: users, JWT: jwt}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments/post/:id", m.Handler.ListForPost)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.DELETE("/comments/:id", m.Handler.Delete)
	}
}
