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

// PostModule wires the post catalog and authoring routes.
// Public: GET /api/posts, GET /api/posts/:slug
// Protected: POST /api/posts, GET /api/posts/by-id/:id, PUT /api/posts/:id,
// DELETE /api/posts/:id, POST /api/posts/:id/like, GET /api/posts/user/posts,
// POST /api/posts/:id/comments
type PostModule struct {
	Handler  *handlers.PostHandler
	Comments *handlers.CommentHandler
	Users    repository.UserRepository
	JWT      *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, ch *handlers.CommentHandler, users repository.UserRepository, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, Comments: ch, Users: users, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/:slug", m.Handler.GetBySlug)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.GET("/posts/by-id/:id", m.Handler.GetByID)
		auth.GET("/posts/user/posts", m.Handler.MyPosts)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
		auth.POST("/posts/:id/like", m.Handler.Like)
		auth.POST("/posts/:id/comments", m.Comments.Create)
	}
}
