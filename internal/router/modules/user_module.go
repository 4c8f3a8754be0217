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

// UserModule wires the user directory and moderation routes.
// Public: GET /api/users/:id
// Protected: PUT /api/users/:id (self or admin, checked in the service)
// Admin: GET /api/users, PUT /api/users/:id/role, PUT /api/users/:id/status,
// DELETE /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, users repository.UserRepository, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, Users: users, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.PUT("/users/:id", m.Handler.Update)
	}

	admin := rg.Group("/")
	admin.Use(middleware.AdminAuth(m.Users, m.JWT))
	{
		admin.GET("/users", m.Handler.List)
		admin.PUT("/users/:id/role", m.Handler.UpdateRole)
		admin.PUT("/users/:id/status", m.Handler.UpdateStatus)
		admin.DELETE("/users/:id", m.Handler.Delete)
	}
}
