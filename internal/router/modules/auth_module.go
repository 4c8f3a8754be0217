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

// AuthModule wires registration, login, and the caller's own profile.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me, PUT /api/auth/profile
type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/auth/me", m.Handler.Me)
		auth.PUT("/auth/profile", m.Handler.UpdateProfile)
	}
}
