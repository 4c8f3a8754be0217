package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ParthMistry57/Blog-application/internal/domain/repository"
	handlers "github.com/ParthMistry57/Blog-application/internal/interface/http"
	"github.com/ParthMistry57/Blog-application/internal/interface/middleware"
	"github.com/ParthMistry57/Blog-application/pkg/helpers"
)

// AdminModule wires the operational endpoints, all admin-gated.
// GET /api/admin/stats, DELETE /api/admin/clear-database
type AdminModule struct {
	Handler *handlers.AdminHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(m.Users, m.JWT))
	{
		admin.GET("/stats", m.Handler.Stats)
		admin.DELETE("/clear-database", m.Handler.ClearDatabase)
	}
}
