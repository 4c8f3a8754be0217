package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ParthMistry57/Blog-application/internal/application"
	"github.com/ParthMistry57/Blog-application/pkg/response"
)

// AdminHandler serves the operational endpoints.
type AdminHandler struct {
	Svc    *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

func (h *AdminHandler) ClearDatabase(c *gin.Context) {
	cleared, err := h.Svc.ClearDatabase(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"success":            true,
		"message":            "Database cleared successfully",
		"clearedCollections": cleared,
	})
}
