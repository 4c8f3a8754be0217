package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ParthMistry57/Blog-application/internal/application"
	"github.com/ParthMistry57/Blog-application/internal/interface/middleware"
	"github.com/ParthMistry57/Blog-application/pkg/response"
	"github.com/ParthMistry57/Blog-application/pkg/validation"
)

// UserHandler serves the user directory and moderation endpoints.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// List is the admin directory.
// GET /users?page&limit&search
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.Svc.List(c.Request.Context(),
		queryInt(c, "page", 1), queryInt(c, "limit", 10), c.Query("search"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Get returns the public profile with recent posts attached.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	profile, err := h.Svc.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// Update edits another user's profile; self or admin.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := bindStrict(c, &req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateUser(c.Request.Context(), id, middleware.UserFrom(c), application.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    u,
	})
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	var req updateRoleRequest
	if err := bindStrict(c, &req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.ChangeRole(c.Request.Context(), id, middleware.UserFrom(c), req.Role)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "User role updated successfully",
		"user":    u,
	})
}

type updateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := bindStrict(c, &req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.ChangeStatus(c.Request.Context(), id, middleware.UserFrom(c), *req.IsActive)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	msg := "User deactivated successfully"
	if *req.IsActive {
		msg = "User activated successfully"
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": msg,
		"user":    u,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, middleware.UserFrom(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully")
}
