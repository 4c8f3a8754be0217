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

// AuthHandler serves registration, login, and the caller's own profile.
type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,pwd"`
	FirstName string `json:"firstName" binding:"omitempty,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,max=50"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    u,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    u,
	})
}

// Me returns the user attached by the auth gate; no extra lookup.
func (h *AuthHandler) Me(c *gin.Context) {
	response.JSON(c, http.StatusOK, middleware.UserFrom(c))
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	Avatar    *string `json:"avatar" binding:"omitempty,url"`
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := bindStrict(c, &req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	actor := middleware.UserFrom(c)
	u, err := h.Svc.UpdateProfile(c.Request.Context(), actor.ID, application.UpdateProfileInput{
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
