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

// CommentHandler serves the per-post comment endpoints.
type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

// ListForPost returns a post's comments, oldest first.
func (h *CommentHandler) ListForPost(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	comments, err := h.Svc.ListForPost(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"comments": comments})
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	comment, err := h.Svc.Add(c.Request.Context(), id, middleware.UserFrom(c), req.Content)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, middleware.UserFrom(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Comment deleted successfully")
}
