package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ParthMistry57/Blog-application/internal/application"
	"github.com/ParthMistry57/Blog-application/internal/interface/middleware"
	"github.com/ParthMistry57/Blog-application/pkg/response"
	"github.com/ParthMistry57/Blog-application/pkg/validation"
)

// PostHandler serves the post CRUD, listing, and like endpoints.
type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

func queryInt(c *gin.Context, name string, def int64) int64 {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// List is the public listing: published posts only.
// GET /posts?page&limit&category&tag&search
func (h *PostHandler) List(c *gin.Context) {
	page, err := h.Svc.List(c.Request.Context(), application.ListPostsInput{
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// GetBySlug is the canonical public single-post lookup; it increments the
// view counter.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.Svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

// GetByID serves the edit form; author or admin only.
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	post, err := h.Svc.GetByID(c.Request.Context(), id, middleware.UserFrom(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, post)
}

type createPostRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt" binding:"omitempty,max=500"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category" binding:"required"`
	FeaturedImage string   `json:"featuredImage" binding:"omitempty,url"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft published archived"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	post, err := h.Svc.Create(c.Request.Context(), middleware.UserFrom(c), application.CreatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Tags:          req.Tags,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

type updatePostRequest struct {
	Title         *string   `json:"title" binding:"omitempty,max=200"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt" binding:"omitempty,max=500"`
	Tags          *[]string `json:"tags"`
	Category      *string   `json:"category"`
	FeaturedImage *string   `json:"featuredImage" binding:"omitempty,url"`
	Status        *string   `json:"status" binding:"omitempty,oneof=draft published archived"`
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	var req updatePostRequest
	if err := bindStrict(c, &req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	post, err := h.Svc.Update(c.Request.Context(), id, middleware.UserFrom(c), application.UpdatePostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Tags:          req.Tags,
		Category:      req.Category,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, middleware.UserFrom(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Post deleted successfully")
}

// Like toggles the caller's like on the post.
func (h *PostHandler) Like(c *gin.Context) {
	id, ok := objectID(c, "id")
	if !ok {
		return
	}
	actor := middleware.UserFrom(c)
	liked, likes, err := h.Svc.ToggleLike(c.Request.Context(), id, actor.ID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	msg := "Post unliked"
	if liked {
		msg = "Post liked"
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": msg,
		"likes":   likes,
		"liked":   liked,
	})
}

// MyPosts lists the caller's own posts across statuses.
// GET /posts/user/posts?status&page&limit
func (h *PostHandler) MyPosts(c *gin.Context) {
	page, err := h.Svc.ListByAuthor(c.Request.Context(), middleware.UserFrom(c),
		c.Query("status"), queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}
