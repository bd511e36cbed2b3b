package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leonidsliusar/webtronics-social/internal/api/middleware"
	"github.com/leonidsliusar/webtronics-social/internal/service"
	"github.com/leonidsliusar/webtronics-social/pkg/response"
)

type createPostRequest struct {
	Title   string `json:"title" binding:"required,max=60"`
	Content string `json:"content" binding:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title" binding:"omitempty,max=60"`
	Content string `json:"content"`
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return 0, false
	}
	return uint(id), true
}

// ListPosts returns a page of posts.
// @Summary List posts
// @Tags post
// @Security BearerAuth
// @Param page query int false "page" default(0)
// @Param limit query int false "page size" default(10)
// @Produce json
// @Success 200 {array} model.Post
// @Failure 404 {object} response.Error
// @Router /post [get]
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	posts, err := h.posts.List(c.Request.Context(), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	if len(posts) == 0 {
		response.NotFound(c, "posts do not exist")
		return
	}
	response.Success(c, posts)
}

// GetPost returns one post.
// @Summary Get post
// @Tags post
// @Security BearerAuth
// @Param id path int true "post id"
// @Produce json
// @Success 200 {object} model.Post
// @Failure 404 {object} response.Error
// @Router /post/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, post)
}

// CreatePost creates a post owned by the caller.
// @Summary Create post
// @Tags post
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body createPostRequest true "post"
// @Success 200 {object} model.Post
// @Failure 400 {object} response.Error
// @Router /post [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.posts.Create(c.Request.Context(), middleware.CurrentUser(c), req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost edits a post under the ownership guard.
// @Summary Update post
// @Tags post
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "post id"
// @Param request body updatePostRequest true "fields to change"
// @Success 200 {object} model.Post
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /post/{id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.posts.Update(c.Request.Context(), middleware.CurrentUser(c), id,
		service.UpdatePostInput{Title: req.Title, Content: req.Content})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost removes a post under the ownership guard.
// @Summary Delete post
// @Tags post
// @Security BearerAuth
// @Param id path int true "post id"
// @Success 204
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /post/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
