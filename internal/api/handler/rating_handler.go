package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leonidsliusar/webtronics-social/internal/api/middleware"
	"github.com/leonidsliusar/webtronics-social/internal/model"
	"github.com/leonidsliusar/webtronics-social/pkg/response"
)

type mutation func(c *gin.Context, user *model.User, postID uint) (int64, error)

// rate runs one reaction mutation and answers {"<post_id>": new_count}.
func (h *Handler) rate(c *gin.Context, op mutation) {
	id, ok := postID(c)
	if !ok {
		return
	}
	count, err := op(c, middleware.CurrentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{strconv.FormatUint(uint64(id), 10): count})
}

// Like adds the caller to the like set of a post.
// @Summary Like post
// @Tags rating
// @Security BearerAuth
// @Param id path int true "post id"
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /post/{id}/like [post]
func (h *Handler) Like(c *gin.Context) {
	h.rate(c, func(c *gin.Context, user *model.User, postID uint) (int64, error) {
		return h.ratings.AddLike(c.Request.Context(), user, postID)
	})
}

// Unlike removes the caller from the like set of a post.
// @Summary Remove like
// @Tags rating
// @Security BearerAuth
// @Param id path int true "post id"
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /post/{id}/like [delete]
func (h *Handler) Unlike(c *gin.Context) {
	h.rate(c, func(c *gin.Context, user *model.User, postID uint) (int64, error) {
		return h.ratings.RemoveLike(c.Request.Context(), user, postID)
	})
}

// Dislike adds the caller to the dislike set of a post.
// @Summary Dislike post
// @Tags rating
// @Security BearerAuth
// @Param id path int true "post id"
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /post/{id}/dis [post]
func (h *Handler) Dislike(c *gin.Context) {
	h.rate(c, func(c *gin.Context, user *model.User, postID uint) (int64, error) {
		return h.ratings.AddDislike(c.Request.Context(), user, postID)
	})
}

// Undislike removes the caller from the dislike set of a post.
// @Summary Remove dislike
// @Tags rating
// @Security BearerAuth
// @Param id path int true "post id"
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /post/{id}/dis [delete]
func (h *Handler) Undislike(c *gin.Context) {
	h.rate(c, func(c *gin.Context, user *model.User, postID uint) (int64, error) {
		return h.ratings.RemoveDislike(c.Request.Context(), user, postID)
	})
}

// TotalRate reports both counts and both reviewer sets of a post.
// @Summary Rating totals
// @Tags rating
// @Security BearerAuth
// @Param id path int true "post id"
// @Produce json
// @Success 200 {object} service.RatingTotals
// @Router /post/{id}/total_rate [get]
func (h *Handler) TotalRate(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	totals, err := h.ratings.Totals(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, totals)
}
