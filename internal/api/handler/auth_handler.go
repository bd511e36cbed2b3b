package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leonidsliusar/webtronics-social/internal/service"
	"github.com/leonidsliusar/webtronics-social/pkg/response"
)

const refreshCookie = "refresh_token"

type loginRequest struct {
	Username string `form:"username" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	FirstName string `json:"first_name" binding:"required,alpha,max=35"`
	LastName  string `json:"last_name" binding:"required,alpha,max=35"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password"`
}

// Login exchanges form credentials for an access token and a refresh cookie.
// @Summary Log in
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "email"
// @Param password formData string true "password"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} response.Error
// @Router /login/token [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Unauthorized(c, service.ErrInvalidEmail.Error())
		return
	}
	user, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) || errors.Is(err, service.ErrInvalidPassword) {
			response.Unauthorized(c, err.Error())
			return
		}
		fail(c, err)
		return
	}
	access, err := h.tokens.IssueAccess(user.Email)
	if err != nil {
		fail(c, err)
		return
	}
	refresh, expiry, err := h.tokens.IssueRefresh(user.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.SetCookie(refreshCookie, refresh, int(time.Until(expiry).Seconds()), "/", "", false, true)
	response.Success(c, tokenResponse{AccessToken: access, TokenType: "bearer"})
}

// Refresh mints a new access token from the refresh cookie.
// @Summary Refresh access token
// @Tags auth
// @Produce json
// @Success 200 {object} tokenResponse
// @Failure 401 {object} response.Error
// @Router /refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(refreshCookie)
	if err != nil {
		response.Unauthorized(c, "could not validate refresh token")
		return
	}
	user, err := h.tokens.ResolveIdentity(c.Request.Context(), refresh)
	if err != nil {
		response.Unauthorized(c, "could not validate refresh token")
		return
	}
	access, err := h.tokens.IssueAccess(user.Email)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tokenResponse{AccessToken: access, TokenType: "bearer"})
}

// Logout drops the refresh cookie.
// @Summary Log out
// @Tags auth
// @Success 200
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

// Register creates a user.
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "new user"
// @Success 200 {object} model.User
// @Failure 400 {object} response.Error
// @Router /reg [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user)
}
