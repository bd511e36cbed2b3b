package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/leonidsliusar/webtronics-social/internal/cache"
	"github.com/leonidsliusar/webtronics-social/internal/service"
	"github.com/leonidsliusar/webtronics-social/pkg/response"
)

type Handler struct {
	auth    service.AuthService
	tokens  *service.TokenService
	posts   service.PostService
	ratings service.RatingService
}

func New(auth service.AuthService, tokens *service.TokenService, posts service.PostService, ratings service.RatingService) *Handler {
	return &Handler{auth: auth, tokens: tokens, posts: posts, ratings: ratings}
}

// fail translates a service error into its status code. Handlers only call
// it with errors they did not already map.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotAuthorized):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrSelfReaction),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrAlreadyDisliked),
		errors.Is(err, service.ErrNotLikedYet),
		errors.Is(err, service.ErrNotDislikedYet),
		errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, err.Error())
	case errors.Is(err, cache.ErrStoreUnavailable):
		response.BadGateway(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
