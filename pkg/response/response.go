package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonidsliusar/webtronics-social/pkg/logger"

	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Detail string `json:"detail"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func BadRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Error{Detail: detail})
}

func Unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, Error{Detail: detail})
}

func Forbidden(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Error{Detail: detail})
}

func NotFound(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Error{Detail: detail})
}

func BadGateway(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadGateway, Error{Detail: detail})
}

func InternalError(c *gin.Context, err error) {
	logger.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, Error{Detail: "internal server error"})
}
