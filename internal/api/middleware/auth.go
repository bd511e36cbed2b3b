package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leonidsliusar/webtronics-social/internal/model"
	"github.com/leonidsliusar/webtronics-social/internal/service"
	"github.com/leonidsliusar/webtronics-social/pkg/response"
)

const UserKey = "user"

// Auth resolves the bearer token into a user and stores it on the context.
func Auth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, service.ErrInvalidCredential.Error())
			return
		}
		user, err := tokens.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, service.ErrInvalidCredential.Error())
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth. Only valid on routes
// behind it.
func CurrentUser(c *gin.Context) *model.User {
	return c.MustGet(UserKey).(*model.User)
}
