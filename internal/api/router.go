package api

import (
	"unicode"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/leonidsliusar/webtronics-social/config"
	_ "github.com/leonidsliusar/webtronics-social/docs"
	"github.com/leonidsliusar/webtronics-social/internal/api/handler"
	"github.com/leonidsliusar/webtronics-social/internal/api/middleware"
	"github.com/leonidsliusar/webtronics-social/internal/service"
)

const serviceName = "webtronics-social"

// validPassword: at least 8 chars with an upper, a lower and a digit.
func validPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func NewRouter(cfg *config.Config, h *handler.Handler, tokens *service.TokenService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("password", validPassword)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(otelgin.Middleware(serviceName))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/login/token", middleware.RateLimit(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst), h.Login)
	r.POST("/refresh", h.Refresh)
	r.POST("/logout", h.Logout)
	r.POST("/reg", h.Register)

	post := r.Group("/post", middleware.Auth(tokens))
	{
		post.GET("", h.ListPosts)
		post.GET("/:id", h.GetPost)
		post.POST("", h.CreatePost)
		post.PUT("/:id", h.UpdatePost)
		post.DELETE("/:id", h.DeletePost)

		post.POST("/:id/like", h.Like)
		post.DELETE("/:id/like", h.Unlike)
		post.POST("/:id/dis", h.Dislike)
		post.DELETE("/:id/dis", h.Undislike)
		post.GET("/:id/total_rate", h.TotalRate)
	}

	return r
}
