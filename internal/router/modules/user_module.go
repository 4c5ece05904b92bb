package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypra/recipe-api/internal/container"
	handlers "github.com/rizkypra/recipe-api/internal/interface/http"
	"github.com/rizkypra/recipe-api/internal/interface/middleware"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and auth middleware into routes
// Public: POST /api/users, POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/me, PATCH /api/me

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)     // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)   // 60 req/min per IP

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.GetProfile)
		auth.PATCH("/me", m.Handler.UpdateProfile)
	}
}
