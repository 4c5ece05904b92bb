package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypra/recipe-api/internal/container"
	handlers "github.com/rizkypra/recipe-api/internal/interface/http"
	"github.com/rizkypra/recipe-api/internal/interface/middleware"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

// RecipeModule registers recipe CRUD, the image-upload action and search.
// Everything here requires an authenticated session.

type RecipeModule struct {
	Handler *handlers.RecipeHandler
	JWT     *helpers.JWTManager
}

func NewRecipeModule(h *handlers.RecipeHandler, jwt *helpers.JWTManager) *RecipeModule {
	return &RecipeModule{Handler: h, JWT: jwt}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/recipes", m.Handler.List)
		auth.POST("/recipes", m.Handler.Create)
		auth.GET("/recipes/search", m.Handler.Search)
		auth.GET("/recipes/:id", m.Handler.Detail)
		auth.PUT("/recipes/:id", m.Handler.Update)
		auth.PATCH("/recipes/:id", m.Handler.Update)
		auth.DELETE("/recipes/:id", m.Handler.Delete)
		auth.POST("/recipes/:id/upload-image", m.Handler.UploadImage)
	}
}
