package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypra/recipe-api/internal/container"
	handlers "github.com/rizkypra/recipe-api/internal/interface/http"
	"github.com/rizkypra/recipe-api/internal/interface/middleware"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

// CatalogModule registers tag and ingredient routes. Both resources share
// the same surface: list (with assigned_only), detail, rename, delete.

type CatalogModule struct {
	Tags        *handlers.TagHandler
	Ingredients *handlers.IngredientHandler
	JWT         *helpers.JWTManager
}

func NewCatalogModule(tags *handlers.TagHandler, ingredients *handlers.IngredientHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Tags: tags, Ingredients: ingredients, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/tags", m.Tags.List)
		auth.GET("/tags/:id", m.Tags.Detail)
		auth.PATCH("/tags/:id", m.Tags.Update)
		auth.DELETE("/tags/:id", m.Tags.Delete)

		auth.GET("/ingredients", m.Ingredients.List)
		auth.GET("/ingredients/:id", m.Ingredients.Detail)
		auth.PATCH("/ingredients/:id", m.Ingredients.Update)
		auth.DELETE("/ingredients/:id", m.Ingredients.Delete)
	}
}
