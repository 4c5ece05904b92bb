package router

import (
	"github.com/rizkypra/recipe-api/internal/application"
	"github.com/rizkypra/recipe-api/internal/container"
	pginfra "github.com/rizkypra/recipe-api/internal/infrastructure/postgres"
	handlers "github.com/rizkypra/recipe-api/internal/interface/http"
	"github.com/rizkypra/recipe-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup after the container has
// been populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	tagRepo := pginfra.NewTagRepository(pool)
	ingredientRepo := pginfra.NewIngredientRepository(pool)
	recipeRepo := pginfra.NewRecipeRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	recipeSvc := application.NewRecipeService(
		recipeRepo,
		tagRepo,
		ingredientRepo,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetES(),
		cfg.ESRecipesIndex,
		logger,
	)
	tagSvc := application.NewTagService(tagRepo, logger)
	ingredientSvc := application.NewIngredientService(ingredientRepo, logger)

	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	recipeHandler := handlers.NewRecipeHandler(recipeSvc, logger)
	tagHandler := handlers.NewTagHandler(tagSvc, logger)
	ingredientHandler := handlers.NewIngredientHandler(ingredientSvc, logger)

	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewRecipeModule(recipeHandler, container.GetJWT()))
	r.Add(modules.NewCatalogModule(tagHandler, ingredientHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
