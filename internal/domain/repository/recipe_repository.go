package repository

import (
	"context"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
)

// RecipeFilter narrows List results. Empty slices mean no filtering.
type RecipeFilter struct {
	TagIDs        []string
	IngredientIDs []string
}

// RecipeRepository defines recipe persistence including the many-to-many
// links to tags and ingredients (recipe_tags / recipe_ingredients).
type RecipeRepository interface {
	List(ctx context.Context, userID string, f RecipeFilter) ([]entity.Recipe, error)
	// GetByID loads the recipe with its tags and ingredients attached.
	GetByID(ctx context.Context, userID, id string) (*entity.Recipe, error)
	Create(ctx context.Context, r *entity.Recipe) error
	Update(ctx context.Context, r *entity.Recipe) error
	Delete(ctx context.Context, userID, id string) error
	SetImage(ctx context.Context, userID, id, imageURL string) error

	AddTag(ctx context.Context, recipeID, tagID string) error
	ClearTags(ctx context.Context, recipeID string) error
	AddIngredient(ctx context.Context, recipeID, ingredientID string) error
	ClearIngredients(ctx context.Context, recipeID string) error
}
