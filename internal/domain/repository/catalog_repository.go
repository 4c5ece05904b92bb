package repository

import (
	"context"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
)

// All catalog queries are scoped by the owning user's id; rows belonging to
// other users are never visible through these interfaces.

// TagRepository defines tag persistence operations.
type TagRepository interface {
	// List returns the user's tags ordered by name descending (id descending
	// as tie-break). With assignedOnly, only tags linked to at least one
	// recipe are returned, each exactly once.
	List(ctx context.Context, userID string, assignedOnly bool) ([]entity.Tag, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Tag, error)
	// GetOrCreate finds the user's tag by name or creates it; created reports
	// which of the two happened.
	GetOrCreate(ctx context.Context, userID, name string) (tag *entity.Tag, created bool, err error)
	Create(ctx context.Context, t *entity.Tag) error
	UpdateName(ctx context.Context, userID, id, name string) (*entity.Tag, error)
	Delete(ctx context.Context, userID, id string) error
}

// IngredientRepository mirrors TagRepository for ingredients.
type IngredientRepository interface {
	List(ctx context.Context, userID string, assignedOnly bool) ([]entity.Ingredient, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Ingredient, error)
	GetOrCreate(ctx context.Context, userID, name string) (ing *entity.Ingredient, created bool, err error)
	Create(ctx context.Context, i *entity.Ingredient) error
	UpdateName(ctx context.Context, userID, id, name string) (*entity.Ingredient, error)
	Delete(ctx context.Context, userID, id string) error
}
