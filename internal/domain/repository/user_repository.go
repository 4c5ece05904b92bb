package repository

import (
	"context"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// Delete removes the user; recipes, tags and ingredients cascade in the DB.
	Delete(ctx context.Context, id string) error
}
