package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	repo "github.com/rizkypra/recipe-api/internal/domain/repository"
)

var ErrIngredientNotFound = errors.New("ingredient not found")

type IngredientService struct {
	Repo   repo.IngredientRepository
	Logger *logrus.Logger
}

func NewIngredientService(r repo.IngredientRepository, logger *logrus.Logger) *IngredientService {
	return &IngredientService{Repo: r, Logger: logger}
}

func (s *IngredientService) List(ctx context.Context, userID string, assignedOnly bool) ([]entity.Ingredient, error) {
	return s.Repo.List(ctx, userID, assignedOnly)
}

func (s *IngredientService) Get(ctx context.Context, userID, id string) (*entity.Ingredient, error) {
	i, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *IngredientService) UpdateName(ctx context.Context, userID, id, name string) (*entity.Ingredient, error) {
	i, err := s.Repo.UpdateName(ctx, userID, id, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *IngredientService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}
	return nil
}
