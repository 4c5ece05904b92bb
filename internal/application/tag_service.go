package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	repo "github.com/rizkypra/recipe-api/internal/domain/repository"
)

var ErrTagNotFound = errors.New("tag not found")

type TagService struct {
	Repo   repo.TagRepository
	Logger *logrus.Logger
}

func NewTagService(r repo.TagRepository, logger *logrus.Logger) *TagService {
	return &TagService{Repo: r, Logger: logger}
}

func (s *TagService) List(ctx context.Context, userID string, assignedOnly bool) ([]entity.Tag, error) {
	return s.Repo.List(ctx, userID, assignedOnly)
}

func (s *TagService) Get(ctx context.Context, userID, id string) (*entity.Tag, error) {
	t, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TagService) UpdateName(ctx context.Context, userID, id, name string) (*entity.Tag, error) {
	t, err := s.Repo.UpdateName(ctx, userID, id, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}
