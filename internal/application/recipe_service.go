package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	repo "github.com/rizkypra/recipe-api/internal/domain/repository"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrImageRequired  = errors.New("image file is required")
)

type RecipeService struct {
	Recipes     repo.RecipeRepository
	Tags        repo.TagRepository
	Ingredients repo.IngredientRepository
	GCS         *storage.Client
	GCSBucket   string
	ES          *elasticsearch.Client
	ESIndex     string
	Logger      *logrus.Logger
}

func NewRecipeService(recipes repo.RecipeRepository, tags repo.TagRepository, ingredients repo.IngredientRepository, gcs *storage.Client, bucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *RecipeService {
	return &RecipeService{
		Recipes:     recipes,
		Tags:        tags,
		Ingredients: ingredients,
		GCS:         gcs,
		GCSBucket:   bucket,
		ES:          es,
		ESIndex:     esIndex,
		Logger:      logger,
	}
}

// CatalogItemInput is a nested tag or ingredient payload on recipe writes.
type CatalogItemInput struct {
	Name string
}

type CreateRecipeInput struct {
	Title       string
	Description string
	TimeMinutes int
	Price       string
	Link        string
	Tags        []CatalogItemInput
	Ingredients []CatalogItemInput
}

// UpdateRecipeInput is a partial field set. Nil scalar pointers leave the
// field untouched. Nil Tags/Ingredients leave the links untouched; a non-nil
// (possibly empty) slice replaces them entirely.
type UpdateRecipeInput struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Price       *string
	Link        *string
	Tags        *[]CatalogItemInput
	Ingredients *[]CatalogItemInput
}

func (s *RecipeService) List(ctx context.Context, userID string, f repo.RecipeFilter) ([]entity.Recipe, error) {
	return s.Recipes.List(ctx, userID, f)
}

func (s *RecipeService) Get(ctx context.Context, userID, id string) (*entity.Recipe, error) {
	rec, err := s.Recipes.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Create persists the base recipe first, then resolves each nested tag and
// ingredient with get-or-create bound to the requesting user and links it.
func (s *RecipeService) Create(ctx context.Context, userID string, in CreateRecipeInput) (*entity.Recipe, error) {
	rec, err := entity.NewRecipe(userID, in.Title, in.TimeMinutes, in.Price)
	if err != nil {
		return nil, err
	}
	rec.Description = in.Description
	rec.Link = in.Link

	if err := s.Recipes.Create(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.attachTags(ctx, userID, rec.ID, in.Tags); err != nil {
		return nil, err
	}
	if err := s.attachIngredients(ctx, userID, rec.ID, in.Ingredients); err != nil {
		return nil, err
	}

	out, err := s.Recipes.GetByID(ctx, userID, rec.ID)
	if err != nil {
		return nil, err
	}
	s.index(ctx, out)
	return out, nil
}

// Update applies a partial update. When a tags or ingredients key is present
// the existing links are cleared and rebuilt from the payload
// (authoritative replace, not a merge).
func (s *RecipeService) Update(ctx context.Context, userID, id string, in UpdateRecipeInput) (*entity.Recipe, error) {
	rec, err := s.Recipes.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	// The whole payload is validated before anything is written; a rejected
	// update must leave both scalars and links untouched.
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, entity.ErrTitleRequired
		}
		rec.Title = *in.Title
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}
	if in.TimeMinutes != nil {
		rec.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		if !entity.ValidPrice(*in.Price) {
			return nil, entity.ErrInvalidPrice
		}
		rec.Price = *in.Price
	}
	if in.Link != nil {
		rec.Link = *in.Link
	}

	if in.Tags != nil {
		if err := s.Recipes.ClearTags(ctx, rec.ID); err != nil {
			return nil, err
		}
		if err := s.attachTags(ctx, userID, rec.ID, *in.Tags); err != nil {
			return nil, err
		}
	}
	if in.Ingredients != nil {
		if err := s.Recipes.ClearIngredients(ctx, rec.ID); err != nil {
			return nil, err
		}
		if err := s.attachIngredients(ctx, userID, rec.ID, *in.Ingredients); err != nil {
			return nil, err
		}
	}

	if err := s.Recipes.Update(ctx, rec); err != nil {
		return nil, err
	}

	out, err := s.Recipes.GetByID(ctx, userID, rec.ID)
	if err != nil {
		return nil, err
	}
	s.index(ctx, out)
	return out, nil
}

func (s *RecipeService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Recipes.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	s.deindex(ctx, id)
	return nil
}

// UploadImage stores the image in GCS under a uuid-derived object path and
// records the public URL on the recipe. A previously uploaded object is not
// deleted here.
func (s *RecipeService) UploadImage(ctx context.Context, userID, id string, r io.Reader, filename, contentType string) (*entity.Recipe, error) {
	rec, err := s.Recipes.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}

	objectPath := entity.RecipeImagePath(filename)
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	if err := s.Recipes.SetImage(ctx, userID, rec.ID, url); err != nil {
		return nil, err
	}
	rec.Image = url
	s.index(ctx, rec)
	return rec, nil
}

func (s *RecipeService) attachTags(ctx context.Context, userID, recipeID string, items []CatalogItemInput) error {
	for _, item := range items {
		t, _, err := s.Tags.GetOrCreate(ctx, userID, item.Name)
		if err != nil {
			return err
		}
		if err := s.Recipes.AddTag(ctx, recipeID, t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecipeService) attachIngredients(ctx context.Context, userID, recipeID string, items []CatalogItemInput) error {
	for _, item := range items {
		ing, _, err := s.Ingredients.GetOrCreate(ctx, userID, item.Name)
		if err != nil {
			return err
		}
		if err := s.Recipes.AddIngredient(ctx, recipeID, ing.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecipeService) index(ctx context.Context, rec *entity.Recipe) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	tagNames := make([]string, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tagNames = append(tagNames, t.Name)
	}
	ingNames := make([]string, 0, len(rec.Ingredients))
	for _, i := range rec.Ingredients {
		ingNames = append(ingNames, i.Name)
	}
	doc := map[string]any{
		"id":          rec.ID,
		"user_id":     rec.UserID,
		"title":       rec.Title,
		"description": rec.Description,
		"tags":        tagNames,
		"ingredients": ingNames,
		"updated_at":  rec.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: rec.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", rec.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("recipe_id", rec.ID).Warn("es index response error")
	}
}

func (s *RecipeService) deindex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("recipe_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a user-scoped multi_match search over indexed recipes.
func (s *RecipeService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []map[string]any{
					{"term": map[string]any{"user_id": userID}},
				},
				"must": []map[string]any{
					{"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description", "tags", "ingredients"},
					}},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
