package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rizkypra/recipe-api/internal/application"
	"github.com/rizkypra/recipe-api/internal/domain/entity"
	"github.com/rizkypra/recipe-api/internal/domain/repository"
	"github.com/rizkypra/recipe-api/pkg/response"
	"github.com/rizkypra/recipe-api/pkg/validation"
)

type RecipeHandler struct {
	Svc    *application.RecipeService
	Logger *logrus.Logger
}

func NewRecipeHandler(svc *application.RecipeService, logger *logrus.Logger) *RecipeHandler {
	return &RecipeHandler{Svc: svc, Logger: logger}
}

type catalogItemPayload struct {
	Name string `json:"name"`
}

type createRecipeRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	TimeMinutes int                  `json:"time_minutes" binding:"gte=0"`
	Price       string               `json:"price" binding:"required"`
	Link        string               `json:"link"`
	Tags        []catalogItemPayload `json:"tags"`
	Ingredients []catalogItemPayload `json:"ingredients"`
}

// updateRecipeRequest distinguishes absent keys (nil pointers) from
// explicitly supplied ones, which drives clear-then-relink for associations.
type updateRecipeRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	TimeMinutes *int                  `json:"time_minutes" binding:"omitempty,gte=0"`
	Price       *string               `json:"price"`
	Link        *string               `json:"link"`
	Tags        *[]catalogItemPayload `json:"tags"`
	Ingredients *[]catalogItemPayload `json:"ingredients"`
}

func toCatalogInputs(items []catalogItemPayload) []application.CatalogItemInput {
	out := make([]application.CatalogItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, application.CatalogItemInput{Name: it.Name})
	}
	return out
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *RecipeHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	filter := repository.RecipeFilter{
		TagIDs:        splitIDs(c.Query("tags")),
		IngredientIDs: splitIDs(c.Query("ingredients")),
	}
	recipes, err := h.Svc.List(c.Request.Context(), uid, filter)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list recipes failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to list recipes", nil)
		return
	}
	response.Success(c, http.StatusOK, NewRecipeListResponse(recipes), "recipes", nil)
}

func (h *RecipeHandler) Detail(c *gin.Context) {
	uid := c.GetString("userID")
	rec, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to get recipe")
		return
	}
	response.Success(c, http.StatusOK, NewRecipeDetailResponse(rec), "recipe", nil)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), uid, application.CreateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Tags:        toCatalogInputs(req.Tags),
		Ingredients: toCatalogInputs(req.Ingredients),
	})
	if err != nil {
		h.writeError(c, err, "failed to create recipe")
		return
	}
	response.Success(c, http.StatusCreated, NewRecipeDetailResponse(rec), "recipe created", nil)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.UpdateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	}
	if req.Tags != nil {
		tags := toCatalogInputs(*req.Tags)
		in.Tags = &tags
	}
	if req.Ingredients != nil {
		ings := toCatalogInputs(*req.Ingredients)
		in.Ingredients = &ings
	}

	rec, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), in)
	if err != nil {
		h.writeError(c, err, "failed to update recipe")
		return
	}
	response.Success(c, http.StatusOK, NewRecipeDetailResponse(rec), "recipe updated", nil)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		h.writeError(c, err, "failed to delete recipe")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles the multipart image-attach action.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	uid := c.GetString("userID")

	file, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"image": "is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "could not read uploaded file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	rec, err := h.Svc.UploadImage(c.Request.Context(), uid, c.Param("id"), f, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		h.writeError(c, err, "failed to upload image")
		return
	}
	response.Success(c, http.StatusOK, NewRecipeImageResponse(rec), "image uploaded", nil)
}

func (h *RecipeHandler) Search(c *gin.Context) {
	uid := c.GetString("userID")
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"q": "is required"})
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), uid, q, 20)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("recipe search failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"query": q})
}

func (h *RecipeHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrRecipeNotFound):
		response.Error[any](c, http.StatusNotFound, "recipe not found", nil)
	case errors.Is(err, entity.ErrTitleRequired):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"title": "is required"})
	case errors.Is(err, entity.ErrInvalidPrice):
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"price": "must be a decimal with at most 5 digits and 2 decimal places"})
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(msg)
		}
		response.Error[any](c, http.StatusInternalServerError, msg, nil)
	}
}
