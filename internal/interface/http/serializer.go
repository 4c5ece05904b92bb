package handlers

import (
	"time"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
)

// Wire representations. Every response goes through one of these structs so
// the API only ever exposes the allow-listed fields.

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type IngredientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecipeResponse is the summary shape used by list endpoints.
type RecipeResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       string               `json:"price"`
	Link        string               `json:"link"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

// RecipeDetailResponse extends the summary shape with description and image.
type RecipeDetailResponse struct {
	RecipeResponse
	Description string `json:"description"`
	Image       string `json:"image"`
}

// RecipeImageResponse is the narrow shape returned by the image upload action.
type RecipeImageResponse struct {
	ID    string `json:"id"`
	Image string `json:"image"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTagResponse(t *entity.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name}
}

func NewTagListResponse(tags []entity.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, NewTagResponse(&tags[i]))
	}
	return out
}

func NewIngredientResponse(i *entity.Ingredient) IngredientResponse {
	return IngredientResponse{ID: i.ID, Name: i.Name}
}

func NewIngredientListResponse(ings []entity.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ings))
	for i := range ings {
		out = append(out, NewIngredientResponse(&ings[i]))
	}
	return out
}

func NewRecipeResponse(r *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        NewTagListResponse(r.Tags),
		Ingredients: NewIngredientListResponse(r.Ingredients),
	}
}

func NewRecipeListResponse(recipes []entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

func NewRecipeDetailResponse(r *entity.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		RecipeResponse: NewRecipeResponse(r),
		Description:    r.Description,
		Image:          r.Image,
	}
}

func NewRecipeImageResponse(r *entity.Recipe) RecipeImageResponse {
	return RecipeImageResponse{ID: r.ID, Image: r.Image}
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
