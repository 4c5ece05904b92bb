package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	"github.com/rizkypra/recipe-api/internal/domain/repository"
)

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

const recipeColumns = `r.id, r.user_id, r.title, r.description, r.time_minutes, r.price::text, r.link, r.image, r.created_at, r.updated_at`

func scanRecipe(row pgx.Row, rec *entity.Recipe) error {
	return row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Description,
		&rec.TimeMinutes, &rec.Price, &rec.Link, &rec.Image,
		&rec.CreatedAt, &rec.UpdatedAt)
}

func (r *RecipeRepository) List(ctx context.Context, userID string, f repository.RecipeFilter) ([]entity.Recipe, error) {
	query := `SELECT DISTINCT ` + recipeColumns + ` FROM recipes r`
	args := []any{userID}

	if len(f.TagIDs) > 0 {
		query += ` JOIN recipe_tags rt ON rt.recipe_id = r.id`
	}
	if len(f.IngredientIDs) > 0 {
		query += ` JOIN recipe_ingredients ri ON ri.recipe_id = r.id`
	}
	query += ` WHERE r.user_id = $1`
	if len(f.TagIDs) > 0 {
		args = append(args, f.TagIDs)
		query += ` AND rt.tag_id = ANY($` + strconv.Itoa(len(args)) + `::uuid[])`
	}
	if len(f.IngredientIDs) > 0 {
		args = append(args, f.IngredientIDs)
		query += ` AND ri.ingredient_id = ANY($` + strconv.Itoa(len(args)) + `::uuid[])`
	}
	query += ` ORDER BY r.id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make([]entity.Recipe, 0)
	for rows.Next() {
		var rec entity.Recipe
		if err := scanRecipe(rows, &rec); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAssociations(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, userID, id string) (*entity.Recipe, error) {
	rec := &entity.Recipe{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes r
		WHERE r.id = $1 AND r.user_id = $2
	`, id, userID)

	if err := scanRecipe(row, rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	recs := []entity.Recipe{*rec}
	if err := r.loadAssociations(ctx, recs); err != nil {
		return nil, err
	}
	return &recs[0], nil
}

func (r *RecipeRepository) Create(ctx context.Context, rec *entity.Recipe) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO recipes (user_id, title, description, time_minutes, price, link)
		VALUES ($1, $2, $3, $4, $5::numeric, $6)
		RETURNING id, created_at, updated_at
	`, rec.UserID, rec.Title, rec.Description, rec.TimeMinutes, rec.Price, rec.Link)
	return row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *RecipeRepository) Update(ctx context.Context, rec *entity.Recipe) error {
	rec.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE recipes
		SET title = $1, description = $2, time_minutes = $3, price = $4::numeric, link = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`, rec.Title, rec.Description, rec.TimeMinutes, rec.Price, rec.Link, rec.UpdatedAt, rec.ID, rec.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, userID, id string) error {
	// junction rows cascade
	res, err := r.pool.Exec(ctx, `
		DELETE FROM recipes WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) SetImage(ctx context.Context, userID, id, imageURL string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE recipes SET image = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
	`, imageURL, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) AddTag(ctx context.Context, recipeID, tagID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO recipe_tags (recipe_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, recipeID, tagID)
	return err
}

func (r *RecipeRepository) ClearTags(ctx context.Context, recipeID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID)
	return err
}

func (r *RecipeRepository) AddIngredient(ctx context.Context, recipeID, ingredientID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, recipeID, ingredientID)
	return err
}

func (r *RecipeRepository) ClearIngredients(ctx context.Context, recipeID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID)
	return err
}

// loadAssociations attaches tags and ingredients to every recipe in recs
// with one query per association type.
func (r *RecipeRepository) loadAssociations(ctx context.Context, recs []entity.Recipe) error {
	if len(recs) == 0 {
		return nil
	}
	ids := make([]string, 0, len(recs))
	byID := make(map[string]*entity.Recipe, len(recs))
	for i := range recs {
		recs[i].Tags = make([]entity.Tag, 0)
		recs[i].Ingredients = make([]entity.Ingredient, 0)
		ids = append(ids, recs[i].ID)
		byID[recs[i].ID] = &recs[i]
	}

	rows, err := r.pool.Query(ctx, `
		SELECT rt.recipe_id, t.id, t.user_id, t.name
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ANY($1::uuid[])
		ORDER BY t.name DESC, t.id DESC
	`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var recipeID string
		var t entity.Tag
		if err := rows.Scan(&recipeID, &t.ID, &t.UserID, &t.Name); err != nil {
			rows.Close()
			return err
		}
		if rec, ok := byID[recipeID]; ok {
			rec.Tags = append(rec.Tags, t)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx, `
		SELECT ri.recipe_id, i.id, i.user_id, i.name
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1::uuid[])
		ORDER BY i.name DESC, i.id DESC
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var recipeID string
		var ing entity.Ingredient
		if err := rows.Scan(&recipeID, &ing.ID, &ing.UserID, &ing.Name); err != nil {
			return err
		}
		if rec, ok := byID[recipeID]; ok {
			rec.Ingredients = append(rec.Ingredients, ing)
		}
	}
	return rows.Err()
}

var _ repository.RecipeRepository = (*RecipeRepository)(nil)
