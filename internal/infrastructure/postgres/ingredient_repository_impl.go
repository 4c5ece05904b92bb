package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	"github.com/rizkypra/recipe-api/internal/domain/repository"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) List(ctx context.Context, userID string, assignedOnly bool) ([]entity.Ingredient, error) {
	query := `
		SELECT id, user_id, name
		FROM ingredients
		WHERE user_id = $1
		ORDER BY name DESC, id DESC`
	if assignedOnly {
		query = `
		SELECT DISTINCT i.id, i.user_id, i.name
		FROM ingredients i
		JOIN recipe_ingredients ri ON ri.ingredient_id = i.id
		WHERE i.user_id = $1
		ORDER BY i.name DESC, i.id DESC`
	}

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ings := make([]entity.Ingredient, 0)
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.UserID, &i.Name); err != nil {
			return nil, err
		}
		ings = append(ings, i)
	}
	return ings, rows.Err()
}

func (r *IngredientRepository) GetByID(ctx context.Context, userID, id string) (*entity.Ingredient, error) {
	i := &entity.Ingredient{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name
		FROM ingredients
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&i.ID, &i.UserID, &i.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

// GetOrCreate mirrors TagRepository.GetOrCreate; see the race note there.
func (r *IngredientRepository) GetOrCreate(ctx context.Context, userID, name string) (*entity.Ingredient, bool, error) {
	i := &entity.Ingredient{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name
		FROM ingredients
		WHERE user_id = $1 AND name = $2
		ORDER BY id
		LIMIT 1
	`, userID, name)

	err := row.Scan(&i.ID, &i.UserID, &i.Name)
	if err == nil {
		return i, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	i = &entity.Ingredient{UserID: userID, Name: name}
	if err := r.Create(ctx, i); err != nil {
		return nil, false, err
	}
	return i, true, nil
}

func (r *IngredientRepository) Create(ctx context.Context, i *entity.Ingredient) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO ingredients (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`, i.UserID, i.Name)
	return row.Scan(&i.ID)
}

func (r *IngredientRepository) UpdateName(ctx context.Context, userID, id, name string) (*entity.Ingredient, error) {
	i := &entity.Ingredient{}
	row := r.pool.QueryRow(ctx, `
		UPDATE ingredients
		SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name
	`, name, id, userID)

	if err := row.Scan(&i.ID, &i.UserID, &i.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (r *IngredientRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM ingredients WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.IngredientRepository = (*IngredientRepository)(nil)
