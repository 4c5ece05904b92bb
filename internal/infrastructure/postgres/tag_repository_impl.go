package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	"github.com/rizkypra/recipe-api/internal/domain/repository"
)

type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

func (r *TagRepository) List(ctx context.Context, userID string, assignedOnly bool) ([]entity.Tag, error) {
	query := `
		SELECT id, user_id, name
		FROM tags
		WHERE user_id = $1
		ORDER BY name DESC, id DESC`
	if assignedOnly {
		// DISTINCT dedupes tags linked to more than one recipe
		query = `
		SELECT DISTINCT t.id, t.user_id, t.name
		FROM tags t
		JOIN recipe_tags rt ON rt.tag_id = t.id
		WHERE t.user_id = $1
		ORDER BY t.name DESC, t.id DESC`
	}

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]entity.Tag, 0)
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *TagRepository) GetByID(ctx context.Context, userID, id string) (*entity.Tag, error) {
	t := &entity.Tag{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name
		FROM tags
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// GetOrCreate looks the tag up by (user, name) and inserts it when absent.
// There is no uniqueness constraint on (user_id, name); a concurrent lost
// race can leave a duplicate behind. Later lookups stay deterministic by
// ordering on id and always picking the same row.
func (r *TagRepository) GetOrCreate(ctx context.Context, userID, name string) (*entity.Tag, bool, error) {
	t := &entity.Tag{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name
		FROM tags
		WHERE user_id = $1 AND name = $2
		ORDER BY id
		LIMIT 1
	`, userID, name)

	err := row.Scan(&t.ID, &t.UserID, &t.Name)
	if err == nil {
		return t, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	t = &entity.Tag{UserID: userID, Name: name}
	if err := r.Create(ctx, t); err != nil {
		return nil, false, err
	}
	return t, true, nil
}

func (r *TagRepository) Create(ctx context.Context, t *entity.Tag) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tags (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`, t.UserID, t.Name)
	return row.Scan(&t.ID)
}

func (r *TagRepository) UpdateName(ctx context.Context, userID, id, name string) (*entity.Tag, error) {
	t := &entity.Tag{}
	row := r.pool.QueryRow(ctx, `
		UPDATE tags
		SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name
	`, name, id, userID)

	if err := row.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TagRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tags WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TagRepository = (*TagRepository)(nil)
