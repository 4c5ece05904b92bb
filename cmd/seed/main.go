package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rizkypra/recipe-api/config"
	"github.com/rizkypra/recipe-api/internal/domain/entity"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

// Seeds a superuser and, optionally, a couple of sample recipes so a fresh
// environment has something to look at. Safe to re-run: the superuser upsert
// is keyed on email and samples are skipped when the user already owns recipes.
func main() {
	_ = godotenv.Load()

	email := flag.String("email", "admin@example.com", "superuser email")
	password := flag.String("password", "changeme123", "superuser password")
	name := flag.String("name", "Admin", "superuser display name")
	withSamples := flag.Bool("samples", false, "also seed sample recipes")
	flag.Parse()

	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	hash, err := helpers.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	su, err := entity.NewSuperuser(*email, hash, *name)
	if err != nil {
		log.Fatalf("build superuser: %v", err)
	}

	var userID string
	err = db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, is_staff = EXCLUDED.is_staff, is_superuser = EXCLUDED.is_superuser
		RETURNING id`,
		su.Email, su.Password, su.Name, su.IsStaff, su.IsSuperuser,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("seed superuser: %v", err)
	}
	log.Printf("superuser ready: %s (%s)", su.Email, userID)

	if !*withSamples {
		return
	}
	if err := seedSamples(ctx, db, userID); err != nil {
		log.Fatalf("seed samples: %v", err)
	}
	log.Println("sample recipes ready")
}

func seedSamples(ctx context.Context, db *sql.DB, userID string) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("user already has recipes, skipping samples")
		return nil
	}

	samples := []struct {
		title       string
		minutes     int
		price       string
		link        string
		tags        []string
		ingredients []string
	}{
		{"Chocolate cheesecake", 30, "5.00", "https://example.com/cheesecake", []string{"Dessert"}, []string{"Chocolate", "Cheese"}},
		{"Thai prawn curry", 25, "12.50", "", []string{"Dinner", "Spicy"}, []string{"Prawns", "Coconut milk", "Curry paste"}},
	}

	for _, s := range samples {
		var recipeID string
		err := db.QueryRowContext(ctx, `
			INSERT INTO recipes (user_id, title, time_minutes, price, link)
			VALUES ($1, $2, $3, $4::numeric, $5)
			RETURNING id`,
			userID, s.title, s.minutes, s.price, s.link,
		).Scan(&recipeID)
		if err != nil {
			return err
		}
		for _, t := range s.tags {
			var tagID string
			err := db.QueryRowContext(ctx, `
				INSERT INTO tags (user_id, name) VALUES ($1, $2) RETURNING id`,
				userID, t,
			).Scan(&tagID)
			if err != nil {
				return err
			}
			if _, err := db.ExecContext(ctx, `
				INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, recipeID, tagID); err != nil {
				return err
			}
		}
		for _, ing := range s.ingredients {
			var ingID string
			err := db.QueryRowContext(ctx, `
				INSERT INTO ingredients (user_id, name) VALUES ($1, $2) RETURNING id`,
				userID, ing,
			).Scan(&ingID)
			if err != nil {
				return err
			}
			if _, err := db.ExecContext(ctx, `
				INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, recipeID, ingID); err != nil {
				return err
			}
		}
	}
	return nil
}
