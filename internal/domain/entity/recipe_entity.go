package entity

import (
	"errors"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrOwnerRequired = errors.New("owner is required")
	ErrInvalidPrice  = errors.New("price must be a decimal with at most 5 digits and 2 decimal places")
)

// priceRe matches NUMERIC(5,2): up to 3 integer digits, optional 2 decimals.
var priceRe = regexp.MustCompile(`^\d{1,3}(\.\d{1,2})?$`)

// Recipe is owned by exactly one user. Tags and Ingredients are loaded
// eagerly by the repository when the recipe is read.
type Recipe struct {
	ID          string
	UserID      string
	Title       string
	Description string
	TimeMinutes int
	Price       string // NUMERIC(5,2), kept as text to avoid float rounding
	Link        string
	Image       string // public URL of the uploaded image, empty if none
	Tags        []Tag
	Ingredients []Ingredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *Recipe) String() string { return r.Title }

// NewRecipe validates required fields before the record is persisted.
func NewRecipe(userID, title string, timeMinutes int, price string) (*Recipe, error) {
	if userID == "" {
		return nil, ErrOwnerRequired
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if !ValidPrice(price) {
		return nil, ErrInvalidPrice
	}
	return &Recipe{UserID: userID, Title: title, TimeMinutes: timeMinutes, Price: price}, nil
}

// ValidPrice reports whether p fits the NUMERIC(5,2) price column.
func ValidPrice(p string) bool {
	return priceRe.MatchString(p)
}

// Tag labels recipes for filtering. Name may be blank; duplicate names per
// user are representable, only the get-or-create path avoids them.
type Tag struct {
	ID     string
	UserID string
	Name   string
}

func (t *Tag) String() string { return t.Name }

// Ingredient has the same shape and ownership semantics as Tag.
type Ingredient struct {
	ID     string
	UserID string
	Name   string
}

func (i *Ingredient) String() string { return i.Name }

// RecipeImagePath derives a unique object path for an uploaded recipe image,
// preserving the original file extension.
func RecipeImagePath(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join("uploads", "recipe", uuid.NewString()+ext)
}
