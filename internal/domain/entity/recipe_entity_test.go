package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRecipe(t *testing.T) {
	r, err := NewRecipe("user-1", "Steak and mushroom sauce", 5, "5.00")
	if err != nil {
		t.Fatalf("NewRecipe: %v", err)
	}
	if r.UserID != "user-1" || r.Title != "Steak and mushroom sauce" || r.TimeMinutes != 5 || r.Price != "5.00" {
		t.Fatalf("unexpected recipe: %+v", r)
	}
}

func TestNewRecipeValidation(t *testing.T) {
	if _, err := NewRecipe("", "Title", 5, "5.00"); !errors.Is(err, ErrOwnerRequired) {
		t.Errorf("missing owner: err = %v, want ErrOwnerRequired", err)
	}
	if _, err := NewRecipe("user-1", "  ", 5, "5.00"); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("blank title: err = %v, want ErrTitleRequired", err)
	}
	if _, err := NewRecipe("user-1", "Title", 5, "not-a-price"); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("bad price: err = %v, want ErrInvalidPrice", err)
	}
}

func TestValidPrice(t *testing.T) {
	valid := []string{"5", "5.0", "5.00", "0.50", "999.99", "123"}
	for _, p := range valid {
		if !ValidPrice(p) {
			t.Errorf("ValidPrice(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "-5.00", "5.", "5.001", "1000", "1234.00", "1,50", "abc", "5.00 "}
	for _, p := range invalid {
		if ValidPrice(p) {
			t.Errorf("ValidPrice(%q) = true, want false", p)
		}
	}
}

func TestStringers(t *testing.T) {
	r := &Recipe{Title: "Sample recipe"}
	if r.String() != "Sample recipe" {
		t.Errorf("Recipe.String() = %q", r.String())
	}
	tag := &Tag{Name: "Vegan"}
	if tag.String() != "Vegan" {
		t.Errorf("Tag.String() = %q", tag.String())
	}
	ing := &Ingredient{Name: "Cucumber"}
	if ing.String() != "Cucumber" {
		t.Errorf("Ingredient.String() = %q", ing.String())
	}
}

func TestRecipeImagePath(t *testing.T) {
	p := RecipeImagePath("myimage.JPG")
	if !strings.HasPrefix(p, "uploads/recipe/") {
		t.Fatalf("path %q should be under uploads/recipe/", p)
	}
	if !strings.HasSuffix(p, ".jpg") {
		t.Fatalf("path %q should keep the lowercased extension", p)
	}
	if p == RecipeImagePath("myimage.JPG") {
		t.Fatal("two uploads of the same filename should get distinct paths")
	}
}

func TestRecipeImagePathNoExtension(t *testing.T) {
	p := RecipeImagePath("noext")
	if strings.Contains(p[len("uploads/recipe/"):], ".") {
		t.Fatalf("path %q should have no extension", p)
	}
}
