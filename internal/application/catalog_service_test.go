package application

import (
	"context"
	"errors"
	"testing"

	"github.com/rizkypra/recipe-api/internal/testutil"
)

func TestTagListOrderedByNameDesc(t *testing.T) {
	tags := testutil.NewFakeTagRepo()
	svc := NewTagService(tags, nil)
	ctx := context.Background()

	for _, name := range []string{"Dessert", "Vegan", "Breakfast"} {
		if _, _, err := tags.GetOrCreate(ctx, "user-1", name); err != nil {
			t.Fatalf("seed tag %q: %v", name, err)
		}
	}

	out, err := svc.List(ctx, "user-1", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Vegan", "Dessert", "Breakfast"}
	if len(out) != len(want) {
		t.Fatalf("got %d tags, want %d", len(out), len(want))
	}
	for i, name := range want {
		if out[i].Name != name {
			t.Errorf("out[%d].Name = %q, want %q", i, out[i].Name, name)
		}
	}
}

func TestTagListScopedToUser(t *testing.T) {
	tags := testutil.NewFakeTagRepo()
	svc := NewTagService(tags, nil)
	ctx := context.Background()

	if _, _, err := tags.GetOrCreate(ctx, "user-1", "Mine"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := tags.GetOrCreate(ctx, "user-2", "Theirs"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := svc.List(ctx, "user-1", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Mine" {
		t.Fatalf("out = %+v, want only the requester's tag", out)
	}
}

func TestTagAssignedOnly(t *testing.T) {
	svc, _, tags, _ := newRecipeService()
	tagSvc := NewTagService(tags, nil)
	ctx := context.Background()

	// two recipes sharing one tag, plus an unassigned tag
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(ctx, "user-1", CreateRecipeInput{
			Title: "R", TimeMinutes: 5, Price: "5.00",
			Tags: []CatalogItemInput{{Name: "Breakfast"}},
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, _, err := tags.GetOrCreate(ctx, "user-1", "Unused"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := tagSvc.List(ctx, "user-1", true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// the shared tag appears exactly once
	if len(out) != 1 || out[0].Name != "Breakfast" {
		t.Fatalf("out = %+v, want exactly one Breakfast entry", out)
	}

	all, err := tagSvc.List(ctx, "user-1", false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered list = %+v, want both tags", all)
	}
}

func TestTagUpdateName(t *testing.T) {
	tags := testutil.NewFakeTagRepo()
	svc := NewTagService(tags, nil)
	ctx := context.Background()

	seeded, _, err := tags.GetOrCreate(ctx, "user-1", "Old")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := svc.UpdateName(ctx, "user-1", seeded.ID, "New")
	if err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	if out.Name != "New" {
		t.Fatalf("name = %q, want %q", out.Name, "New")
	}

	// blank names stay representable
	out, err = svc.UpdateName(ctx, "user-1", seeded.ID, "")
	if err != nil {
		t.Fatalf("UpdateName to blank: %v", err)
	}
	if out.Name != "" {
		t.Fatalf("name = %q, want blank", out.Name)
	}
}

func TestTagNotFoundMapping(t *testing.T) {
	tags := testutil.NewFakeTagRepo()
	svc := NewTagService(tags, nil)
	ctx := context.Background()

	seeded, _, err := tags.GetOrCreate(ctx, "user-1", "Private")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := svc.Get(ctx, "user-2", seeded.ID); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("cross-user Get: err = %v, want ErrTagNotFound", err)
	}
	if _, err := svc.UpdateName(ctx, "user-2", seeded.ID, "X"); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("cross-user UpdateName: err = %v, want ErrTagNotFound", err)
	}
	if err := svc.Delete(ctx, "user-2", seeded.ID); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("cross-user Delete: err = %v, want ErrTagNotFound", err)
	}
	if err := svc.Delete(ctx, "user-1", "00000000-0000-0000-0000-000000000999"); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("unknown id Delete: err = %v, want ErrTagNotFound", err)
	}
}

func TestIngredientAssignedOnly(t *testing.T) {
	svc, _, _, ings := newRecipeService()
	ingSvc := NewIngredientService(ings, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", CreateRecipeInput{
		Title: "Apple crumble", TimeMinutes: 5, Price: "4.50",
		Ingredients: []CatalogItemInput{{Name: "Apples"}},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, _, err := ings.GetOrCreate(ctx, "user-1", "Turkey"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := ingSvc.List(ctx, "user-1", true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Apples" {
		t.Fatalf("out = %+v, want only the assigned ingredient", out)
	}
}

func TestIngredientNotFoundMapping(t *testing.T) {
	ings := testutil.NewFakeIngredientRepo()
	svc := NewIngredientService(ings, nil)
	ctx := context.Background()

	seeded, _, err := ings.GetOrCreate(ctx, "user-1", "Salt")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Get(ctx, "user-2", seeded.ID); !errors.Is(err, ErrIngredientNotFound) {
		t.Errorf("cross-user Get: err = %v, want ErrIngredientNotFound", err)
	}

	out, err := svc.UpdateName(ctx, "user-1", seeded.ID, "Sea salt")
	if err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	if out.Name != "Sea salt" {
		t.Fatalf("name = %q, want %q", out.Name, "Sea salt")
	}
}
