// Package testutil provides in-memory repository fakes for service and
// handler tests. They mirror the ordering and scoping behavior of the
// postgres implementations closely enough for behavioral assertions.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rizkypra/recipe-api/internal/domain/entity"
	"github.com/rizkypra/recipe-api/internal/domain/repository"
)

// FakeUserRepo is an in-memory repository.UserRepository.
type FakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	Users map[string]*entity.User // by id
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{Users: make(map[string]*entity.User)}
}

func (f *FakeUserRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", f.seq)
}

func (f *FakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.Users {
		if existing.Email == u.Email {
			return fmt.Errorf("duplicate email %s", u.Email)
		}
	}
	u.ID = f.nextID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.Users[u.ID] = &cp
	return nil
}

func (f *FakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *FakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	f.Users[u.ID] = &cp
	return nil
}

func (f *FakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.Users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.Users, id)
	return nil
}

// FakeTagRepo is an in-memory repository.TagRepository. Assigned state is
// tracked by the FakeRecipeRepo it is wired to.
type FakeTagRepo struct {
	mu      sync.Mutex
	seq     int
	Tags    []*entity.Tag
	Recipes *FakeRecipeRepo // optional; used for assignedOnly
}

func NewFakeTagRepo() *FakeTagRepo { return &FakeTagRepo{} }

func (f *FakeTagRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("11111111-0000-0000-0000-%012d", f.seq)
}

func (f *FakeTagRepo) List(_ context.Context, userID string, assignedOnly bool) ([]entity.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Tag, 0)
	for _, t := range f.Tags {
		if t.UserID != userID {
			continue
		}
		if assignedOnly && (f.Recipes == nil || !f.Recipes.tagAssigned(t.ID)) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name > out[j].Name
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *FakeTagRepo) GetByID(_ context.Context, userID, id string) (*entity.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.Tags {
		if t.ID == id && t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeTagRepo) GetOrCreate(_ context.Context, userID, name string) (*entity.Tag, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.Tags {
		if t.UserID == userID && t.Name == name {
			cp := *t
			return &cp, false, nil
		}
	}
	t := &entity.Tag{ID: f.nextID(), UserID: userID, Name: name}
	f.Tags = append(f.Tags, t)
	cp := *t
	return &cp, true, nil
}

func (f *FakeTagRepo) Create(_ context.Context, t *entity.Tag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = f.nextID()
	cp := *t
	f.Tags = append(f.Tags, &cp)
	return nil
}

func (f *FakeTagRepo) UpdateName(_ context.Context, userID, id, name string) (*entity.Tag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.Tags {
		if t.ID == id && t.UserID == userID {
			t.Name = name
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeTagRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.Tags {
		if t.ID == id && t.UserID == userID {
			f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
			if f.Recipes != nil {
				f.Recipes.unlinkTag(id)
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeIngredientRepo is an in-memory repository.IngredientRepository.
type FakeIngredientRepo struct {
	mu          sync.Mutex
	seq         int
	Ingredients []*entity.Ingredient
	Recipes     *FakeRecipeRepo
}

func NewFakeIngredientRepo() *FakeIngredientRepo { return &FakeIngredientRepo{} }

func (f *FakeIngredientRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("22222222-0000-0000-0000-%012d", f.seq)
}

func (f *FakeIngredientRepo) List(_ context.Context, userID string, assignedOnly bool) ([]entity.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Ingredient, 0)
	for _, ing := range f.Ingredients {
		if ing.UserID != userID {
			continue
		}
		if assignedOnly && (f.Recipes == nil || !f.Recipes.ingredientAssigned(ing.ID)) {
			continue
		}
		out = append(out, *ing)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name > out[j].Name
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *FakeIngredientRepo) GetByID(_ context.Context, userID, id string) (*entity.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ing := range f.Ingredients {
		if ing.ID == id && ing.UserID == userID {
			cp := *ing
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeIngredientRepo) GetOrCreate(_ context.Context, userID, name string) (*entity.Ingredient, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ing := range f.Ingredients {
		if ing.UserID == userID && ing.Name == name {
			cp := *ing
			return &cp, false, nil
		}
	}
	ing := &entity.Ingredient{ID: f.nextID(), UserID: userID, Name: name}
	f.Ingredients = append(f.Ingredients, ing)
	cp := *ing
	return &cp, true, nil
}

func (f *FakeIngredientRepo) Create(_ context.Context, i *entity.Ingredient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i.ID = f.nextID()
	cp := *i
	f.Ingredients = append(f.Ingredients, &cp)
	return nil
}

func (f *FakeIngredientRepo) UpdateName(_ context.Context, userID, id, name string) (*entity.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ing := range f.Ingredients {
		if ing.ID == id && ing.UserID == userID {
			ing.Name = name
			cp := *ing
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeIngredientRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, ing := range f.Ingredients {
		if ing.ID == id && ing.UserID == userID {
			f.Ingredients = append(f.Ingredients[:i], f.Ingredients[i+1:]...)
			if f.Recipes != nil {
				f.Recipes.unlinkIngredient(id)
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

// FakeRecipeRepo is an in-memory repository.RecipeRepository. Tag and
// ingredient links are held as id sets; GetByID resolves them through the
// wired catalog fakes like the SQL implementation joins do.
type FakeRecipeRepo struct {
	mu       sync.Mutex
	seq      int
	Recipes  map[string]*entity.Recipe
	tagLinks map[string]map[string]bool // recipeID -> tagID set
	ingLinks map[string]map[string]bool // recipeID -> ingredientID set
	TagRepo  *FakeTagRepo
	IngRepo  *FakeIngredientRepo
}

func NewFakeRecipeRepo(tags *FakeTagRepo, ingredients *FakeIngredientRepo) *FakeRecipeRepo {
	f := &FakeRecipeRepo{
		Recipes:  make(map[string]*entity.Recipe),
		tagLinks: make(map[string]map[string]bool),
		ingLinks: make(map[string]map[string]bool),
		TagRepo:  tags,
		IngRepo:  ingredients,
	}
	if tags != nil {
		tags.Recipes = f
	}
	if ingredients != nil {
		ingredients.Recipes = f
	}
	return f
}

func (f *FakeRecipeRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("33333333-0000-0000-0000-%012d", f.seq)
}

func (f *FakeRecipeRepo) tagAssigned(tagID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, set := range f.tagLinks {
		if set[tagID] {
			return true
		}
	}
	return false
}

func (f *FakeRecipeRepo) ingredientAssigned(ingID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, set := range f.ingLinks {
		if set[ingID] {
			return true
		}
	}
	return false
}

func (f *FakeRecipeRepo) unlinkTag(tagID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, set := range f.tagLinks {
		delete(set, tagID)
	}
}

func (f *FakeRecipeRepo) unlinkIngredient(ingID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, set := range f.ingLinks {
		delete(set, ingID)
	}
}

func (f *FakeRecipeRepo) resolve(rec *entity.Recipe) *entity.Recipe {
	cp := *rec
	cp.Tags = nil
	cp.Ingredients = nil
	if f.TagRepo != nil {
		for _, t := range f.TagRepo.Tags {
			if f.tagLinks[rec.ID][t.ID] {
				cp.Tags = append(cp.Tags, *t)
			}
		}
		sort.Slice(cp.Tags, func(i, j int) bool { return cp.Tags[i].Name > cp.Tags[j].Name })
	}
	if f.IngRepo != nil {
		for _, ing := range f.IngRepo.Ingredients {
			if f.ingLinks[rec.ID][ing.ID] {
				cp.Ingredients = append(cp.Ingredients, *ing)
			}
		}
		sort.Slice(cp.Ingredients, func(i, j int) bool { return cp.Ingredients[i].Name > cp.Ingredients[j].Name })
	}
	return &cp
}

func (f *FakeRecipeRepo) List(_ context.Context, userID string, filter repository.RecipeFilter) ([]entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Recipe, 0)
	for _, rec := range f.Recipes {
		if rec.UserID != userID {
			continue
		}
		if len(filter.TagIDs) > 0 && !anyLinked(f.tagLinks[rec.ID], filter.TagIDs) {
			continue
		}
		if len(filter.IngredientIDs) > 0 && !anyLinked(f.ingLinks[rec.ID], filter.IngredientIDs) {
			continue
		}
		out = append(out, *f.resolve(rec))
	}
	// id descending, mirrors newest-first listing
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func anyLinked(set map[string]bool, ids []string) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}

func (f *FakeRecipeRepo) GetByID(_ context.Context, userID, id string) (*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.Recipes[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return f.resolve(rec), nil
}

func (f *FakeRecipeRepo) Create(_ context.Context, r *entity.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = f.nextID()
	r.CreatedAt = time.Now().UTC()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	f.Recipes[r.ID] = &cp
	f.tagLinks[r.ID] = make(map[string]bool)
	f.ingLinks[r.ID] = make(map[string]bool)
	return nil
}

func (f *FakeRecipeRepo) Update(_ context.Context, r *entity.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.Recipes[r.ID]
	if !ok || existing.UserID != r.UserID {
		return repository.ErrNotFound
	}
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	cp.Tags = nil
	cp.Ingredients = nil
	f.Recipes[r.ID] = &cp
	return nil
}

func (f *FakeRecipeRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.Recipes[id]
	if !ok || rec.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.Recipes, id)
	delete(f.tagLinks, id)
	delete(f.ingLinks, id)
	return nil
}

func (f *FakeRecipeRepo) SetImage(_ context.Context, userID, id, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.Recipes[id]
	if !ok || rec.UserID != userID {
		return repository.ErrNotFound
	}
	rec.Image = imageURL
	return nil
}

func (f *FakeRecipeRepo) AddTag(_ context.Context, recipeID, tagID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tagLinks[recipeID] == nil {
		f.tagLinks[recipeID] = make(map[string]bool)
	}
	f.tagLinks[recipeID][tagID] = true
	return nil
}

func (f *FakeRecipeRepo) ClearTags(_ context.Context, recipeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tagLinks[recipeID] = make(map[string]bool)
	return nil
}

func (f *FakeRecipeRepo) AddIngredient(_ context.Context, recipeID, ingredientID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ingLinks[recipeID] == nil {
		f.ingLinks[recipeID] = make(map[string]bool)
	}
	f.ingLinks[recipeID][ingredientID] = true
	return nil
}

func (f *FakeRecipeRepo) ClearIngredients(_ context.Context, recipeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ingLinks[recipeID] = make(map[string]bool)
	return nil
}
