// Package testutil provides shared test infrastructure and data factories.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/savorly/savorly/internal/domain/recipe"
	"github.com/savorly/savorly/internal/domain/user"
	gormRepo "github.com/savorly/savorly/internal/infrastructure/persistence/gorm"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenTestDB opens a migrated SQLite database in a per-test temp directory.
// The file is removed with the temp dir when the test finishes.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "savorly_test.db")
	db, err := gormRepo.Open(gormRepo.Options{Path: path}, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// RecipeFactory generates recipe entities with deterministic fake data.
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a factory seeded for reproducible output.
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Recipe builds an unsaved food recipe with two ingredients and two steps.
func (f *RecipeFactory) Recipe() *recipe.Recipe {
	rec := &recipe.Recipe{
		Title:            f.faker.Dinner(),
		Description:      f.faker.Paragraph(1, 3, 8, " "),
		ShortDescription: f.faker.Sentence(6),
		PreparationTime:  f.faker.Number(10, 90),
		Servings:         f.faker.Number(1, 8),
		Type:             recipe.TypeFood,
		Ingredients: []recipe.Ingredient{
			{Name: f.faker.Fruit()},
			{Name: f.faker.Vegetable()},
		},
		Tags: []recipe.Tag{
			{Name: "#" + f.faker.Word()},
		},
	}
	rec.AddStep(f.faker.Sentence(8))
	rec.AddStep(f.faker.Sentence(8))
	return rec
}

// Drink builds an unsaved drink recipe.
func (f *RecipeFactory) Drink() *recipe.Recipe {
	rec := f.Recipe()
	rec.Type = recipe.TypeDrink
	rec.Title = f.faker.BeerName()
	return rec
}

// UserFactory generates user entities with hashed passwords.
type UserFactory struct {
	faker *gofakeit.Faker
	seq   int
}

// NewUserFactory creates a factory seeded for reproducible output.
func NewUserFactory(seed int64) *UserFactory {
	return &UserFactory{faker: gofakeit.New(seed)}
}

// User builds an unsaved user. The password is always "password123" so
// tests can log in with it.
func (f *UserFactory) User(t *testing.T) *user.User {
	t.Helper()

	f.seq++
	username := fmt.Sprintf("%s%d", f.faker.Username(), f.seq)
	email := fmt.Sprintf("%s@example.com", username)

	u, err := user.New(username, email, "password123")
	require.NoError(t, err)
	return u
}
