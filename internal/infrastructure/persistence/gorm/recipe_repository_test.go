package gorm_test

import (
	"context"
	"testing"

	"github.com/savorly/savorly/internal/domain/recipe"
	gormRepo "github.com/savorly/savorly/internal/infrastructure/persistence/gorm"
	"github.com/savorly/savorly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeRepositoryCreateAndFind(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()

	rec := &recipe.Recipe{
		Title:            "Борщ український",
		Description:      "Традиційний суп з буряком та капустою",
		ShortDescription: "Класичний борщ",
		PreparationTime:  90,
		Servings:         6,
		Type:             recipe.TypeFood,
		Ingredients: []recipe.Ingredient{
			{Name: "Буряк"},
			{Name: "Капуста"},
		},
		Tags: []recipe.Tag{{Name: "#борщ"}, {Name: "#суп"}},
	}
	rec.AddStep("Зварити бульйон")
	rec.AddStep("Додати овочі")

	require.NoError(t, repo.Create(ctx, rec))
	require.NotZero(t, rec.ID)

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, "Борщ український", found.Title)
	assert.Equal(t, recipe.TypeFood, found.Type)
	require.Len(t, found.Ingredients, 2)
	require.Len(t, found.Steps, 2)
	assert.Equal(t, 1, found.Steps[0].StepNumber)
	assert.Equal(t, "Зварити бульйон", found.Steps[0].Instruction)
	assert.Equal(t, 2, found.Steps[1].StepNumber)
	assert.ElementsMatch(t, []string{"#борщ", "#суп"}, found.TagNames())
	assert.False(t, found.IsFavorite)
}

func TestRecipeRepositoryFindByIDMissing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)

	_, err := repo.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, recipe.ErrNotFound)
}

func TestRecipeRepositoryUpdateReplacesChildren(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()

	rec := testutil.NewRecipeFactory(1).Recipe()
	require.NoError(t, repo.Create(ctx, rec))

	updated := &recipe.Recipe{
		ID:               rec.ID,
		Title:            "Оновлена назва",
		Description:      rec.Description,
		ShortDescription: rec.ShortDescription,
		PreparationTime:  15,
		Servings:         2,
		Type:             rec.Type,
		Ingredients:      []recipe.Ingredient{{Name: "Цибуля"}},
		Tags:             []recipe.Tag{{Name: "#новий"}},
	}
	updated.AddStep("Єдиний крок")

	require.NoError(t, repo.Update(ctx, updated))

	found, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Оновлена назва", found.Title)
	require.Len(t, found.Ingredients, 1)
	assert.Equal(t, "Цибуля", found.Ingredients[0].Name)
	require.Len(t, found.Steps, 1)
	assert.Equal(t, []string{"#новий"}, found.TagNames())

	// The replace is destructive, no orphaned child rows remain.
	var ingredientCount, stepCount int64
	require.NoError(t, db.Table("ingredients").Count(&ingredientCount).Error)
	require.NoError(t, db.Table("recipe_steps").Count(&stepCount).Error)
	assert.Equal(t, int64(1), ingredientCount)
	assert.Equal(t, int64(1), stepCount)
}

func TestRecipeRepositoryUpdateMissingIsNoOp(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()

	ghost := testutil.NewRecipeFactory(2).Recipe()
	ghost.ID = 999

	require.NoError(t, repo.Update(ctx, ghost))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecipeRepositoryDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()

	rec := testutil.NewRecipeFactory(3).Recipe()
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.FindByID(ctx, rec.ID)
	assert.ErrorIs(t, err, recipe.ErrNotFound)

	var ingredientCount, stepCount, linkCount int64
	require.NoError(t, db.Table("ingredients").Count(&ingredientCount).Error)
	require.NoError(t, db.Table("recipe_steps").Count(&stepCount).Error)
	require.NoError(t, db.Table("recipe_tags").Count(&linkCount).Error)
	assert.Zero(t, ingredientCount)
	assert.Zero(t, stepCount)
	assert.Zero(t, linkCount)

	// Deleting again is a no-op.
	assert.NoError(t, repo.Delete(ctx, rec.ID))
}

func TestRecipeRepositoryFindByType(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()
	factory := testutil.NewRecipeFactory(4)

	require.NoError(t, repo.Create(ctx, factory.Recipe()))
	require.NoError(t, repo.Create(ctx, factory.Recipe()))
	require.NoError(t, repo.Create(ctx, factory.Drink()))

	food, err := repo.FindByType(ctx, recipe.TypeFood)
	require.NoError(t, err)
	assert.Len(t, food, 2)

	drinks, err := repo.FindByType(ctx, recipe.TypeDrink)
	require.NoError(t, err)
	assert.Len(t, drinks, 1)

	foodCount, err := repo.CountByType(ctx, recipe.TypeFood)
	require.NoError(t, err)
	assert.Equal(t, int64(2), foodCount)
}

func TestRecipeRepositoryFindByCreatorNewestFirst(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()
	factory := testutil.NewRecipeFactory(5)

	first := factory.Recipe()
	first.CreatedBy = "olena"
	second := factory.Recipe()
	second.CreatedBy = "olena"
	other := factory.Recipe()
	other.CreatedBy = "taras"

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	mine, err := repo.FindByCreator(ctx, "olena")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
}

func TestRecipeRepositoryFindByIDsSkipsMissing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()

	rec := testutil.NewRecipeFactory(6).Recipe()
	require.NoError(t, repo.Create(ctx, rec))

	found, err := repo.FindByIDs(ctx, []int64{rec.ID, 404})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, rec.ID, found[0].ID)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
