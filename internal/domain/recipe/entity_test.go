package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeEntityTestSuite exercises the recipe entity behavior.
type RecipeEntityTestSuite struct {
	suite.Suite
}

func (suite *RecipeEntityTestSuite) TestParseType() {
	suite.Run("KnownTypes_ShouldParse", func() {
		t1, err := ParseType("food")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), TypeFood, t1)

		t2, err := ParseType("  Drink ")
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), TypeDrink, t2)
	})

	suite.Run("UnknownType_ShouldReturnError", func() {
		_, err := ParseType("dessert")
		assert.ErrorIs(suite.T(), err, ErrUnknownType)
	})
}

func (suite *RecipeEntityTestSuite) TestStepNumbering() {
	suite.Run("AddStep_ShouldAssignDenseNumbers", func() {
		rec := &Recipe{}
		rec.AddStep("boil water")
		rec.AddStep("add pasta")
		rec.AddStep("drain")

		require.Len(suite.T(), rec.Steps, 3)
		for i, step := range rec.Steps {
			assert.Equal(suite.T(), i+1, step.StepNumber)
		}
	})

	suite.Run("RemoveMiddleStep_ShouldRenumberRemainder", func() {
		rec := &Recipe{}
		rec.AddStep("first")
		rec.AddStep("second")
		rec.AddStep("third")

		rec.RemoveStep(1)

		require.Len(suite.T(), rec.Steps, 2)
		assert.Equal(suite.T(), "first", rec.Steps[0].Instruction)
		assert.Equal(suite.T(), 1, rec.Steps[0].StepNumber)
		assert.Equal(suite.T(), "third", rec.Steps[1].Instruction)
		assert.Equal(suite.T(), 2, rec.Steps[1].StepNumber)
	})

	suite.Run("RemoveOutOfRange_ShouldBeNoOp", func() {
		rec := &Recipe{}
		rec.AddStep("only step")

		rec.RemoveStep(-1)
		rec.RemoveStep(5)

		require.Len(suite.T(), rec.Steps, 1)
		assert.Equal(suite.T(), 1, rec.Steps[0].StepNumber)
	})
}

func (suite *RecipeEntityTestSuite) TestTags() {
	rec := &Recipe{
		Tags: []Tag{{Name: "#суп"}, {Name: "#домашній"}},
	}

	assert.True(suite.T(), rec.HasTag("#суп"))
	assert.True(suite.T(), rec.HasTag("#СУП"))
	assert.False(suite.T(), rec.HasTag("#су"))
	assert.Equal(suite.T(), []string{"#суп", "#домашній"}, rec.TagNames())
}

func (suite *RecipeEntityTestSuite) TestMatchesQuery() {
	rec := &Recipe{
		Title:       "Борщ український",
		Description: "Традиційний суп з буряком",
		Ingredients: []Ingredient{{Name: "Буряк"}, {Name: "Капуста"}},
		Tags:        []Tag{{Name: "#борщ"}},
	}

	suite.Run("EmptyQuery_MatchesEverything", func() {
		assert.True(suite.T(), rec.MatchesQuery(""))
	})

	suite.Run("TitleSubstring_Matches", func() {
		assert.True(suite.T(), rec.MatchesQuery("борщ"))
		assert.True(suite.T(), rec.MatchesQuery("БОРЩ"))
	})

	suite.Run("IngredientSubstring_Matches", func() {
		assert.True(suite.T(), rec.MatchesQuery("капуста"))
	})

	suite.Run("DescriptionSubstring_Matches", func() {
		assert.True(suite.T(), rec.MatchesQuery("суп"))
	})

	suite.Run("NoOccurrence_DoesNotMatch", func() {
		assert.False(suite.T(), rec.MatchesQuery("піца"))
	})
}

func TestRecipeEntityTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeEntityTestSuite))
}
