package gorm

import (
	"sort"

	"github.com/savorly/savorly/internal/domain/recipe"
	"github.com/savorly/savorly/internal/domain/user"
)

// RecipeToModel converts a domain recipe to its row form. The transient
// IsFavorite field is intentionally dropped.
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		ImagePath:        r.ImagePath,
		PreparationTime:  r.PreparationTime,
		Servings:         r.Servings,
		Type:             string(r.Type),
		CreatedBy:        r.CreatedBy,
	}
	for _, ing := range r.Ingredients {
		model.Ingredients = append(model.Ingredients, IngredientModel{
			ID:       ing.ID,
			Name:     ing.Name,
			RecipeID: r.ID,
		})
	}
	for _, s := range r.Steps {
		model.Steps = append(model.Steps, StepModel{
			ID:          s.ID,
			StepNumber:  s.StepNumber,
			Instruction: s.Instruction,
			RecipeID:    r.ID,
		})
	}
	for _, t := range r.Tags {
		model.Tags = append(model.Tags, TagModel{ID: t.ID, Name: t.Name})
	}
	return model
}

// ModelToRecipe converts a row back to the domain form, with steps ordered
// by step number.
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	r := &recipe.Recipe{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		ImagePath:        m.ImagePath,
		PreparationTime:  m.PreparationTime,
		Servings:         m.Servings,
		Type:             recipe.Type(m.Type),
		CreatedBy:        m.CreatedBy,
	}
	for _, ing := range m.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			RecipeID: ing.RecipeID,
		})
	}
	for _, s := range m.Steps {
		r.Steps = append(r.Steps, recipe.Step{
			ID:          s.ID,
			StepNumber:  s.StepNumber,
			Instruction: s.Instruction,
			RecipeID:    s.RecipeID,
		})
	}
	sort.Slice(r.Steps, func(i, j int) bool {
		return r.Steps[i].StepNumber < r.Steps[j].StepNumber
	})
	for _, t := range m.Tags {
		r.Tags = append(r.Tags, recipe.Tag{ID: t.ID, Name: t.Name})
	}
	return r
}

// UserToModel converts a user entity to its row form, encoding the three
// preference lists as JSON text.
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		CreatedAt:         u.CreatedAt,
		FavoriteRecipes:   user.EncodeIDs(u.FavoriteRecipeIDs),
		ShoppingList:      user.EncodeItems(u.ShoppingList),
		CreatedRecipesIDs: user.EncodeIDs(u.CreatedRecipeIDs),
	}
}

// ModelToUser converts a row to the user entity. Corrupt preference JSON
// decodes to an empty list rather than failing the load.
func ModelToUser(m *UserModel) *user.User {
	return &user.User{
		ID:                m.ID,
		Username:          m.Username,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		CreatedAt:         m.CreatedAt,
		FavoriteRecipeIDs: user.DecodeIDs(m.FavoriteRecipes),
		ShoppingList:      user.DecodeItems(m.ShoppingList),
		CreatedRecipeIDs:  user.DecodeIDs(m.CreatedRecipesIDs),
	}
}
