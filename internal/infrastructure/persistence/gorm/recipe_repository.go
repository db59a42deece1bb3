package gorm

import (
	"context"
	"errors"

	"github.com/savorly/savorly/internal/domain/recipe"
	"github.com/savorly/savorly/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements outbound.RecipeRepository over sqlite.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a recipe repository.
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts the recipe with its ingredients and steps, attaching
// existing tags by exact name and creating the rest.
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)
	model.Tags = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(model).Error; err != nil {
			return err
		}
		tags, err := resolveTags(tx, rec.Tags)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(model).Association("Tags").Append(&tags); err != nil {
				return err
			}
			model.Tags = tags
		}
		return nil
	})
	if err != nil {
		return err
	}

	syncEntity(rec, model)
	return nil
}

// Update replaces the recipe's scalar fields and destructively replaces its
// ingredient and step collections. A missing ID is a no-op.
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Where("id = ?", rec.ID).Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}

	model := RecipeToModel(rec)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := map[string]interface{}{
			"title":             model.Title,
			"description":       model.Description,
			"short_description": model.ShortDescription,
			"image_path":        model.ImagePath,
			"preparation_time":  model.PreparationTime,
			"servings":          model.Servings,
			"type":              model.Type,
			"created_by":        model.CreatedBy,
		}
		if err := tx.Model(&RecipeModel{}).Where("id = ?", rec.ID).Updates(fields).Error; err != nil {
			return err
		}

		// Full replace: clear then re-insert, ingredient and step IDs churn.
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&IngredientModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&StepModel{}).Error; err != nil {
			return err
		}
		for i := range model.Ingredients {
			model.Ingredients[i].ID = 0
			model.Ingredients[i].RecipeID = rec.ID
		}
		for i := range model.Steps {
			model.Steps[i].ID = 0
			model.Steps[i].RecipeID = rec.ID
		}
		if len(model.Ingredients) > 0 {
			if err := tx.Create(&model.Ingredients).Error; err != nil {
				return err
			}
		}
		if len(model.Steps) > 0 {
			if err := tx.Create(&model.Steps).Error; err != nil {
				return err
			}
		}

		tags, err := resolveTags(tx, rec.Tags)
		if err != nil {
			return err
		}
		anchor := &RecipeModel{ID: rec.ID}
		if err := tx.Model(anchor).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		model.Tags = tags
		return nil
	})
	if err != nil {
		return err
	}

	model.ID = rec.ID
	syncEntity(rec, model)
	return nil
}

// Delete removes the recipe with its ingredients, steps and tag join rows.
// Tag rows stay even when orphaned. A missing ID is a no-op.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&RecipeModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return nil
		}
		if err := tx.Model(&RecipeModel{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&IngredientModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&StepModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&RecipeModel{}, id).Error
	})
}

// FindByID returns the recipe with children loaded.
func (r *RecipeRepository) FindByID(ctx context.Context, id int64) (*recipe.Recipe, error) {
	var model RecipeModel
	result := r.withChildren(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, recipe.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToRecipe(&model), nil
}

// FindByType returns all recipes of the given type in insertion order.
func (r *RecipeRepository) FindByType(ctx context.Context, t recipe.Type) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	result := r.withChildren(ctx).Where("type = ?", string(t)).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(models), nil
}

// FindByCreator returns the user's recipes, most recent first.
func (r *RecipeRepository) FindByCreator(ctx context.Context, username string) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	result := r.withChildren(ctx).Where("created_by = ?", username).Order("id DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(models), nil
}

// FindByIDs returns the recipes matching ids; missing IDs are skipped.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []int64) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return []*recipe.Recipe{}, nil
	}
	var models []RecipeModel
	result := r.withChildren(ctx).Where("id IN ?", ids).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(models), nil
}

// FindAll returns every recipe in insertion order.
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	result := r.withChildren(ctx).Order("id ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(models), nil
}

// CountByType counts recipes of the given type.
func (r *RecipeRepository) CountByType(ctx context.Context, t recipe.Type) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RecipeModel{}).Where("type = ?", string(t)).Count(&count).Error
	return count, err
}

// Count counts all recipes.
func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count).Error
	return count, err
}

func (r *RecipeRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Preload("Tags")
}

// resolveTags reuses an existing tag row per name or creates one.
func resolveTags(tx *gorm.DB, tags []recipe.Tag) ([]TagModel, error) {
	resolved := make([]TagModel, 0, len(tags))
	for _, t := range tags {
		var model TagModel
		if err := tx.Where("name = ?", t.Name).
			Attrs(TagModel{Name: t.Name}).
			FirstOrCreate(&model).Error; err != nil {
			return nil, err
		}
		resolved = append(resolved, model)
	}
	return resolved, nil
}

// syncEntity copies generated identifiers back onto the domain entity.
func syncEntity(rec *recipe.Recipe, model *RecipeModel) {
	rec.ID = model.ID
	for i := range model.Ingredients {
		if i < len(rec.Ingredients) {
			rec.Ingredients[i].ID = model.Ingredients[i].ID
			rec.Ingredients[i].RecipeID = model.ID
		}
	}
	for i := range model.Steps {
		if i < len(rec.Steps) {
			rec.Steps[i].ID = model.Steps[i].ID
			rec.Steps[i].RecipeID = model.ID
		}
	}
	for i := range model.Tags {
		if i < len(rec.Tags) {
			rec.Tags[i].ID = model.Tags[i].ID
		}
	}
}

func toEntities(models []RecipeModel) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes
}
