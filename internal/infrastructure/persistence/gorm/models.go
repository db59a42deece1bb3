// Package gorm provides the GORM models and repository implementations
// backing the catalog's sqlite store.
package gorm

import (
	"time"
)

// RecipeModel is the recipes table row.
type RecipeModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Title            string `gorm:"type:varchar(255);not null;index"`
	Description      string `gorm:"type:text"`
	ShortDescription string `gorm:"type:text"`
	ImagePath        string `gorm:"type:text"`
	PreparationTime  int    `gorm:"default:0"`
	Servings         int    `gorm:"default:1"`
	Type             string `gorm:"type:varchar(10);index"`
	CreatedBy        string `gorm:"type:varchar(50);index"`

	Ingredients []IngredientModel `gorm:"foreignKey:RecipeID"`
	Steps       []StepModel       `gorm:"foreignKey:RecipeID"`
	Tags        []TagModel        `gorm:"many2many:recipe_tags"`
}

// IngredientModel is the ingredients table row.
type IngredientModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	RecipeID int64  `gorm:"not null;index"`
}

// StepModel is the recipe_steps table row.
type StepModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StepNumber  int    `gorm:"not null"`
	Instruction string `gorm:"type:text;not null"`
	RecipeID    int64  `gorm:"not null;index"`
}

// TagModel is the tags table row. Names are reused by exact match when
// attaching but are not unique at the database level.
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;index"`

	Recipes []RecipeModel `gorm:"many2many:recipe_tags"`
}

// UserModel is the users table row. The three preference columns hold
// JSON-encoded text mirroring the snapshot file format.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	FavoriteRecipes   string `gorm:"type:text"`
	ShoppingList      string `gorm:"type:text"`
	CreatedRecipesIDs string `gorm:"column:created_recipes_ids;type:text"`
}

func (RecipeModel) TableName() string     { return "recipes" }
func (IngredientModel) TableName() string { return "ingredients" }
func (StepModel) TableName() string       { return "recipe_steps" }
func (TagModel) TableName() string        { return "tags" }
func (UserModel) TableName() string       { return "users" }
