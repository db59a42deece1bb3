// Package recipe contains the catalog's recipe domain types.
package recipe

import (
	"strings"
)

// Type discriminates food from drink recipes.
type Type string

const (
	TypeFood  Type = "food"
	TypeDrink Type = "drink"
)

// ParseType normalizes a string into a recipe Type.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeFood:
		return TypeFood, nil
	case TypeDrink:
		return TypeDrink, nil
	}
	return "", ErrUnknownType
}

// Recipe is a food or drink entry together with its owned ingredients and
// steps and its attached tags.
type Recipe struct {
	ID               int64
	Title            string
	Description      string
	ShortDescription string
	ImagePath        string
	PreparationTime  int // minutes
	Servings         int
	Type             Type
	CreatedBy        string // username of the author, empty for seeded recipes

	// IsFavorite is a display field computed from the current user's
	// favorite-ID list. It is never persisted.
	IsFavorite bool

	Ingredients []Ingredient
	Steps       []Step
	Tags        []Tag
}

// Ingredient is a free-text ingredient line; quantity and unit may be part
// of the name.
type Ingredient struct {
	ID       int64
	Name     string
	RecipeID int64
}

// Step is a single numbered cooking instruction.
type Step struct {
	ID          int64
	StepNumber  int
	Instruction string
	RecipeID    int64
}

// Tag is a free-text label shared across recipes.
type Tag struct {
	ID   int64
	Name string
}

// AddStep appends an instruction with the next dense step number.
func (r *Recipe) AddStep(instruction string) {
	r.Steps = append(r.Steps, Step{
		StepNumber:  len(r.Steps) + 1,
		Instruction: instruction,
		RecipeID:    r.ID,
	})
}

// RemoveStep deletes the step at position idx and renumbers the remainder so
// step numbers stay dense and 1-based.
func (r *Recipe) RemoveStep(idx int) {
	if idx < 0 || idx >= len(r.Steps) {
		return
	}
	r.Steps = append(r.Steps[:idx], r.Steps[idx+1:]...)
	r.RenumberSteps()
}

// RenumberSteps rewrites step numbers to 1..n in slice order.
func (r *Recipe) RenumberSteps() {
	for i := range r.Steps {
		r.Steps[i].StepNumber = i + 1
	}
}

// TagNames returns the names of all attached tags.
func (r *Recipe) TagNames() []string {
	names := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		names[i] = t.Name
	}
	return names
}

// HasTag reports a case-insensitive exact tag match.
func (r *Recipe) HasTag(name string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the lower-cased query occurs in the title,
// description, any ingredient name or any tag name.
func (r *Recipe) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}
	return false
}
