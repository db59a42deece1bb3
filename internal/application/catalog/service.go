// Package catalog implements recipe browsing, authoring and search.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/savorly/savorly/internal/application/favorites"
	"github.com/savorly/savorly/internal/application/prefs"
	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/domain/recipe"
	"github.com/savorly/savorly/internal/ports/outbound"
	"github.com/savorly/savorly/pkg/apperr"
	"go.uber.org/zap"
)

// Service implements the catalog use cases over the recipe repository.
type Service struct {
	recipes   outbound.RecipeRepository
	prefs     *prefs.Service
	favorites *favorites.Service
	session   *session.Session
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewService creates the catalog service.
func NewService(
	recipes outbound.RecipeRepository,
	prefsSvc *prefs.Service,
	favoritesSvc *favorites.Service,
	sess *session.Session,
	logger *zap.Logger,
) *Service {
	return &Service{
		recipes:   recipes,
		prefs:     prefsSvc,
		favorites: favoritesSvc,
		session:   sess,
		validate:  validator.New(),
		logger:    logger.Named("catalog"),
	}
}

// RecipeForm carries the user input for creating or editing a recipe.
type RecipeForm struct {
	Title            string      `validate:"required,min=3"`
	ShortDescription string      `validate:"required"`
	Description      string      `validate:"required"`
	ImagePath        string      `validate:"-"`
	PreparationTime  int         `validate:"gt=0"`
	Servings         int         `validate:"gt=0"`
	Type             recipe.Type `validate:"oneof=food drink"`
	Ingredients      []string    `validate:"min=1,dive,required"`
	Steps            []string    `validate:"min=1,dive,required"`
	Tags             []string    `validate:"-"`
}

// Create validates the form, inserts the recipe with its children and tags,
// and records the new ID in the author's created-recipe list. Returns the
// stored recipe with its generated ID.
func (s *Service) Create(ctx context.Context, form RecipeForm) (*recipe.Recipe, error) {
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	rec := s.formToRecipe(form, 0)
	if u := s.session.Current(); u != nil {
		rec.CreatedBy = u.Username
		appendDefaultTags(rec)
	}

	if err := s.recipes.Create(ctx, rec); err != nil {
		s.logger.Error("failed to save recipe", zap.Error(err))
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to save recipe", err)
	}

	if s.session.IsLoggedIn() {
		s.prefs.UpdateCreatedRecipeIDs(ctx, append(s.prefs.CreatedRecipeIDs(), rec.ID))
	}

	s.logger.Info("recipe created",
		zap.Int64("recipe_id", rec.ID),
		zap.String("title", rec.Title),
	)
	return rec, nil
}

// Update validates the form and replaces the stored recipe. The ingredient
// and step collections are fully replaced, not merged, so child row IDs
// change on every edit. Updating a missing recipe is a no-op returning the
// untouched nil recipe.
func (s *Service) Update(ctx context.Context, id int64, form RecipeForm) (*recipe.Recipe, error) {
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	existing, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to load recipe", err)
	}

	rec := s.formToRecipe(form, id)
	rec.CreatedBy = existing.CreatedBy

	if err := s.recipes.Update(ctx, rec); err != nil {
		s.logger.Error("failed to update recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to save recipe", err)
	}

	s.favorites.RefreshFlags([]*recipe.Recipe{rec})
	s.logger.Info("recipe updated", zap.Int64("recipe_id", id))
	return rec, nil
}

// Delete removes the recipe and drops its ID from the current user's
// favorite and created-recipe lists. Deleting a missing recipe is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return apperr.Wrap(apperr.CodeInternal, "failed to delete recipe", err)
	}

	if s.session.IsLoggedIn() {
		s.prefs.UpdateFavorites(ctx, removeID(s.prefs.Favorites(), id))
		s.prefs.UpdateCreatedRecipeIDs(ctx, removeID(s.prefs.CreatedRecipeIDs(), id))
	}

	s.logger.Info("recipe deleted", zap.Int64("recipe_id", id))
	return nil
}

// Get returns the recipe with the favorite flag set for the current user.
func (s *Service) Get(ctx context.Context, id int64) (*recipe.Recipe, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "recipe not found")
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to load recipe", err)
	}
	s.favorites.RefreshFlags([]*recipe.Recipe{rec})
	return rec, nil
}

// ListByType returns all recipes of the given type in insertion order.
func (s *Service) ListByType(ctx context.Context, t recipe.Type) ([]*recipe.Recipe, error) {
	recipes, err := s.recipes.FindByType(ctx, t)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to load recipes", err)
	}
	s.favorites.RefreshFlags(recipes)
	return recipes, nil
}

// ListAll returns every recipe in insertion order.
func (s *Service) ListAll(ctx context.Context) ([]*recipe.Recipe, error) {
	recipes, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to load recipes", err)
	}
	s.favorites.RefreshFlags(recipes)
	return recipes, nil
}

// MyRecipes returns the current user's recipes, most recent first. Fails
// with NOT_AUTHENTICATED when logged out.
func (s *Service) MyRecipes(ctx context.Context) ([]*recipe.Recipe, error) {
	u := s.session.Current()
	if u == nil {
		return nil, apperr.New(apperr.CodeNotAuthenticated, "no user is logged in")
	}
	recipes, err := s.recipes.FindByCreator(ctx, u.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to load recipes", err)
	}
	s.favorites.RefreshFlags(recipes)
	return recipes, nil
}

// SearchFilter narrows a catalog scan. Zero values mean "no constraint";
// the filters compose.
type SearchFilter struct {
	// Query matches case-insensitively as a substring of the title,
	// description, ingredient names or tag names.
	Query string
	// Tag requires a case-insensitive exact tag match.
	Tag string
	// Type limits results to food or drink.
	Type recipe.Type
}

// Search linearly scans the catalog applying the filter in memory.
func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]*recipe.Recipe, error) {
	all, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "search failed", err)
	}

	results := make([]*recipe.Recipe, 0, len(all))
	for _, rec := range all {
		if filter.Query != "" && !rec.MatchesQuery(filter.Query) {
			continue
		}
		if filter.Tag != "" && !rec.HasTag(filter.Tag) {
			continue
		}
		if filter.Type != "" && rec.Type != filter.Type {
			continue
		}
		results = append(results, rec)
	}

	s.favorites.RefreshFlags(results)
	return results, nil
}

// Counts reports catalog totals for the startup summary.
func (s *Service) Counts(ctx context.Context) (total, food, drink int64, err error) {
	if total, err = s.recipes.Count(ctx); err != nil {
		return 0, 0, 0, err
	}
	if food, err = s.recipes.CountByType(ctx, recipe.TypeFood); err != nil {
		return 0, 0, 0, err
	}
	if drink, err = s.recipes.CountByType(ctx, recipe.TypeDrink); err != nil {
		return 0, 0, 0, err
	}
	return total, food, drink, nil
}

// formToRecipe builds the domain entity from validated input. Ingredient
// and step lines are trimmed; blank-after-trim lines were already rejected
// by validation.
func (s *Service) formToRecipe(form RecipeForm, id int64) *recipe.Recipe {
	rec := &recipe.Recipe{
		ID:               id,
		Title:            strings.TrimSpace(form.Title),
		Description:      strings.TrimSpace(form.Description),
		ShortDescription: strings.TrimSpace(form.ShortDescription),
		ImagePath:        strings.TrimSpace(form.ImagePath),
		PreparationTime:  form.PreparationTime,
		Servings:         form.Servings,
		Type:             form.Type,
	}
	for _, name := range form.Ingredients {
		rec.Ingredients = append(rec.Ingredients, recipe.Ingredient{
			Name:     strings.TrimSpace(name),
			RecipeID: id,
		})
	}
	for _, instruction := range form.Steps {
		rec.AddStep(strings.TrimSpace(instruction))
	}
	for _, name := range form.Tags {
		name = strings.TrimSpace(name)
		if name == "" || rec.HasTag(name) {
			continue
		}
		rec.Tags = append(rec.Tags, recipe.Tag{Name: name})
	}
	return rec
}

// validateForm collects every violation into a single VALIDATION_FAILED
// error; nothing is persisted when it fails. All text fields are trimmed
// before the tag rules run, so whitespace-only input counts as empty.
func (s *Service) validateForm(form RecipeForm) error {
	norm := form
	norm.Title = strings.TrimSpace(form.Title)
	norm.ShortDescription = strings.TrimSpace(form.ShortDescription)
	norm.Description = strings.TrimSpace(form.Description)
	norm.Ingredients = trimAll(form.Ingredients)
	norm.Steps = trimAll(form.Steps)

	err := s.validate.Struct(norm)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Wrap(apperr.CodeInternal, "validation failed", err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = appendOnce(messages, messageFor(fe))
	}
	return apperr.NewValidation(messages)
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// appendOnce keeps the message list free of repeats when several blank
// lines trip the same per-element rule.
func appendOnce(messages []string, msg string) []string {
	for _, m := range messages {
		if m == msg {
			return messages
		}
	}
	return append(messages, msg)
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch {
	case field == "Title":
		if fe.Tag() == "min" {
			return "recipe title must be at least 3 characters"
		}
		return "enter a recipe title"
	case field == "ShortDescription":
		return "enter a short description"
	case field == "Description":
		return "enter a full recipe description"
	case field == "PreparationTime":
		return "preparation time must be greater than 0 minutes"
	case field == "Servings":
		return "servings must be greater than 0"
	case field == "Type":
		return "choose whether this is a food or a drink recipe"
	// Element-level failures report as Ingredients[i] / Steps[i].
	case strings.HasPrefix(field, "Ingredients"):
		if fe.Tag() == "min" {
			return "add at least one ingredient"
		}
		return "ingredient names must not be blank"
	case strings.HasPrefix(field, "Steps"):
		if fe.Tag() == "min" {
			return "add at least one cooking step"
		}
		return "step instructions must not be blank"
	}
	return fe.Error()
}

// appendDefaultTags adds the house tags attached to every user-authored
// recipe.
func appendDefaultTags(rec *recipe.Recipe) {
	defaults := []string{"#свіжий", "#домашній"}
	if rec.Type == recipe.TypeDrink {
		defaults = []string{"#освіжаючий", "#домашній"}
	}
	for _, name := range defaults {
		if !rec.HasTag(name) {
			rec.Tags = append(rec.Tags, recipe.Tag{Name: name})
		}
	}
}

func removeID(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
