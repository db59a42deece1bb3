// Package favorites flips and reports recipe membership in the current
// user's favorite-ID list. The list on the user row is the single source of
// truth; Recipe.IsFavorite is a display field computed here and never
// persisted.
package favorites

import (
	"context"

	"github.com/savorly/savorly/internal/application/prefs"
	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/domain/recipe"
	"github.com/savorly/savorly/internal/ports/outbound"
	"github.com/savorly/savorly/pkg/apperr"
	"go.uber.org/zap"
)

// Service implements favorite toggling and lookup.
type Service struct {
	recipes outbound.RecipeRepository
	prefs   *prefs.Service
	session *session.Session
	logger  *zap.Logger
}

// NewService creates the favorites service.
func NewService(
	recipes outbound.RecipeRepository,
	prefsSvc *prefs.Service,
	sess *session.Session,
	logger *zap.Logger,
) *Service {
	return &Service{
		recipes: recipes,
		prefs:   prefsSvc,
		session: sess,
		logger:  logger.Named("favorites"),
	}
}

// Toggle flips rec's favorite membership for the current user. Idempotent in
// pairs: toggling twice restores both the flag and the list. Fails with
// NOT_AUTHENTICATED when logged out.
func (s *Service) Toggle(ctx context.Context, rec *recipe.Recipe) error {
	if !s.session.IsLoggedIn() {
		return apperr.New(apperr.CodeNotAuthenticated, "no user is logged in")
	}

	ids := s.prefs.Favorites()
	if contains(ids, rec.ID) {
		ids = remove(ids, rec.ID)
		rec.IsFavorite = false
		s.logger.Debug("removed favorite", zap.Int64("recipe_id", rec.ID))
	} else {
		ids = append(ids, rec.ID)
		rec.IsFavorite = true
		s.logger.Debug("added favorite", zap.Int64("recipe_id", rec.ID))
	}

	s.prefs.UpdateFavorites(ctx, ids)
	return nil
}

// IsFavorite reports membership in the favorite-ID list, false when
// logged out.
func (s *Service) IsFavorite(rec *recipe.Recipe) bool {
	if !s.session.IsLoggedIn() {
		return false
	}
	return contains(s.prefs.Favorites(), rec.ID)
}

// RefreshFlags sets each recipe's transient IsFavorite from the current
// list. A no-op when logged out: flags keep whatever value they had.
func (s *Service) RefreshFlags(recipes []*recipe.Recipe) {
	if !s.session.IsLoggedIn() {
		return
	}
	ids := s.prefs.Favorites()
	for _, rec := range recipes {
		rec.IsFavorite = contains(ids, rec.ID)
	}
}

// FavoriteRecipes loads the current user's favorited recipes. IDs of
// recipes that no longer exist are skipped (the list is best-effort, there
// is no foreign key holding it consistent).
func (s *Service) FavoriteRecipes(ctx context.Context) ([]*recipe.Recipe, error) {
	if !s.session.IsLoggedIn() {
		return nil, apperr.New(apperr.CodeNotAuthenticated, "no user is logged in")
	}
	recipes, err := s.recipes.FindByIDs(ctx, s.prefs.Favorites())
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "failed to load favorites", err)
	}
	for _, rec := range recipes {
		rec.IsFavorite = true
	}
	return recipes, nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []int64, id int64) []int64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
