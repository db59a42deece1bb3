// Package prefs keeps a logged-in user's three preference lists (favorite
// recipe IDs, shopping list, created-recipe IDs) synchronized between the
// user row, the in-memory session copy and the on-disk snapshot file.
package prefs

import (
	"context"
	"time"

	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/domain/user"
	"github.com/savorly/savorly/internal/ports/outbound"
	"go.uber.org/zap"
)

// Service implements the preference write path: database row first, then
// the session copy, then the snapshot file. Snapshot failures leave the
// database authoritative and are logged, never surfaced: preference
// persistence is best-effort and must not block the user.
type Service struct {
	users      outbound.UserRepository
	store      outbound.SnapshotStore
	session    *session.Session
	precedence string
	logger     *zap.Logger
}

// NewService creates the preference service. precedence is "snapshot" or
// "database" and decides which side wins at login reconciliation.
func NewService(
	users outbound.UserRepository,
	store outbound.SnapshotStore,
	sess *session.Session,
	precedence string,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:      users,
		store:      store,
		session:    sess,
		precedence: precedence,
		logger:     logger.Named("prefs"),
	}
}

// Favorites returns the current user's favorite recipe IDs, empty when
// logged out.
func (s *Service) Favorites() []int64 {
	u := s.session.Current()
	if u == nil {
		return []int64{}
	}
	return append([]int64{}, u.FavoriteRecipeIDs...)
}

// UpdateFavorites writes the favorite-ID list. A no-op when logged out.
func (s *Service) UpdateFavorites(ctx context.Context, ids []int64) {
	s.update(ctx, func(u *user.User) {
		u.FavoriteRecipeIDs = append([]int64{}, ids...)
	})
}

// ShoppingList returns the current user's shopping list, empty when
// logged out.
func (s *Service) ShoppingList() []user.ShoppingItem {
	u := s.session.Current()
	if u == nil {
		return []user.ShoppingItem{}
	}
	return append([]user.ShoppingItem{}, u.ShoppingList...)
}

// UpdateShoppingList writes the shopping list. A no-op when logged out.
func (s *Service) UpdateShoppingList(ctx context.Context, items []user.ShoppingItem) {
	s.update(ctx, func(u *user.User) {
		u.ShoppingList = append([]user.ShoppingItem{}, items...)
	})
}

// CreatedRecipeIDs returns the IDs of recipes the current user authored.
func (s *Service) CreatedRecipeIDs() []int64 {
	u := s.session.Current()
	if u == nil {
		return []int64{}
	}
	return append([]int64{}, u.CreatedRecipeIDs...)
}

// UpdateCreatedRecipeIDs writes the created-recipe list. A no-op when
// logged out.
func (s *Service) UpdateCreatedRecipeIDs(ctx context.Context, ids []int64) {
	s.update(ctx, func(u *user.User) {
		u.CreatedRecipeIDs = append([]int64{}, ids...)
	})
}

// update applies mutate to a copy of the session user, then persists in the
// fixed order: row, session, snapshot.
func (s *Service) update(ctx context.Context, mutate func(*user.User)) {
	current := s.session.Current()
	if current == nil {
		return
	}

	updated := *current
	mutate(&updated)

	if err := s.users.UpdatePreferences(ctx, &updated); err != nil {
		s.logger.Error("failed to persist preferences",
			zap.Int64("user_id", current.ID),
			zap.Error(err),
		)
		return
	}
	s.session.Set(&updated)
	s.SaveSnapshot()
}

// SaveSnapshot mirrors the session user's preference state to
// user_data.json. A no-op when logged out; write failures are logged and
// absorbed.
func (s *Service) SaveSnapshot() {
	u := s.session.Current()
	if u == nil {
		return
	}
	snap := outbound.Snapshot{
		UserID:            u.ID,
		FavoriteRecipes:   user.EncodeIDs(u.FavoriteRecipeIDs),
		ShoppingList:      user.EncodeItems(u.ShoppingList),
		CreatedRecipesIDs: user.EncodeIDs(u.CreatedRecipeIDs),
		LastLogin:         time.Now(),
	}
	if err := s.store.Save(snap); err != nil {
		s.logger.Warn("failed to write snapshot", zap.Error(err))
	}
}

// ReconcileOnLogin resolves the snapshot file against the just-loaded user
// row. Under snapshot precedence the file's fields overwrite the row and
// session (resume last known state); under database precedence the row wins
// and the file is refreshed from it. Mismatched or unreadable snapshots are
// ignored. All failures are logged and absorbed.
func (s *Service) ReconcileOnLogin(ctx context.Context) {
	current := s.session.Current()
	if current == nil {
		return
	}

	snap, err := s.store.Load()
	if err != nil {
		s.logger.Warn("failed to read snapshot", zap.Error(err))
		return
	}
	if snap == nil || snap.UserID != current.ID {
		return
	}

	if s.precedence == "database" {
		s.SaveSnapshot()
		return
	}

	updated := *current
	updated.FavoriteRecipeIDs = user.DecodeIDs(snap.FavoriteRecipes)
	updated.ShoppingList = user.DecodeItems(snap.ShoppingList)
	updated.CreatedRecipeIDs = user.DecodeIDs(snap.CreatedRecipesIDs)

	if err := s.users.UpdatePreferences(ctx, &updated); err != nil {
		s.logger.Error("failed to apply snapshot to user row",
			zap.Int64("user_id", current.ID),
			zap.Error(err),
		)
		return
	}
	s.session.Set(&updated)
}
