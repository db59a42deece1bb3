// Package notebook manages the per-user shopping list.
package notebook

import (
	"context"
	"strings"

	"github.com/savorly/savorly/internal/application/prefs"
	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/domain/user"
	"go.uber.org/zap"
)

// Service edits the shopping list through the preference layer, so every
// change lands in the database, the session and the snapshot file in one
// pass. All operations are silent no-ops when nobody is logged in.
type Service struct {
	prefs   *prefs.Service
	session *session.Session
	logger  *zap.Logger
}

// NewService creates the notebook service.
func NewService(prefsSvc *prefs.Service, sess *session.Session, logger *zap.Logger) *Service {
	return &Service{
		prefs:   prefsSvc,
		session: sess,
		logger:  logger.Named("notebook"),
	}
}

// Items returns a copy of the current shopping list.
func (s *Service) Items() []user.ShoppingItem {
	return s.prefs.ShoppingList()
}

// Add appends an unchecked item. Blank names are ignored.
func (s *Service) Add(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" || !s.session.IsLoggedIn() {
		return
	}
	items := append(s.prefs.ShoppingList(), user.ShoppingItem{Name: name})
	s.prefs.UpdateShoppingList(ctx, items)
}

// AddMany appends several items at once, typically the ingredient list of
// a recipe. Blank names are skipped.
func (s *Service) AddMany(ctx context.Context, names []string) {
	if !s.session.IsLoggedIn() {
		return
	}
	items := s.prefs.ShoppingList()
	added := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		items = append(items, user.ShoppingItem{Name: name})
		added++
	}
	if added == 0 {
		return
	}
	s.prefs.UpdateShoppingList(ctx, items)
	s.logger.Debug("added shopping items", zap.Int("count", added))
}

// SetChecked marks the item at index as bought or not. Out-of-range
// indexes are ignored.
func (s *Service) SetChecked(ctx context.Context, index int, checked bool) {
	items := s.prefs.ShoppingList()
	if index < 0 || index >= len(items) {
		return
	}
	if items[index].IsChecked == checked {
		return
	}
	items[index].IsChecked = checked
	s.prefs.UpdateShoppingList(ctx, items)
}

// RemoveAt deletes the item at index. Out-of-range indexes are ignored.
func (s *Service) RemoveAt(ctx context.Context, index int) {
	items := s.prefs.ShoppingList()
	if index < 0 || index >= len(items) {
		return
	}
	items = append(items[:index], items[index+1:]...)
	s.prefs.UpdateShoppingList(ctx, items)
}

// ClearCompleted removes every checked item, keeping the rest in order.
func (s *Service) ClearCompleted(ctx context.Context) {
	items := s.prefs.ShoppingList()
	remaining := items[:0]
	for _, item := range items {
		if !item.IsChecked {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		return
	}
	s.prefs.UpdateShoppingList(ctx, remaining)
}

// Clear empties the whole list.
func (s *Service) Clear(ctx context.Context) {
	if len(s.prefs.ShoppingList()) == 0 {
		return
	}
	s.prefs.UpdateShoppingList(ctx, []user.ShoppingItem{})
}

// Stats reports list totals for the notebook header. Both counts are zero
// when nobody is logged in.
func (s *Service) Stats() (total, completed int) {
	for _, item := range s.prefs.ShoppingList() {
		total++
		if item.IsChecked {
			completed++
		}
	}
	return total, completed
}
