package notebook_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/savorly/savorly/internal/application/notebook"
	"github.com/savorly/savorly/internal/application/prefs"
	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/domain/user"
	gormRepo "github.com/savorly/savorly/internal/infrastructure/persistence/gorm"
	"github.com/savorly/savorly/internal/infrastructure/snapshot"
	"github.com/savorly/savorly/internal/ports/outbound"
	"github.com/savorly/savorly/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type notebookStack struct {
	users    outbound.UserRepository
	session  *session.Session
	notebook *notebook.Service
}

func newNotebookStack(t *testing.T) *notebookStack {
	t.Helper()

	db := testutil.OpenTestDB(t)
	users := gormRepo.NewUserRepository(db)
	store, err := snapshot.NewFileStore(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)

	sess := session.New()
	prefsSvc := prefs.NewService(users, store, sess, "snapshot", zap.NewNop())

	return &notebookStack{
		users:    users,
		session:  sess,
		notebook: notebook.NewService(prefsSvc, sess, zap.NewNop()),
	}
}

func (s *notebookStack) login(t *testing.T) {
	t.Helper()
	u := testutil.NewUserFactory(1).User(t)
	require.NoError(t, s.users.Create(context.Background(), u))
	s.session.Set(u)
}

func names(items []user.ShoppingItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestAddTrimsAndSkipsBlank(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.Add(ctx, "  Молоко  ")
	stack.notebook.Add(ctx, "   ")
	stack.notebook.Add(ctx, "")

	items := stack.notebook.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Молоко", items[0].Name)
	assert.False(t, items[0].IsChecked)
}

func TestAddWhenLoggedOutIsNoOp(t *testing.T) {
	stack := newNotebookStack(t)

	stack.notebook.Add(context.Background(), "Молоко")
	assert.Empty(t, stack.notebook.Items())
}

func TestAddManyAppendsIngredientList(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.Add(ctx, "Сіль")
	stack.notebook.AddMany(ctx, []string{"Буряк", " ", "Капуста"})

	assert.Equal(t, []string{"Сіль", "Буряк", "Капуста"}, names(stack.notebook.Items()))
}

func TestSetCheckedAndStats(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.AddMany(ctx, []string{"Молоко", "Хліб", "Сир"})
	stack.notebook.SetChecked(ctx, 1, true)

	items := stack.notebook.Items()
	assert.False(t, items[0].IsChecked)
	assert.True(t, items[1].IsChecked)

	total, completed := stack.notebook.Stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, completed)

	// Out-of-range indexes are ignored.
	stack.notebook.SetChecked(ctx, -1, true)
	stack.notebook.SetChecked(ctx, 10, true)
	total, completed = stack.notebook.Stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, completed)
}

func TestRemoveAt(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.AddMany(ctx, []string{"Молоко", "Хліб", "Сир"})
	stack.notebook.RemoveAt(ctx, 1)

	assert.Equal(t, []string{"Молоко", "Сир"}, names(stack.notebook.Items()))

	stack.notebook.RemoveAt(ctx, 10)
	assert.Len(t, stack.notebook.Items(), 2)
}

func TestClearCompletedKeepsUnchecked(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.AddMany(ctx, []string{"Молоко", "Хліб", "Сир"})
	stack.notebook.SetChecked(ctx, 0, true)
	stack.notebook.SetChecked(ctx, 2, true)

	stack.notebook.ClearCompleted(ctx)

	assert.Equal(t, []string{"Хліб"}, names(stack.notebook.Items()))
}

func TestClear(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.AddMany(ctx, []string{"Молоко", "Хліб"})
	stack.notebook.Clear(ctx)

	assert.Empty(t, stack.notebook.Items())

	total, completed := stack.notebook.Stats()
	assert.Zero(t, total)
	assert.Zero(t, completed)
}

func TestListSurvivesInUserRow(t *testing.T) {
	stack := newNotebookStack(t)
	stack.login(t)
	ctx := context.Background()

	stack.notebook.Add(ctx, "Молоко")
	stack.notebook.SetChecked(ctx, 0, true)

	stored, err := stack.users.FindByID(ctx, stack.session.Current().ID)
	require.NoError(t, err)
	require.Len(t, stored.ShoppingList, 1)
	assert.Equal(t, "Молоко", stored.ShoppingList[0].Name)
	assert.True(t, stored.ShoppingList[0].IsChecked)
}
