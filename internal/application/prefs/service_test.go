package prefs_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

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

func newPrefsStack(t *testing.T) (*prefs.Service, *session.Session, outbound.UserRepository, *snapshot.FileStore) {
	t.Helper()

	db := testutil.OpenTestDB(t)
	users := gormRepo.NewUserRepository(db)
	store, err := snapshot.NewFileStore(filepath.Join(t.TempDir(), "snapshots"))
	require.NoError(t, err)

	sess := session.New()
	svc := prefs.NewService(users, store, sess, "snapshot", zap.NewNop())
	return svc, sess, users, store
}

func loginUser(t *testing.T, sess *session.Session, users outbound.UserRepository) *user.User {
	t.Helper()
	u := testutil.NewUserFactory(1).User(t)
	require.NoError(t, users.Create(context.Background(), u))
	sess.Set(u)
	return u
}

func TestAccessorsEmptyWhenLoggedOut(t *testing.T) {
	svc, _, _, _ := newPrefsStack(t)

	assert.Empty(t, svc.Favorites())
	assert.Empty(t, svc.ShoppingList())
	assert.Empty(t, svc.CreatedRecipeIDs())
}

func TestUpdateWhenLoggedOutIsNoOp(t *testing.T) {
	svc, _, _, store := newPrefsStack(t)

	svc.UpdateFavorites(context.Background(), []int64{1})

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestUpdateWritesRowSessionAndSnapshot(t *testing.T) {
	svc, sess, users, store := newPrefsStack(t)
	u := loginUser(t, sess, users)
	ctx := context.Background()

	svc.UpdateFavorites(ctx, []int64{4, 2})

	// Session copy reflects the write.
	assert.Equal(t, []int64{4, 2}, svc.Favorites())

	// The user row reflects the write.
	stored, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2}, stored.FavoriteRecipeIDs)

	// The snapshot file reflects the write.
	snap, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, u.ID, snap.UserID)
	assert.Equal(t, "[4,2]", snap.FavoriteRecipes)
	assert.False(t, snap.LastLogin.IsZero())
}

func TestAccessorsReturnCopies(t *testing.T) {
	svc, sess, users, _ := newPrefsStack(t)
	loginUser(t, sess, users)
	ctx := context.Background()

	svc.UpdateFavorites(ctx, []int64{1, 2})

	got := svc.Favorites()
	got[0] = 99

	assert.Equal(t, []int64{1, 2}, svc.Favorites())
}

// failingStore always errors, standing in for an unwritable snapshot dir.
type failingStore struct{}

func (failingStore) Save(outbound.Snapshot) error      { return errors.New("disk full") }
func (failingStore) Load() (*outbound.Snapshot, error) { return nil, errors.New("disk full") }

func TestSnapshotFailureDoesNotBlockWrites(t *testing.T) {
	db := testutil.OpenTestDB(t)
	users := gormRepo.NewUserRepository(db)
	sess := session.New()
	svc := prefs.NewService(users, failingStore{}, sess, "snapshot", zap.NewNop())

	u := loginUser(t, sess, users)
	ctx := context.Background()

	svc.UpdateFavorites(ctx, []int64{7})

	// The row and session still carry the write.
	assert.Equal(t, []int64{7}, svc.Favorites())
	stored, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, stored.FavoriteRecipeIDs)

	// Reconciliation against an unreadable store is absorbed too.
	svc.ReconcileOnLogin(ctx)
	assert.Equal(t, []int64{7}, svc.Favorites())
}
