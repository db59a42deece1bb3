// Package outbound defines the persistence interfaces implemented by the
// infrastructure layer.
package outbound

import (
	"context"
	"time"

	"github.com/savorly/savorly/internal/domain/recipe"
	"github.com/savorly/savorly/internal/domain/user"
)

// RecipeRepository provides CRUD access to recipes with their ingredients,
// steps and tags eagerly loaded.
type RecipeRepository interface {
	// Create inserts the recipe with its ingredients, steps and tags and
	// sets the generated ID on the entity.
	Create(ctx context.Context, r *recipe.Recipe) error

	// Update replaces the recipe's scalar fields and fully replaces the
	// ingredient and step collections. Child row IDs churn on every call.
	// Updating a missing recipe is a no-op.
	Update(ctx context.Context, r *recipe.Recipe) error

	// Delete removes the recipe, its ingredients and steps, and its tag
	// join rows. Tag rows themselves are left in place. Deleting a missing
	// recipe is a no-op.
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*recipe.Recipe, error)
	FindByType(ctx context.Context, t recipe.Type) ([]*recipe.Recipe, error)
	// FindByCreator returns the user's recipes, most recent first.
	FindByCreator(ctx context.Context, username string) ([]*recipe.Recipe, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)

	CountByType(ctx context.Context, t recipe.Type) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository provides access to the user store.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id int64) (*user.User, error)
	// FindByEmail looks up by the normalized (trimmed, lower-cased) email.
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// UpdatePreferences writes only the three JSON preference columns.
	UpdatePreferences(ctx context.Context, u *user.User) error
}

// Snapshot is the on-disk mirror of a user's preference state. The three
// list fields hold JSON-encoded strings, exactly as stored on the user row.
type Snapshot struct {
	UserID            int64     `json:"userId"`
	FavoriteRecipes   string    `json:"favoriteRecipes"`
	ShoppingList      string    `json:"shoppingList"`
	CreatedRecipesIDs string    `json:"createdRecipesIds"`
	LastLogin         time.Time `json:"lastLogin"`
}

// SnapshotStore persists the last-known preference state of the most
// recently logged-in user.
type SnapshotStore interface {
	// Save overwrites the snapshot file.
	Save(s Snapshot) error
	// Load returns the stored snapshot, or nil with no error when no file
	// exists. Read and decode failures are returned for the caller to log.
	Load() (*Snapshot, error)
}

// AccountsStore remembers which emails have logged in on this machine.
type AccountsStore interface {
	// Append records the email once; re-appending is a no-op.
	Append(email string) error
	List() ([]string, error)
}
