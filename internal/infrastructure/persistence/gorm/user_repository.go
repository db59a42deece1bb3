package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/savorly/savorly/internal/domain/user"
	"github.com/savorly/savorly/internal/ports/outbound"
	"gorm.io/gorm"
)

// UserRepository implements outbound.UserRepository over sqlite.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user and sets the generated ID.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "UNIQUE constraint failed") {
			return errors.New("username or email already taken")
		}
		return result.Error
	}
	u.ID = model.ID
	return nil
}

// FindByID returns the user with preference lists decoded.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToUser(&model), nil
}

// FindByEmail looks up by normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	result := r.db.WithContext(ctx).First(&model, "email = ?", user.NormalizeEmail(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToUser(&model), nil
}

// ExistsByEmail reports whether a user with the normalized email exists.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("email = ?", user.NormalizeEmail(email)).Count(&count).Error
	return count > 0, err
}

// ExistsByUsername reports whether the username is taken.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("username = ?", strings.TrimSpace(username)).Count(&count).Error
	return count > 0, err
}

// UpdatePreferences writes only the three JSON preference columns.
func (r *UserRepository) UpdatePreferences(ctx context.Context, u *user.User) error {
	result := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"favorite_recipes":    user.EncodeIDs(u.FavoriteRecipeIDs),
			"shopping_list":       user.EncodeItems(u.ShoppingList),
			"created_recipes_ids": user.EncodeIDs(u.CreatedRecipeIDs),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}
