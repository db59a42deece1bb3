// Package user defines the user entity and its preference state.
package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ShoppingItem is one line of the shopping-list notebook.
type ShoppingItem struct {
	Name      string `json:"name"`
	IsChecked bool   `json:"isChecked"`
}

// User is a registered account. The three preference lists are persisted as
// JSON-encoded text on the user row and mirrored into the snapshot file.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time

	FavoriteRecipeIDs []int64
	ShoppingList      []ShoppingItem
	CreatedRecipeIDs  []int64
}

// New creates a user with a freshly hashed password. Username is trimmed and
// email is trimmed and lower-cased, matching the lookup normalization in the
// repository.
func New(username, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		Username:          strings.TrimSpace(username),
		Email:             NormalizeEmail(email),
		PasswordHash:      string(hash),
		CreatedAt:         time.Now(),
		FavoriteRecipeIDs: []int64{},
		ShoppingList:      []ShoppingItem{},
		CreatedRecipeIDs:  []int64{},
	}, nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckPassword reports whether password matches the stored digest.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasFavorite reports membership of id in the favorite-ID list.
func (u *User) HasFavorite(id int64) bool {
	for _, fid := range u.FavoriteRecipeIDs {
		if fid == id {
			return true
		}
	}
	return false
}
