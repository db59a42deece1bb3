// Package auth implements registration, login and logout against the local
// user store.
package auth

import (
	"context"
	"errors"

	"github.com/savorly/savorly/internal/application/prefs"
	"github.com/savorly/savorly/internal/application/session"
	"github.com/savorly/savorly/internal/domain/user"
	"github.com/savorly/savorly/internal/ports/outbound"
	"github.com/savorly/savorly/pkg/apperr"
	"go.uber.org/zap"
)

// Service implements the authentication use cases. Failures are returned as
// coded errors so a UI shell can map them to its own messages; they are
// never panics reaching the caller.
type Service struct {
	users    outbound.UserRepository
	accounts outbound.AccountsStore
	prefs    *prefs.Service
	session  *session.Session
	logger   *zap.Logger
}

// NewService creates the auth service.
func NewService(
	users outbound.UserRepository,
	accounts outbound.AccountsStore,
	prefsSvc *prefs.Service,
	sess *session.Session,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:    users,
		accounts: accounts,
		prefs:    prefsSvc,
		session:  sess,
		logger:   logger.Named("auth"),
	}
}

// Register creates a new account and logs it in. Fails with
// PASSWORD_MISMATCH, DUPLICATE_EMAIL or DUPLICATE_USERNAME.
func (s *Service) Register(ctx context.Context, username, email, password, confirmPassword string) (*user.User, error) {
	if password != confirmPassword {
		return nil, apperr.New(apperr.CodePasswordMismatch, "passwords do not match")
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "registration failed", err)
	}
	if taken {
		return nil, apperr.New(apperr.CodeDuplicateEmail, "a user with this email already exists")
	}

	taken, err = s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "registration failed", err)
	}
	if taken {
		return nil, apperr.New(apperr.CodeDuplicateUsername, "a user with this username already exists")
	}

	newUser, err := user.New(username, email, password)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "registration failed", err)
	}
	if err := s.users.Create(ctx, newUser); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "registration failed", err)
	}

	s.session.Set(newUser)
	s.prefs.SaveSnapshot()

	s.logger.Info("user registered",
		zap.Int64("user_id", newUser.ID),
		zap.String("username", newUser.Username),
	)
	return newUser, nil
}

// Login authenticates by email and password. Fails with NOT_FOUND for an
// unknown email and INVALID_CREDENTIALS for a wrong password. On success the
// session is set, the snapshot is reconciled and the email is remembered in
// the saved-accounts file.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperr.New(apperr.CodeNotFound, "no user with this email")
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "login failed", err)
	}

	if !u.CheckPassword(password) {
		s.logger.Warn("invalid password attempt", zap.String("email", u.Email))
		return nil, apperr.New(apperr.CodeInvalidCredentials, "wrong password")
	}

	s.session.Set(u)
	s.prefs.ReconcileOnLogin(ctx)

	if err := s.accounts.Append(u.Email); err != nil {
		s.logger.Warn("failed to remember account", zap.Error(err))
	}

	s.logger.Info("user logged in", zap.Int64("user_id", u.ID))
	return s.session.Current(), nil
}

// Logout persists the snapshot and clears the session. Safe to call when
// already logged out.
func (s *Service) Logout(ctx context.Context) {
	if u := s.session.Current(); u != nil {
		s.prefs.SaveSnapshot()
		s.logger.Info("user logged out", zap.Int64("user_id", u.ID))
	}
	s.session.Clear()
}

// SavedAccounts returns the emails that have logged in on this machine, for
// pre-filling the login form. Failures yield an empty list.
func (s *Service) SavedAccounts() []string {
	accounts, err := s.accounts.List()
	if err != nil {
		s.logger.Warn("failed to read saved accounts", zap.Error(err))
		return []string{}
	}
	return accounts
}

// CurrentUser returns the session user, or nil when logged out.
func (s *Service) CurrentUser() *user.User {
	return s.session.Current()
}
