package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/Daancoria/inventoryapp/internal/policy"
	"github.com/Daancoria/inventoryapp/internal/store"
)

// DefaultAdminPassword is the credential of the seed admin account on a
// brand-new store. It is hashed before storage and should be changed on
// first login.
const DefaultAdminPassword = "admin"

// Authenticate verifies a username/password pair and returns a session.
// Successful logins are audited under the authenticated username; failures
// are only logged to the process log, never to the audit trail.
func (s *Service) Authenticate(ctx context.Context, username, password string) (model.Session, error) {
	user, err := store.GetUserByUsername(ctx, s.db, username)
	if err != nil {
		return model.Session{}, storage(err)
	}
	if user == nil {
		return model.Session{}, fmt.Errorf("%w: unknown user or wrong password", model.ErrAuth)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login failed", "username", username)
		return model.Session{}, fmt.Errorf("%w: unknown user or wrong password", model.ErrAuth)
	}

	if err := s.withTx(ctx, func(tx store.DBTX) error {
		if err := store.AppendLog(ctx, tx, user.Username, "Logged in"); err != nil {
			return storage(err)
		}
		return nil
	}); err != nil {
		return model.Session{}, err
	}

	slog.Info("user logged in", "user", user.Username, "role", user.Role)
	return model.Session{Username: user.Username, Role: user.Role}, nil
}

// RecordLogout audits the end of a session.
func (s *Service) RecordLogout(ctx context.Context, sess model.Session) error {
	return s.withTx(ctx, func(tx store.DBTX) error {
		if err := store.AppendLog(ctx, tx, sess.Username, "Logged out"); err != nil {
			return storage(err)
		}
		return nil
	})
}

// CreateUser adds a new account with a hashed password.
func (s *Service) CreateUser(ctx context.Context, sess model.Session, username, password, role string) (*model.User, error) {
	if err := authorize(sess, policy.OpUserCreate); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", model.ErrValidation)
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be %q or %q", model.ErrValidation, model.RoleAdmin, model.RoleViewer)
	}

	existing, err := store.GetUserByUsername(ctx, s.db, username)
	if err != nil {
		return nil, storage(err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user %q", model.ErrConflict, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storage(err)
	}

	var user *model.User
	err = s.withTx(ctx, func(tx store.DBTX) error {
		var err error
		user, err = store.InsertUser(ctx, tx, username, string(hash), role)
		if err != nil {
			return storage(err)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Added user: "+username); err != nil {
			return storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// DeleteUser removes an account. The seed admin account is protected at
// this level, regardless of the caller's role.
func (s *Service) DeleteUser(ctx context.Context, sess model.Session, username string) error {
	if err := authorize(sess, policy.OpUserDelete); err != nil {
		return err
	}
	if username == model.AdminUsername {
		return fmt.Errorf("%w: the %q account cannot be deleted", model.ErrProtected, model.AdminUsername)
	}

	return s.withTx(ctx, func(tx store.DBTX) error {
		ok, err := store.DeleteUser(ctx, tx, username)
		if err != nil {
			return storage(err)
		}
		if !ok {
			return fmt.Errorf("%w: no user named %q", model.ErrNotFound, username)
		}
		if err := store.AppendLog(ctx, tx, sess.Username, "Deleted user: "+username); err != nil {
			return storage(err)
		}
		return nil
	})
}

// ListUsers returns all accounts without password hashes.
func (s *Service) ListUsers(ctx context.Context, sess model.Session) ([]model.User, error) {
	if err := authorize(sess, policy.OpUserList); err != nil {
		return nil, err
	}
	users, err := store.ListUsers(ctx, s.db)
	if err != nil {
		return nil, storage(err)
	}
	return users, nil
}

// SeedAdminUser creates the default admin account when the store holds no
// users at all. Called once at startup, before any session exists.
func (s *Service) SeedAdminUser(ctx context.Context) error {
	n, err := store.CountUsers(ctx, s.db)
	if err != nil {
		return storage(err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return storage(err)
	}
	if _, err := store.InsertUser(ctx, s.db, model.AdminUsername, string(hash), model.RoleAdmin); err != nil {
		return storage(err)
	}

	slog.Info("seeded default admin account", "username", model.AdminUsername)
	return nil
}

// MigrateLegacyCredentials rehashes any stored plaintext credentials left
// over from stores written before password hashing existed. Runs once at
// startup; a rehashed row never matches the legacy predicate again.
func (s *Service) MigrateLegacyCredentials(ctx context.Context) error {
	legacy, err := store.ListLegacyCredentials(ctx, s.db)
	if err != nil {
		return storage(err)
	}

	for _, u := range legacy {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			return storage(err)
		}
		if err := store.UpdateUserPassword(ctx, s.db, u.Username, string(hash)); err != nil {
			return storage(err)
		}
		slog.Info("rehashed legacy credential", "username", u.Username)
	}
	return nil
}
