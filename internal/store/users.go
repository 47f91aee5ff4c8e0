package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Daancoria/inventoryapp/internal/model"
)

// InsertUser creates a new user with an already-hashed password.
func InsertUser(ctx context.Context, q DBTX, username, passwordHash, role string) (*model.User, error) {
	result, err := q.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		username, passwordHash, role,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return &model.User{ID: id, Username: username, PasswordHash: passwordHash, Role: role}, nil
}

// GetUserByUsername returns a user including the password hash, or nil if
// the username does not exist. The hash never leaves the service layer.
func GetUserByUsername(ctx context.Context, q DBTX, username string) (*model.User, error) {
	u := &model.User{}
	err := q.QueryRowContext(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by username: %w", err)
	}
	return u, nil
}

// ListUsers returns all users without password hashes.
func ListUsers(ctx context.Context, q DBTX) ([]model.User, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, username, role FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountUsers returns the total number of users.
func CountUsers(ctx context.Context, q DBTX) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}

// DeleteUser removes a user row. Returns false if the username does not
// exist. The protection of the admin account lives in the service layer.
func DeleteUser(ctx context.Context, q DBTX, username string) (bool, error) {
	result, err := q.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}
	return affected(result)
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(ctx context.Context, q DBTX, username, passwordHash string) error {
	_, err := q.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE username = ?`,
		passwordHash, username,
	)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}
	return nil
}

// ListLegacyCredentials returns users whose stored credential is not a
// bcrypt hash. Early releases stored passwords in plaintext; these rows are
// rehashed in place at startup.
func ListLegacyCredentials(ctx context.Context, q DBTX) ([]model.User, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE password_hash NOT LIKE '$2%'`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing legacy credentials: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
