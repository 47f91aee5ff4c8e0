package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// EnsureSigningSecret returns the token signing secret from the settings
// table, generating and storing one on first run. INSERT OR IGNORE followed
// by a re-SELECT avoids a TOCTOU race on concurrent startup.
func EnsureSigningSecret(ctx context.Context, q DBTX) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating signing secret: %w", err)
	}
	candidate := hex.EncodeToString(buf)

	_, err := q.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES ('signing_secret', ?)`,
		candidate,
	)
	if err != nil {
		return "", fmt.Errorf("storing signing secret: %w", err)
	}

	var secret string
	err = q.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'signing_secret'`,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("querying signing secret: %w", err)
	}

	return secret, nil
}
