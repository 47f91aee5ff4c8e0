package store

import (
	"context"
	"testing"

	"github.com/Daancoria/inventoryapp/internal/db"
)

func TestEnsureSigningSecretIsStable(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := EnsureSigningSecret(ctx, database)
	if err != nil {
		t.Fatalf("EnsureSigningSecret: %v", err)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}

	second, err := EnsureSigningSecret(ctx, database)
	if err != nil {
		t.Fatalf("EnsureSigningSecret: %v", err)
	}
	if first != second {
		t.Error("expected the same secret across calls")
	}
}
