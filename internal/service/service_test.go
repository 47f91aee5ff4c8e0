package service

import (
	"context"
	"testing"

	"github.com/Daancoria/inventoryapp/internal/db"
	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/stretchr/testify/require"
)

var (
	adminSess  = model.Session{Username: "admin", Role: model.RoleAdmin}
	viewerSess = model.Session{Username: "bob", Role: model.RoleViewer}
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(db.NewTestDB(t))
}

// lastLogAction returns the newest audit entry's action.
func lastLogAction(t *testing.T, s *Service) string {
	t.Helper()
	entries, err := s.Logs(context.Background(), adminSess)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0].Action
}
