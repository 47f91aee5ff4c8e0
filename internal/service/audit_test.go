package service

import (
	"context"
	"testing"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsMostRecentFirst(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateItem(ctx, adminSess, "First", 1, 1.0)
	require.NoError(t, err)
	_, err = s.CreateItem(ctx, adminSess, "Second", 1, 1.0)
	require.NoError(t, err)

	entries, err := s.Logs(ctx, adminSess)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Added item: Second", entries[0].Action)
	assert.Equal(t, "Added item: First", entries[1].Action)
}

func TestClearLogsRecordsItself(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateItem(ctx, adminSess, "Widget", 1, 1.0)
	require.NoError(t, err)

	require.NoError(t, s.ClearLogs(ctx, adminSess))

	entries, err := s.Logs(ctx, adminSess)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Cleared activity logs", entries[0].Action)
	assert.Equal(t, adminSess.Username, entries[0].Username)
}

func TestViewerMayViewButNotClearLogs(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Logs(ctx, viewerSess)
	assert.NoError(t, err)
	assert.ErrorIs(t, s.ClearLogs(ctx, viewerSess), model.ErrForbidden)
}
