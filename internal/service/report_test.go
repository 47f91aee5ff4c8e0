package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportCoversBothLedgers(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	s.CreateItem(ctx, adminSess, "Widget", 10, 2.50)
	s.CreateInvoice(ctx, adminSess, "Acme Corp", "INV-001", "2026-08-01")
	require.NoError(t, s.SoftDeleteItem(ctx, adminSess, "Widget"))
	s.CreateItem(ctx, adminSess, "Gadget", 1, 1.0)

	doc, err := s.BuildReport(ctx, viewerSess, 0)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	var all string
	for _, line := range doc.Pages[0].Lines {
		all += line + "\n"
	}
	assert.Contains(t, all, "Gadget")
	assert.Contains(t, all, "INV-001")
	assert.NotContains(t, all, "Widget", "recycled items must not appear in the report")
}
