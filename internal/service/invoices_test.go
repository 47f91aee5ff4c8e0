package service

import (
	"context"
	"testing"

	"github.com/Daancoria/inventoryapp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoice(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	inv, err := s.CreateInvoice(ctx, adminSess, "Acme Corp", "INV-001", "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", inv.SupplierName)
	assert.Equal(t, "Added invoice: INV-001", lastLogAction(t, s))

	active, err := s.ListActiveInvoices(ctx, adminSess)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestCreateInvoiceValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	cases := [][3]string{
		{"", "INV-001", "2026-08-01"},
		{"Acme Corp", "", "2026-08-01"},
		{"Acme Corp", "INV-001", ""},
		{"  ", " ", "  "},
	}
	for _, c := range cases {
		_, err := s.CreateInvoice(ctx, adminSess, c[0], c[1], c[2])
		assert.ErrorIs(t, err, model.ErrValidation)
	}

	active, err := s.ListActiveInvoices(ctx, adminSess)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestInvoiceLifecycle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateInvoice(ctx, adminSess, "Acme Corp", "INV-001", "2026-08-01")
	require.NoError(t, err)

	require.NoError(t, s.UpdateInvoice(ctx, adminSess, "INV-001", "Acme Ltd", "2026-08-15"))
	assert.Equal(t, "Updated invoice: INV-001", lastLogAction(t, s))

	require.NoError(t, s.SoftDeleteInvoice(ctx, adminSess, "INV-001"))
	deleted, _ := s.ListDeletedInvoices(ctx, adminSess)
	require.Len(t, deleted, 1)
	assert.Equal(t, "Acme Ltd", deleted[0].SupplierName)

	require.NoError(t, s.RestoreInvoice(ctx, adminSess, "INV-001"))
	active, _ := s.ListActiveInvoices(ctx, adminSess)
	require.Len(t, active, 1)

	require.NoError(t, s.SoftDeleteInvoice(ctx, adminSess, "INV-001"))
	require.NoError(t, s.PurgeInvoice(ctx, adminSess, "INV-001"))
	assert.Equal(t, "Permanently deleted invoice: INV-001", lastLogAction(t, s))

	active, _ = s.ListActiveInvoices(ctx, adminSess)
	deleted, _ = s.ListDeletedInvoices(ctx, adminSess)
	assert.Empty(t, active)
	assert.Empty(t, deleted)
}

func TestInvoiceMutationsRequireAdmin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateInvoice(ctx, viewerSess, "Acme Corp", "INV-001", "2026-08-01")
	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.ErrorIs(t, s.UpdateInvoice(ctx, viewerSess, "INV-001", "X", "Y"), model.ErrForbidden)
	assert.ErrorIs(t, s.SoftDeleteInvoice(ctx, viewerSess, "INV-001"), model.ErrForbidden)
	assert.ErrorIs(t, s.RestoreInvoice(ctx, viewerSess, "INV-001"), model.ErrForbidden)
	assert.ErrorIs(t, s.PurgeInvoice(ctx, viewerSess, "INV-001"), model.ErrForbidden)

	_, err = s.ListActiveInvoices(ctx, viewerSess)
	assert.NoError(t, err)
}
