package api

import (
	"net/http"

	"github.com/Daancoria/inventoryapp/internal/service"
)

// InvoicesHandler handles invoice ledger endpoints.
type InvoicesHandler struct {
	Core *service.Service
}

type createInvoiceRequest struct {
	SupplierName  string `json:"supplier_name" validate:"required"`
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	Date          string `json:"date" validate:"required"`
}

type updateInvoiceRequest struct {
	SupplierName string `json:"supplier_name" validate:"required"`
	Date         string `json:"date" validate:"required"`
}

// List handles GET /api/invoices.
func (h *InvoicesHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Core.ListActiveInvoices(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, invoices)
}

// ListRecycled handles GET /api/invoices/recycled.
func (h *InvoicesHandler) ListRecycled(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Core.ListDeletedInvoices(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, invoices)
}

// Create handles POST /api/invoices.
func (h *InvoicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "supplier name, invoice number and date required")
		return
	}

	inv, err := h.Core.CreateInvoice(r.Context(), GetSession(r.Context()),
		req.SupplierName, req.InvoiceNumber, req.Date)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, inv)
}

// Update handles PUT /api/invoices/{number}.
func (h *InvoicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "supplier name and date required")
		return
	}

	err := h.Core.UpdateInvoice(r.Context(), GetSession(r.Context()),
		r.PathValue("number"), req.SupplierName, req.Date)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "invoice updated"})
}

// Delete handles DELETE /api/invoices/{number}: soft delete.
func (h *InvoicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Core.SoftDeleteInvoice(r.Context(), GetSession(r.Context()), r.PathValue("number"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "invoice moved to recycle bin"})
}

// Restore handles POST /api/invoices/{number}/restore.
func (h *InvoicesHandler) Restore(w http.ResponseWriter, r *http.Request) {
	err := h.Core.RestoreInvoice(r.Context(), GetSession(r.Context()), r.PathValue("number"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "invoice restored"})
}

// Purge handles DELETE /api/invoices/{number}/purge with ?confirm=true.
func (h *InvoicesHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, http.StatusBadRequest, "permanent deletion requires confirm=true")
		return
	}

	err := h.Core.PurgeInvoice(r.Context(), GetSession(r.Context()), r.PathValue("number"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "invoice permanently deleted"})
}
