package api

import (
	"net/http"

	"github.com/Daancoria/inventoryapp/internal/service"
)

// ExportHandler handles CSV import/export and report endpoints.
type ExportHandler struct {
	Core *service.Service
}

type importResponse struct {
	Imported int `json:"imported"`
}

// ExportItemsCSV handles GET /api/items/csv.
func (h *ExportHandler) ExportItemsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Core.ExportInventoryCSV(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	w.Write(data)
}

// ImportItemsCSV handles POST /api/items/csv. The body is the raw CSV
// stream; invalid rows are skipped and only the imported count is returned.
func (h *ExportHandler) ImportItemsCSV(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	n, err := h.Core.ImportInventoryCSV(r.Context(), GetSession(r.Context()), r.Body)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, importResponse{Imported: n})
}

// ExportInvoicesCSV handles GET /api/invoices/csv.
func (h *ExportHandler) ExportInvoicesCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Core.ExportInvoicesCSV(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
	w.Write(data)
}

// ImportInvoicesCSV handles POST /api/invoices/csv.
func (h *ExportHandler) ImportInvoicesCSV(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	n, err := h.Core.ImportInvoicesCSV(r.Context(), GetSession(r.Context()), r.Body)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, importResponse{Imported: n})
}

// Report handles GET /api/report. The default response is the document
// model as JSON; ?format=text renders plain text with form-feed page breaks.
func (h *ExportHandler) Report(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Core.BuildReport(r.Context(), GetSession(r.Context()), 0)
	if err != nil {
		serviceError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := doc.Render(w); err != nil {
			jsonError(w, http.StatusInternalServerError, "rendering report")
		}
		return
	}
	jsonResponse(w, http.StatusOK, doc)
}
