package api

import (
	"net/http"
	"strconv"

	"github.com/Daancoria/inventoryapp/internal/service"
)

// ItemsHandler handles inventory ledger endpoints.
type ItemsHandler struct {
	Core *service.Service
}

type createItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type updateItemRequest struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Core.ListActiveItems(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// ListRecycled handles GET /api/items/recycled.
func (h *ItemsHandler) ListRecycled(w http.ResponseWriter, r *http.Request) {
	items, err := h.Core.ListDeletedItems(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Search handles GET /api/items/search?q=term.
func (h *ItemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.Core.SearchItems(r.Context(), GetSession(r.Context()), r.URL.Query().Get("q"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Summary handles GET /api/items/summary.
func (h *ItemsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Core.Summary(r.Context(), GetSession(r.Context()))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, summary)
}

// LowStock handles GET /api/items/low-stock?threshold=n.
func (h *ItemsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))
	items, err := h.Core.LowStock(r.Context(), GetSession(r.Context()), threshold)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "item name is required")
		return
	}

	item, err := h.Core.CreateItem(r.Context(), GetSession(r.Context()), req.Name, req.Quantity, req.Price)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{name}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.Core.UpdateItem(r.Context(), GetSession(r.Context()), r.PathValue("name"), req.Quantity, req.Price)
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item updated"})
}

// Delete handles DELETE /api/items/{name}: soft delete to the recycle bin.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Core.SoftDeleteItem(r.Context(), GetSession(r.Context()), r.PathValue("name"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item moved to recycle bin"})
}

// Restore handles POST /api/items/{name}/restore.
func (h *ItemsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	err := h.Core.RestoreItem(r.Context(), GetSession(r.Context()), r.PathValue("name"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item restored"})
}

// Purge handles DELETE /api/items/{name}/purge. Purging is irreversible, so
// the caller must acknowledge with ?confirm=true.
func (h *ItemsHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		jsonError(w, http.StatusBadRequest, "permanent deletion requires confirm=true")
		return
	}

	err := h.Core.PurgeItem(r.Context(), GetSession(r.Context()), r.PathValue("name"))
	if err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item permanently deleted"})
}
