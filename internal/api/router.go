package api

import (
	"net/http"

	"github.com/Daancoria/inventoryapp/internal/service"
)

// NewRouter creates the API router with all endpoints registered.
// Role checks live in the service layer, so the router only distinguishes
// public (login) from authenticated routes.
func NewRouter(core *service.Service, secret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Core: core, Secret: secret}
	itemsHandler := &ItemsHandler{Core: core}
	invoicesHandler := &InvoicesHandler{Core: core}
	usersHandler := &UsersHandler{Core: core}
	logsHandler := &LogsHandler{Core: core}
	exportHandler := &ExportHandler{Core: core}

	authMW := AuthMiddleware(secret)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMW(h)
	}

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", protected(authHandler.Logout))

	// Inventory ledger.
	mux.Handle("GET /api/items", protected(itemsHandler.List))
	mux.Handle("POST /api/items", protected(itemsHandler.Create))
	mux.Handle("GET /api/items/recycled", protected(itemsHandler.ListRecycled))
	mux.Handle("GET /api/items/search", protected(itemsHandler.Search))
	mux.Handle("GET /api/items/summary", protected(itemsHandler.Summary))
	mux.Handle("GET /api/items/low-stock", protected(itemsHandler.LowStock))
	mux.Handle("GET /api/items/csv", protected(exportHandler.ExportItemsCSV))
	mux.Handle("POST /api/items/csv", protected(exportHandler.ImportItemsCSV))
	mux.Handle("PUT /api/items/{name}", protected(itemsHandler.Update))
	mux.Handle("DELETE /api/items/{name}", protected(itemsHandler.Delete))
	mux.Handle("POST /api/items/{name}/restore", protected(itemsHandler.Restore))
	mux.Handle("DELETE /api/items/{name}/purge", protected(itemsHandler.Purge))

	// Invoice ledger.
	mux.Handle("GET /api/invoices", protected(invoicesHandler.List))
	mux.Handle("POST /api/invoices", protected(invoicesHandler.Create))
	mux.Handle("GET /api/invoices/recycled", protected(invoicesHandler.ListRecycled))
	mux.Handle("GET /api/invoices/csv", protected(exportHandler.ExportInvoicesCSV))
	mux.Handle("POST /api/invoices/csv", protected(exportHandler.ImportInvoicesCSV))
	mux.Handle("PUT /api/invoices/{number}", protected(invoicesHandler.Update))
	mux.Handle("DELETE /api/invoices/{number}", protected(invoicesHandler.Delete))
	mux.Handle("POST /api/invoices/{number}/restore", protected(invoicesHandler.Restore))
	mux.Handle("DELETE /api/invoices/{number}/purge", protected(invoicesHandler.Purge))

	// User management.
	mux.Handle("GET /api/users", protected(usersHandler.List))
	mux.Handle("POST /api/users", protected(usersHandler.Create))
	mux.Handle("DELETE /api/users/{username}", protected(usersHandler.Delete))

	// Audit log.
	mux.Handle("GET /api/logs", protected(logsHandler.List))
	mux.Handle("DELETE /api/logs", protected(logsHandler.Clear))

	// Combined report.
	mux.Handle("GET /api/report", protected(exportHandler.Report))

	return mux
}
