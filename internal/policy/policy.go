// Package policy maps (role, operation) pairs to allow/deny decisions.
//
// The service layer consults it before every call, and the presentation
// layer may consult it to disable controls, but enforcement never depends
// on the UI honoring the result.
package policy

import "github.com/Daancoria/inventoryapp/internal/model"

// Operation identifies a single core operation for authorization purposes.
type Operation string

// Operations.
const (
	OpItemCreate  Operation = "item.create"
	OpItemUpdate  Operation = "item.update"
	OpItemDelete  Operation = "item.delete"
	OpItemRestore Operation = "item.restore"
	OpItemPurge   Operation = "item.purge"
	OpItemList    Operation = "item.list"
	OpItemSearch  Operation = "item.search"
	OpItemSummary Operation = "item.summary"

	OpInvoiceCreate  Operation = "invoice.create"
	OpInvoiceUpdate  Operation = "invoice.update"
	OpInvoiceDelete  Operation = "invoice.delete"
	OpInvoiceRestore Operation = "invoice.restore"
	OpInvoicePurge   Operation = "invoice.purge"
	OpInvoiceList    Operation = "invoice.list"

	OpUserCreate Operation = "user.create"
	OpUserDelete Operation = "user.delete"
	OpUserList   Operation = "user.list"

	OpLogView  Operation = "log.view"
	OpLogClear Operation = "log.clear"

	OpCSVImport Operation = "csv.import"
	OpCSVExport Operation = "csv.export"
	OpReport    Operation = "report.export"
)

// viewerAllowed is the read-only surface available to the viewer role.
// Everything mutating, plus user management and log clearing, is admin-only.
var viewerAllowed = map[Operation]bool{
	OpItemList:    true,
	OpItemSearch:  true,
	OpItemSummary: true,
	OpInvoiceList: true,
	OpLogView:     true,
	OpCSVExport:   true,
	OpReport:      true,
}

// Allow reports whether role may perform op. Unknown roles and unknown
// operations fail closed.
func Allow(role string, op Operation) bool {
	switch role {
	case model.RoleAdmin:
		return true
	case model.RoleViewer:
		return viewerAllowed[op]
	default:
		return false
	}
}
