package models

import (
	"strings"
	"time"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/uptrace/bun"
)

// IncomeEntry : a revenue record, written either manually from the
// back office or automatically when an order settles. Immutable once
// written; only the admin reset removes rows.
type IncomeEntry struct {
	bun.BaseModel `bun:"table:income_entries"`

	ID            int64  `json:"id" bun:",pk,autoincrement"`
	ExternalID    string `json:"external_id" bun:",unique,notnull"`
	RestaurantID  string `json:"restaurant_id" bun:",notnull"`
	Amount        string `json:"amount" bun:",notnull"`
	Reason        string `json:"reason" bun:",nullzero"`
	PaymentMethod string `json:"payment_method" bun:",nullzero"`
	// Alternate classifier field, e.g. "CashDrawer" or "TransferToAccount".
	PaymentOption string `json:"payment_option" bun:",nullzero"`
	// "sale" for entries mirroring a settled order, "manual" for
	// standalone income. Empty on rows imported from the legacy store,
	// which are classified by the sale markers in Reason instead.
	SourceType string    `json:"source_type" bun:",nullzero"`
	CreatedAt  time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

// SaleDerived reports whether the entry mirrors a settled order and
// must therefore not be counted as standalone income. The structured
// source type wins when present; legacy rows keep the substring check.
func (e *IncomeEntry) SaleDerived() bool {
	switch e.SourceType {
	case common.IncomeSourceSale:
		return true
	case common.IncomeSourceManual:
		return false
	}
	return strings.Contains(e.Reason, common.SaleMarkerTable) ||
		strings.Contains(e.Reason, common.SaleMarkerTakeaway) ||
		strings.Contains(e.Reason, common.SaleMarkerDelivery)
}
