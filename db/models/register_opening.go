package models

import (
	"time"

	"github.com/uptrace/bun"
)

// RegisterOpening : cash float recorded when a shift opens. Rows are
// insert-only; a new opening supersedes the previous one, nothing is
// deleted or mutated after the shift closes.
type RegisterOpening struct {
	bun.BaseModel `bun:"table:register_openings"`

	ID           int64  `json:"id" bun:",pk,autoincrement"`
	RestaurantID string `json:"restaurant_id" bun:",notnull"`
	// Amounts come from the POS clients as free-form strings. They are
	// stored as written and parsed at aggregation time, where invalid
	// values are skipped rather than rejected.
	OpeningAmount string    `json:"opening_amount" bun:",notnull"`
	OpenedBy      string    `json:"opened_by" bun:",nullzero"`
	CreatedAt     time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
