package models

import (
	"time"

	"github.com/uptrace/bun"
)

// VirtualBalanceChange : one append-only history item, keyed by the
// RFC3339 timestamp of the mutation.
type VirtualBalanceChange struct {
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

// VirtualBalance : the authoritative electronic-money record, at most
// one row per restaurant. Every operation that moves money into or out
// of the virtual bucket updates Amount and appends to History; the row
// is never deleted.
type VirtualBalance struct {
	bun.BaseModel `bun:"table:virtual_balances"`

	RestaurantID string                          `json:"restaurant_id" bun:",pk"`
	Amount       string                          `json:"amount" bun:",notnull"`
	History      map[string]VirtualBalanceChange `json:"history" bun:",type:jsonb"`
	UpdatedAt    time.Time                       `json:"updated_at" bun:",nullzero,notnull,default:current_timestamp"`
}
