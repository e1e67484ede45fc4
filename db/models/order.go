package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Order : one sale on one of the three channels (dine-in table,
// takeaway, delivery). Only rows with status "paid" count toward the
// sales totals. Table occupancy side effects live in the POS clients,
// not here.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID            int64        `json:"id" bun:",pk,autoincrement"`
	RestaurantID  string       `json:"restaurant_id" bun:",notnull"`
	Channel       string       `json:"channel" bun:",notnull"`
	TableNumber   int          `json:"table_number,omitempty" bun:",nullzero"`
	Total         string       `json:"total" bun:",notnull"`
	PaymentMethod string       `json:"payment_method" bun:",nullzero"`
	Status        string       `json:"status" bun:",notnull,default:'pending'"`
	CreatedAt     time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	SettledAt     bun.NullTime `json:"settled_at"`
}
