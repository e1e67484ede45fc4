package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ExpenseEntry : money leaving a bucket. Same lifecycle as IncomeEntry.
type ExpenseEntry struct {
	bun.BaseModel `bun:"table:expense_entries"`

	ID            int64     `json:"id" bun:",pk,autoincrement"`
	ExternalID    string    `json:"external_id" bun:",unique,notnull"`
	RestaurantID  string    `json:"restaurant_id" bun:",notnull"`
	Amount        string    `json:"amount" bun:",notnull"`
	Reason        string    `json:"reason" bun:",nullzero"`
	PaymentMethod string    `json:"payment_method" bun:",nullzero"`
	CreatedAt     time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
