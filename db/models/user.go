package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// User : back-office operator account
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        int64        `json:"id" bun:",pk,autoincrement"`
	Login     string       `json:"login" bun:",unique,notnull"`
	Password  string       `json:"-" bun:",notnull"`
	CreatedAt time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime `json:"updated_at"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		u.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*User)(nil)
