package migrations

import (
	"context"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/uptrace/bun"
)

// Since this init will reflect the latest model fields when run on a fresh db,
// make sure that subsequent migrations adding or removing columns use
// IfNotExists/IfExists, otherwise they will error here.
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if _, err := db.NewCreateTable().Model((*models.User)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.RegisterOpening)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.VirtualBalance)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.IncomeEntry)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.ExpenseEntry)(nil)).Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*models.Order)(nil)).Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
