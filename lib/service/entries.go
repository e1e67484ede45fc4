package service

import (
	"context"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/google/uuid"
)

// AddIncomeEntry records standalone income (tips, refunds-in, misc
// revenue). Entries mirroring a settled order are written by
// SettleOrder instead, never through here.
func (svc *BackofficeService) AddIncomeEntry(ctx context.Context, restaurantId, amount, reason, paymentMethod, paymentOption string) (*models.IncomeEntry, error) {
	value, err := parsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	entry := &models.IncomeEntry{
		ExternalID:    uuid.NewString(),
		RestaurantID:  restaurantId,
		Amount:        value.String(),
		Reason:        reason,
		PaymentMethod: paymentMethod,
		PaymentOption: paymentOption,
		SourceType:    common.IncomeSourceManual,
	}
	if _, err := svc.DB.NewInsert().Model(entry).Exec(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

func (svc *BackofficeService) AddExpenseEntry(ctx context.Context, restaurantId, amount, reason, paymentMethod string) (*models.ExpenseEntry, error) {
	value, err := parsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	entry := &models.ExpenseEntry{
		ExternalID:    uuid.NewString(),
		RestaurantID:  restaurantId,
		Amount:        value.String(),
		Reason:        reason,
		PaymentMethod: paymentMethod,
	}
	if _, err := svc.DB.NewInsert().Model(entry).Exec(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

// ResetIncomeEntries wipes all income entries of a restaurant. Income
// rows are immutable otherwise, so this is the only delete path and it
// sits behind the admin token.
func (svc *BackofficeService) ResetIncomeEntries(ctx context.Context, restaurantId string) (int64, error) {
	res, err := svc.DB.NewDelete().Model((*models.IncomeEntry)(nil)).Where("restaurant_id = ?", restaurantId).Exec(ctx)
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
