package service

import (
	"context"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
)

// OpenRegister records the cash float of a new shift. Openings are
// insert-only: the newest row supersedes the previous one and nothing
// is ever deleted, so the full history stays auditable.
func (svc *BackofficeService) OpenRegister(ctx context.Context, restaurantId, openingAmount, openedBy string) (*models.RegisterOpening, error) {
	value, err := parsePositiveAmount(openingAmount)
	if err != nil {
		return nil, err
	}

	opening := &models.RegisterOpening{
		RestaurantID:  restaurantId,
		OpeningAmount: value.String(),
		OpenedBy:      openedBy,
	}
	if _, err := svc.DB.NewInsert().Model(opening).Exec(ctx); err != nil {
		return nil, err
	}
	return opening, nil
}
