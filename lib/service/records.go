package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/uptrace/bun"
)

//go:generate mockgen -destination=./mock_source/source.go -package=mock_source github.com/francoluca35/comandas-multiples-sub006/lib/service RecordSource

// RecordSource : read access to the five record families the
// reconciliation engine consumes. Implementations decide how records
// are fetched; the engine only requires that no record needed for
// correct totals is filtered out. A source that caps results with a
// small limit will silently under-count.
type RecordSource interface {
	RegisterOpenings(ctx context.Context, restaurantId string) ([]models.RegisterOpening, error)
	// VirtualBalance returns nil without error when the restaurant has
	// never moved virtual money.
	VirtualBalance(ctx context.Context, restaurantId string) (*models.VirtualBalance, error)
	IncomeEntries(ctx context.Context, restaurantId string) ([]models.IncomeEntry, error)
	ExpenseEntries(ctx context.Context, restaurantId string) ([]models.ExpenseEntry, error)
	PaidOrders(ctx context.Context, restaurantId string, channel string) ([]models.Order, error)
}

// BunRecordSource : production RecordSource backed by the bun record
// store.
type BunRecordSource struct {
	DB *bun.DB
}

func (s *BunRecordSource) RegisterOpenings(ctx context.Context, restaurantId string) ([]models.RegisterOpening, error) {
	openings := []models.RegisterOpening{}
	err := s.DB.NewSelect().Model(&openings).Where("restaurant_id = ?", restaurantId).Order("created_at ASC").Scan(ctx)
	return openings, err
}

func (s *BunRecordSource) VirtualBalance(ctx context.Context, restaurantId string) (*models.VirtualBalance, error) {
	balance := models.VirtualBalance{}
	err := s.DB.NewSelect().Model(&balance).Where("restaurant_id = ?", restaurantId).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (s *BunRecordSource) IncomeEntries(ctx context.Context, restaurantId string) ([]models.IncomeEntry, error) {
	entries := []models.IncomeEntry{}
	err := s.DB.NewSelect().Model(&entries).Where("restaurant_id = ?", restaurantId).Order("created_at ASC").Scan(ctx)
	return entries, err
}

func (s *BunRecordSource) ExpenseEntries(ctx context.Context, restaurantId string) ([]models.ExpenseEntry, error) {
	entries := []models.ExpenseEntry{}
	err := s.DB.NewSelect().Model(&entries).Where("restaurant_id = ?", restaurantId).Order("created_at ASC").Scan(ctx)
	return entries, err
}

func (s *BunRecordSource) PaidOrders(ctx context.Context, restaurantId string, channel string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.DB.NewSelect().Model(&orders).
		Where("restaurant_id = ?", restaurantId).
		Where("channel = ?", channel).
		Where("status = ?", common.OrderStatusPaid).
		Order("created_at ASC").
		Scan(ctx)
	return orders, err
}
