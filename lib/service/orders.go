package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadySettled = errors.New("order is already settled")
	ErrUnknownChannel      = errors.New("unknown sales channel")
)

func saleMarkerFor(channel string) (string, error) {
	switch channel {
	case common.OrderChannelTable:
		return common.SaleMarkerTable, nil
	case common.OrderChannelTakeaway:
		return common.SaleMarkerTakeaway, nil
	case common.OrderChannelDelivery:
		return common.SaleMarkerDelivery, nil
	}
	return "", ErrUnknownChannel
}

func (svc *BackofficeService) CreateOrder(ctx context.Context, restaurantId, channel string, tableNumber int, total, paymentMethod string) (*models.Order, error) {
	if _, err := saleMarkerFor(channel); err != nil {
		return nil, err
	}
	value, err := parsePositiveAmount(total)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		RestaurantID:  restaurantId,
		Channel:       channel,
		TableNumber:   tableNumber,
		Total:         value.String(),
		PaymentMethod: paymentMethod,
		Status:        common.OrderStatusPending,
	}
	if _, err := svc.DB.NewInsert().Model(order).Exec(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// SettleOrder marks an order as paid and writes the bookkeeping that
// goes with it: the mirrored income entry carrying the channel marker,
// and a virtual credit when the payment classifies virtual. All three
// writes commit together or not at all. The reconciliation engine will
// see the order and its mirrored entry as one settled sale, never two.
func (svc *BackofficeService) SettleOrder(ctx context.Context, restaurantId string, orderId int64) (*models.Order, error) {
	order := &models.Order{}

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(order).
			Where("id = ?", orderId).
			Where("restaurant_id = ?", restaurantId).
			For("UPDATE").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if order.Status == common.OrderStatusPaid {
			return ErrOrderAlreadySettled
		}

		marker, err := saleMarkerFor(order.Channel)
		if err != nil {
			return err
		}

		order.Status = common.OrderStatusPaid
		order.SettledAt = bun.NullTime{Time: time.Now()}
		if _, err := tx.NewUpdate().Model(order).Column("status", "settled_at").WherePK().Exec(ctx); err != nil {
			return err
		}

		reason := fmt.Sprintf("%s #%d", marker, order.ID)
		if order.Channel == common.OrderChannelTable && order.TableNumber > 0 {
			reason = fmt.Sprintf("%s #%d", marker, order.TableNumber)
		}
		mirrored := &models.IncomeEntry{
			ExternalID:    uuid.NewString(),
			RestaurantID:  restaurantId,
			Amount:        order.Total,
			Reason:        reason,
			PaymentMethod: order.PaymentMethod,
			SourceType:    common.IncomeSourceSale,
		}
		if _, err := tx.NewInsert().Model(mirrored).Exec(ctx); err != nil {
			return err
		}

		if ClassifyPayment(order.PaymentMethod, "") == BucketVirtual {
			total, err := decimal.NewFromString(order.Total)
			if err != nil {
				return err
			}
			if err := svc.applyVirtualCredit(ctx, tx, restaurantId, total, reason); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// applyVirtualCredit moves money into the virtual bucket: the single
// authoritative balance row is updated and the change appended to its
// history. The history never shrinks.
func (svc *BackofficeService) applyVirtualCredit(ctx context.Context, tx bun.Tx, restaurantId string, amount decimal.Decimal, reason string) error {
	balance := &models.VirtualBalance{}
	current := decimal.Decimal{}

	err := tx.NewSelect().Model(balance).Where("restaurant_id = ?", restaurantId).For("UPDATE").Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		balance.RestaurantID = restaurantId
		balance.History = map[string]models.VirtualBalanceChange{}
	case err != nil:
		return err
	default:
		current = svc.storedVirtualAmount(balance)
	}
	if balance.History == nil {
		balance.History = map[string]models.VirtualBalanceChange{}
	}

	balance.Amount = current.Add(amount).String()
	balance.History[time.Now().UTC().Format(time.RFC3339Nano)] = models.VirtualBalanceChange{
		Amount: amount.String(),
		Reason: reason,
	}
	balance.UpdatedAt = time.Now()

	_, err = tx.NewInsert().Model(balance).
		On("CONFLICT (restaurant_id) DO UPDATE").
		Set("amount = EXCLUDED.amount").
		Set("history = EXCLUDED.history").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// storedVirtualAmount parses the persisted balance amount. Same policy
// as the aggregation read path: a corrupted stored amount is treated
// as zero, but never silently.
func (svc *BackofficeService) storedVirtualAmount(balance *models.VirtualBalance) decimal.Decimal {
	parsed, err := decimal.NewFromString(balance.Amount)
	if err != nil {
		if svc.Logger != nil {
			svc.Logger.Warnf("Stored virtual balance for %s has malformed amount %q, crediting from zero", balance.RestaurantID, balance.Amount)
		}
		return decimal.Decimal{}
	}
	return parsed
}
