package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/shopspring/decimal"
	"github.com/ziflex/lecho/v3"
	"golang.org/x/sync/errgroup"
)

var ErrMissingRestaurantId = errors.New("restaurant id is required")

// FetchError : one of the record family reads failed. The whole
// computation is aborted in that case; a balance with a silently
// zeroed family would look trustworthy and be wrong.
type FetchError struct {
	Family string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s records: %v", e.Family, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// BucketTotals : per-bucket sums for one record family.
type BucketTotals struct {
	Cash    decimal.Decimal `json:"cash"`
	Virtual decimal.Decimal `json:"virtual"`
}

func (t *BucketTotals) add(bucket PaymentBucket, amount decimal.Decimal) {
	if bucket == BucketVirtual {
		t.Virtual = t.Virtual.Add(amount)
		return
	}
	t.Cash = t.Cash.Add(amount)
}

func (t *BucketTotals) bothZero() bool {
	return t.Cash.IsZero() && t.Virtual.IsZero()
}

type MoneyTotal struct {
	Total decimal.Decimal `json:"total"`
}

// BalanceSnapshot : the immutable result of one reconciliation run.
// Consumers only read this shape, nothing downstream recomputes.
type BalanceSnapshot struct {
	RestaurantId string          `json:"restaurant_id"`
	Cash         MoneyTotal      `json:"cash"`
	Virtual      MoneyTotal      `json:"virtual"`
	TotalMoney   decimal.Decimal `json:"total_money"`
	Sales        BucketTotals    `json:"sales"`
	Income       BucketTotals    `json:"income"`
	Expenses     BucketTotals    `json:"expenses"`
	// Float and capital figures, shown next to the period totals but
	// deliberately not folded into them: openings and standalone
	// income either duplicate money that sales already represent or
	// measure something other than period performance.
	OpeningCash decimal.Decimal `json:"opening_cash"`
	VirtualBase decimal.Decimal `json:"virtual_base"`
	NetIncome   decimal.Decimal `json:"net_income"`
	// Count of records whose amount did not parse as a decimal and
	// were left out of every sum.
	SkippedRecords int       `json:"skipped_records"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// amountParser applies the skip-if-not-a-number policy: a malformed
// amount drops that single record, never the whole computation.
type amountParser struct {
	logger  *lecho.Logger
	skipped int
}

func (p *amountParser) parse(family, raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		p.skipped++
		if p.logger != nil {
			p.logger.Warnf("Skipping %s record with malformed amount %q", family, raw)
		}
		return decimal.Decimal{}, false
	}
	return amount, true
}

// partitionIncome splits income entries into standalone income and
// entries that mirror a settled order. Sale-derived entries are kept
// aside: they are ignored for income totals and only feed the sales
// fallback below.
func partitionIncome(entries []models.IncomeEntry) (standalone, saleDerived []models.IncomeEntry) {
	for _, entry := range entries {
		if entry.SaleDerived() {
			saleDerived = append(saleDerived, entry)
			continue
		}
		standalone = append(standalone, entry)
	}
	return standalone, saleDerived
}

// ComputeSnapshot turns the restaurant's transaction records into the
// cash and virtual running totals. The five record families are
// independent and read-only here, so they are fetched concurrently;
// the first failing fetch cancels the rest. The computation itself is
// pure: calling it twice with no intervening writes yields the same
// totals.
func (svc *BackofficeService) ComputeSnapshot(ctx context.Context, restaurantId string) (*BalanceSnapshot, error) {
	if strings.TrimSpace(restaurantId) == "" {
		return nil, ErrMissingRestaurantId
	}

	var (
		openings       []models.RegisterOpening
		virtualBalance *models.VirtualBalance
		incomes        []models.IncomeEntry
		expenses       []models.ExpenseEntry
		tableOrders    []models.Order
		takeawayOrders []models.Order
		deliveryOrders []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if openings, err = svc.Records.RegisterOpenings(gctx, restaurantId); err != nil {
			return &FetchError{Family: "register_openings", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if virtualBalance, err = svc.Records.VirtualBalance(gctx, restaurantId); err != nil {
			return &FetchError{Family: "virtual_balances", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if incomes, err = svc.Records.IncomeEntries(gctx, restaurantId); err != nil {
			return &FetchError{Family: "income_entries", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if expenses, err = svc.Records.ExpenseEntries(gctx, restaurantId); err != nil {
			return &FetchError{Family: "expense_entries", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if tableOrders, err = svc.Records.PaidOrders(gctx, restaurantId, common.OrderChannelTable); err != nil {
			return &FetchError{Family: "table_orders", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if takeawayOrders, err = svc.Records.PaidOrders(gctx, restaurantId, common.OrderChannelTakeaway); err != nil {
			return &FetchError{Family: "takeaway_orders", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if deliveryOrders, err = svc.Records.PaidOrders(gctx, restaurantId, common.OrderChannelDelivery); err != nil {
			return &FetchError{Family: "delivery_orders", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parser := &amountParser{logger: svc.Logger}

	openingCash := decimal.Decimal{}
	for _, opening := range openings {
		if amount, ok := parser.parse("register_openings", opening.OpeningAmount); ok {
			openingCash = openingCash.Add(amount)
		}
	}

	virtualBase := decimal.Decimal{}
	if virtualBalance != nil {
		if amount, ok := parser.parse("virtual_balances", virtualBalance.Amount); ok {
			virtualBase = amount
		}
	}

	sales := BucketTotals{}
	for _, channelOrders := range [][]models.Order{tableOrders, takeawayOrders, deliveryOrders} {
		for _, order := range channelOrders {
			if order.Status != common.OrderStatusPaid {
				continue
			}
			if amount, ok := parser.parse("orders", order.Total); ok {
				sales.add(ClassifyPayment(order.PaymentMethod, ""), amount)
			}
		}
	}

	standalone, saleDerived := partitionIncome(incomes)

	income := BucketTotals{}
	for _, entry := range standalone {
		if amount, ok := parser.parse("income_entries", entry.Amount); ok {
			income.add(ClassifyPayment(entry.PaymentMethod, entry.PaymentOption), amount)
		}
	}

	// Some installations only ever write income entries for their
	// sales and never a paid order. When no direct order totals exist
	// in either bucket, derive the sales totals from the sale-derived
	// entries instead. With direct totals present the mirrored entries
	// stay ignored, otherwise every settled order would count twice.
	if sales.bothZero() {
		for _, entry := range saleDerived {
			if amount, ok := parser.parse("income_entries", entry.Amount); ok {
				sales.add(ClassifyPayment(entry.PaymentMethod, entry.PaymentOption), amount)
			}
		}
	}

	expenseTotals := BucketTotals{}
	for _, entry := range expenses {
		if amount, ok := parser.parse("expense_entries", entry.Amount); ok {
			expenseTotals.add(ClassifyPayment(entry.PaymentMethod, ""), amount)
		}
	}

	finalCash := sales.Cash.Sub(expenseTotals.Cash)
	finalVirtual := sales.Virtual.Sub(expenseTotals.Virtual)
	netIncome := income.Cash.Add(income.Virtual).Sub(expenseTotals.Cash.Add(expenseTotals.Virtual))

	return &BalanceSnapshot{
		RestaurantId:   restaurantId,
		Cash:           MoneyTotal{Total: finalCash},
		Virtual:        MoneyTotal{Total: finalVirtual},
		TotalMoney:     finalCash.Add(finalVirtual),
		Sales:          sales,
		Income:         income,
		Expenses:       expenseTotals,
		OpeningCash:    openingCash,
		VirtualBase:    virtualBase,
		NetIncome:      netIncome,
		SkippedRecords: parser.skipped,
		GeneratedAt:    time.Now().UTC(),
	}, nil
}
