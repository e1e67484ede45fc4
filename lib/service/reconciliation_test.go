package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service/mock_source"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const testRestaurantId = "rest-001"

func newTestService(source service.RecordSource) *service.BackofficeService {
	return &service.BackofficeService{
		Config:  &service.Config{},
		Records: source,
	}
}

// expectEmptyFamilies stubs every record family that a test does not
// care about with empty results. Register it after the specific
// expectations: gomock matches in declaration order and these never
// exhaust.
func expectEmptyFamilies(source *mock_source.MockRecordSource) {
	source.EXPECT().RegisterOpenings(gomock.Any(), gomock.Eq(testRestaurantId)).AnyTimes().Return([]models.RegisterOpening{}, nil)
	source.EXPECT().VirtualBalance(gomock.Any(), gomock.Eq(testRestaurantId)).AnyTimes().Return(nil, nil)
	source.EXPECT().IncomeEntries(gomock.Any(), gomock.Eq(testRestaurantId)).AnyTimes().Return([]models.IncomeEntry{}, nil)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Eq(testRestaurantId)).AnyTimes().Return([]models.ExpenseEntry{}, nil)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Any()).AnyTimes().Return([]models.Order{}, nil)
}

func TestSnapshotRequiresRestaurantId(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestService(mock_source.NewMockRecordSource(ctrl))

	_, err := svc.ComputeSnapshot(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrMissingRestaurantId)
	_, err = svc.ComputeSnapshot(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrMissingRestaurantId)
}

func TestSnapshotCanonicalTotals(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().RegisterOpenings(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.RegisterOpening{
		{RestaurantID: testRestaurantId, OpeningAmount: "500"},
		{RestaurantID: testRestaurantId, OpeningAmount: "250.50"},
	}, nil)
	source.EXPECT().VirtualBalance(gomock.Any(), gomock.Eq(testRestaurantId)).Return(&models.VirtualBalance{
		RestaurantID: testRestaurantId, Amount: "1000",
	}, nil)
	source.EXPECT().IncomeEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.IncomeEntry{
		{Amount: "300", Reason: "catering deposit", PaymentMethod: "Efectivo", SourceType: common.IncomeSourceManual},
		{Amount: "200", Reason: "gift card sale", PaymentMethod: "MercadoPago", SourceType: common.IncomeSourceManual},
	}, nil)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.ExpenseEntry{
		{Amount: "150", Reason: "produce", PaymentMethod: "Efectivo"},
		{Amount: "80", Reason: "delivery app fee", PaymentMethod: "Transferencia"},
	}, nil)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Eq(common.OrderChannelTable)).Return([]models.Order{
		{Total: "1200", PaymentMethod: "Efectivo", Status: common.OrderStatusPaid},
		{Total: "800", PaymentMethod: "Tarjeta", Status: common.OrderStatusPaid},
	}, nil)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Eq(common.OrderChannelTakeaway)).Return([]models.Order{
		{Total: "400", PaymentMethod: "cash", Status: common.OrderStatusPaid},
	}, nil)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Eq(common.OrderChannelDelivery)).Return([]models.Order{
		{Total: "600", PaymentMethod: "transferencia", Status: common.OrderStatusPaid},
	}, nil)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	assert.Equal(t, "1600", snapshot.Sales.Cash.String())
	assert.Equal(t, "1400", snapshot.Sales.Virtual.String())
	assert.Equal(t, "300", snapshot.Income.Cash.String())
	assert.Equal(t, "200", snapshot.Income.Virtual.String())
	assert.Equal(t, "150", snapshot.Expenses.Cash.String())
	assert.Equal(t, "80", snapshot.Expenses.Virtual.String())

	// final totals come from sales minus expenses per bucket
	assert.Equal(t, "1450", snapshot.Cash.Total.String())
	assert.Equal(t, "1320", snapshot.Virtual.Total.String())
	assert.Equal(t, "2770", snapshot.TotalMoney.String())

	// openings and the virtual balance row stay outside the totals
	assert.Equal(t, "750.5", snapshot.OpeningCash.String())
	assert.Equal(t, "1000", snapshot.VirtualBase.String())

	assert.Equal(t, "270", snapshot.NetIncome.String())
	assert.Equal(t, 0, snapshot.SkippedRecords)
	assert.Equal(t, testRestaurantId, snapshot.RestaurantId)
}

func TestSnapshotOpeningStaysOutOfTotals(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().RegisterOpenings(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.RegisterOpening{
		{OpeningAmount: "1000"},
	}, nil)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.ExpenseEntry{
		{Amount: "200", Reason: "gas refill", PaymentMethod: "Efectivo"},
	}, nil)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	// the opening is reported but never folded in, a day with only
	// expenses legitimately goes negative
	assert.Equal(t, "1000", snapshot.OpeningCash.String())
	assert.Equal(t, "-200", snapshot.Cash.Total.String())
	assert.Equal(t, "-200", snapshot.TotalMoney.String())
}

func TestSnapshotIgnoresUnpaidOrders(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Eq(common.OrderChannelTable)).Return([]models.Order{
		{Total: "900", PaymentMethod: "Efectivo", Status: common.OrderStatusPaid},
		{Total: "500", PaymentMethod: "Efectivo", Status: common.OrderStatusPending},
	}, nil)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)
	assert.Equal(t, "900", snapshot.Sales.Cash.String())
}

func TestSnapshotSaleDerivedEntriesNotCountedTwice(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Eq(common.OrderChannelTable)).Return([]models.Order{
		{ID: 7, Total: "1000", PaymentMethod: "Efectivo", Status: common.OrderStatusPaid},
	}, nil)
	source.EXPECT().IncomeEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.IncomeEntry{
		// mirrored entry written when order 7 settled
		{Amount: "1000", Reason: "TableCharge #4", PaymentMethod: "Efectivo", SourceType: common.IncomeSourceSale},
		{Amount: "250", Reason: "catering deposit", PaymentMethod: "Efectivo", SourceType: common.IncomeSourceManual},
	}, nil)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	// the settled order counts once, in sales
	assert.Equal(t, "1000", snapshot.Sales.Cash.String())
	assert.Equal(t, "250", snapshot.Income.Cash.String())
	assert.Equal(t, "1000", snapshot.Cash.Total.String())
}

func TestSnapshotSalesFallbackFromMirroredEntries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().IncomeEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.IncomeEntry{
		{Amount: "700", Reason: "TableCharge #2", PaymentMethod: "Efectivo", SourceType: common.IncomeSourceSale},
		// legacy row without a source type, recognized by its marker
		{Amount: "300", Reason: "Delivery #15", PaymentMethod: "MercadoPago"},
		{Amount: "120", Reason: "tip jar", PaymentMethod: "Efectivo", SourceType: common.IncomeSourceManual},
	}, nil)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	// with no direct order totals the mirrored entries become the sales
	assert.Equal(t, "700", snapshot.Sales.Cash.String())
	assert.Equal(t, "300", snapshot.Sales.Virtual.String())
	assert.Equal(t, "120", snapshot.Income.Cash.String())
	assert.Equal(t, "1000", snapshot.TotalMoney.String())
}

func TestSnapshotExpenseBucketsByMethodName(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.ExpenseEntry{
		{Amount: "300", Reason: "card terminal fee", PaymentMethod: "virtual"},
		{Amount: "150", Reason: "petty cash", PaymentMethod: "unknown"},
	}, nil)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	// "virtual" is a recognized method, "unknown" takes the cash default
	assert.Equal(t, "300", snapshot.Expenses.Virtual.String())
	assert.Equal(t, "150", snapshot.Expenses.Cash.String())
	assert.Equal(t, "-300", snapshot.Virtual.Total.String())
	assert.Equal(t, "-150", snapshot.Cash.Total.String())
}

func TestSnapshotSkipsMalformedAmounts(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().RegisterOpenings(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.RegisterOpening{
		{OpeningAmount: "abc"},
		{OpeningAmount: "100"},
	}, nil)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return([]models.ExpenseEntry{
		{Amount: "", Reason: "broken import", PaymentMethod: "Efectivo"},
		{Amount: "40", Reason: "napkins", PaymentMethod: "Efectivo"},
	}, nil)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	assert.Equal(t, 2, snapshot.SkippedRecords)
	assert.Equal(t, "100", snapshot.OpeningCash.String())
	assert.Equal(t, "40", snapshot.Expenses.Cash.String())
	assert.Equal(t, "-40", snapshot.Cash.Total.String())
}

func TestSnapshotAbortsOnFetchFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	dbErr := errors.New("connection reset")
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Eq(testRestaurantId)).Return(nil, dbErr)
	expectEmptyFamilies(source)

	snapshot, err := newTestService(source).ComputeSnapshot(context.Background(), testRestaurantId)
	assert.Nil(t, snapshot)

	var fetchErr *service.FetchError
	assert.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "expense_entries", fetchErr.Family)
	assert.ErrorIs(t, err, dbErr)
}

func TestSnapshotIsIdempotent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq(testRestaurantId), gomock.Eq(common.OrderChannelTable)).Times(2).Return([]models.Order{
		{Total: "333.33", PaymentMethod: "Tarjeta", Status: common.OrderStatusPaid},
	}, nil)
	expectEmptyFamilies(source)

	svc := newTestService(source)
	first, err := svc.ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)
	second, err := svc.ComputeSnapshot(context.Background(), testRestaurantId)
	assert.NoError(t, err)

	first.GeneratedAt = time.Time{}
	second.GeneratedAt = time.Time{}
	assert.Equal(t, first, second)
}
