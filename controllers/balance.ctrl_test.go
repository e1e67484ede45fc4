package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/controllers"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service/mock_source"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func balanceRequest(svc *service.BackofficeService, restaurantId string) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v2/restaurants/:restaurant_id/balance")
	c.SetParamNames("restaurant_id")
	c.SetParamValues(restaurantId)

	if err := controllers.NewBalanceController(svc).Snapshot(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestBalanceEndpointEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Eq("rest-001"), gomock.Any()).AnyTimes().Return([]models.Order{
		{Total: "150", PaymentMethod: "Efectivo", Status: common.OrderStatusPaid},
	}, nil)
	source.EXPECT().RegisterOpenings(gomock.Any(), gomock.Any()).AnyTimes().Return([]models.RegisterOpening{}, nil)
	source.EXPECT().VirtualBalance(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
	source.EXPECT().IncomeEntries(gomock.Any(), gomock.Any()).AnyTimes().Return([]models.IncomeEntry{}, nil)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Any()).AnyTimes().Return([]models.ExpenseEntry{}, nil)

	svc := &service.BackofficeService{Config: &service.Config{}, Records: source}
	rec := balanceRequest(svc, "rest-001")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body controllers.SnapshotResponseBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "rest-001", body.Data.RestaurantId)
	// three paid orders of 150, one per channel, all cash
	assert.Equal(t, "450", body.Data.Cash.Total.String())
	assert.Equal(t, "450", body.Data.TotalMoney.String())
	assert.False(t, body.Data.GeneratedAt.IsZero())
}

func TestBalanceEndpointMissingRestaurantId(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := &service.BackofficeService{Config: &service.Config{}, Records: mock_source.NewMockRecordSource(ctrl)}
	rec := balanceRequest(svc, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body responses.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, responses.MissingRestaurantIdError.Error, body.Error)
}

func TestBalanceEndpointFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_source.NewMockRecordSource(ctrl)
	source.EXPECT().IncomeEntries(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	source.EXPECT().RegisterOpenings(gomock.Any(), gomock.Any()).AnyTimes().Return([]models.RegisterOpening{}, nil)
	source.EXPECT().VirtualBalance(gomock.Any(), gomock.Any()).AnyTimes().Return(nil, nil)
	source.EXPECT().ExpenseEntries(gomock.Any(), gomock.Any()).AnyTimes().Return([]models.ExpenseEntry{}, nil)
	source.EXPECT().PaidOrders(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().Return([]models.Order{}, nil)

	svc := &service.BackofficeService{Config: &service.Config{}, Records: source}
	rec := balanceRequest(svc, "rest-001")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body responses.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, responses.SnapshotComputationError.Error, body.Error)
	assert.Contains(t, body.Details, "income_entries")
}
