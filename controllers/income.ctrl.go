package controllers

import (
	"errors"
	"net/http"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// IncomeController : income entry endpoints
type IncomeController struct {
	svc *service.BackofficeService
}

func NewIncomeController(svc *service.BackofficeService) *IncomeController {
	return &IncomeController{svc: svc}
}

type AddIncomeRequestBody struct {
	Amount        string `json:"amount" validate:"required"`
	Reason        string `json:"reason"`
	PaymentMethod string `json:"payment_method"`
	PaymentOption string `json:"payment_option"`
}

type GetIncomesResponseBody struct {
	Success bool                 `json:"success"`
	Data    []models.IncomeEntry `json:"data"`
}

// AddIncome godoc
// @Summary      Record standalone income
// @Accept       json
// @Produce      json
// @Tags         Income
// @Param        restaurant_id  path      string                True  "Restaurant ID"
// @Param        entry          body      AddIncomeRequestBody  True  "Income entry"
// @Success      200            {object}  models.IncomeEntry
// @Failure      400            {object}  responses.ErrorResponse
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/incomes [post]
// @Security     OAuth2Password
func (controller *IncomeController) AddIncome(c echo.Context) error {
	restaurantId := c.Param("restaurant_id")
	if restaurantId == "" {
		return c.JSON(http.StatusBadRequest, responses.MissingRestaurantIdError)
	}

	var body AddIncomeRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load income request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.AddIncomeEntry(c.Request().Context(), restaurantId, body.Amount, body.Reason, body.PaymentMethod, body.PaymentOption)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, responses.InvalidAmountError)
		}
		c.Logger().Errorf("Failed to add income entry: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, entry)
}

// GetIncomes godoc
// @Summary      List income entries
// @Produce      json
// @Tags         Income
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Success      200            {object}  GetIncomesResponseBody
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/incomes [get]
// @Security     OAuth2Password
func (controller *IncomeController) GetIncomes(c echo.Context) error {
	entries, err := controller.svc.Records.IncomeEntries(c.Request().Context(), c.Param("restaurant_id"))
	if err != nil {
		c.Logger().Errorf("Failed to list income entries: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetIncomesResponseBody{Success: true, Data: entries})
}

type ResetIncomesResponseBody struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// ResetIncomes godoc
// @Summary      Delete all income entries of a restaurant
// @Description  Admin-only reset, the single delete path for income records
// @Produce      json
// @Tags         Income
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Success      200            {object}  ResetIncomesResponseBody
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/incomes [delete]
// @Security     OAuth2Password
func (controller *IncomeController) ResetIncomes(c echo.Context) error {
	deleted, err := controller.svc.ResetIncomeEntries(c.Request().Context(), c.Param("restaurant_id"))
	if err != nil {
		c.Logger().Errorf("Failed to reset income entries: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &ResetIncomesResponseBody{Success: true, Deleted: deleted})
}
