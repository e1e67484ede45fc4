package controllers

import (
	"errors"
	"net/http"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// ExpenseController : expense entry endpoints
type ExpenseController struct {
	svc *service.BackofficeService
}

func NewExpenseController(svc *service.BackofficeService) *ExpenseController {
	return &ExpenseController{svc: svc}
}

type AddExpenseRequestBody struct {
	Amount        string `json:"amount" validate:"required"`
	Reason        string `json:"reason"`
	PaymentMethod string `json:"payment_method"`
}

type GetExpensesResponseBody struct {
	Success bool                  `json:"success"`
	Data    []models.ExpenseEntry `json:"data"`
}

// AddExpense godoc
// @Summary      Record an expense
// @Accept       json
// @Produce      json
// @Tags         Expense
// @Param        restaurant_id  path      string                 True  "Restaurant ID"
// @Param        entry          body      AddExpenseRequestBody  True  "Expense entry"
// @Success      200            {object}  models.ExpenseEntry
// @Failure      400            {object}  responses.ErrorResponse
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/expenses [post]
// @Security     OAuth2Password
func (controller *ExpenseController) AddExpense(c echo.Context) error {
	restaurantId := c.Param("restaurant_id")
	if restaurantId == "" {
		return c.JSON(http.StatusBadRequest, responses.MissingRestaurantIdError)
	}

	var body AddExpenseRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load expense request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	entry, err := controller.svc.AddExpenseEntry(c.Request().Context(), restaurantId, body.Amount, body.Reason, body.PaymentMethod)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, responses.InvalidAmountError)
		}
		c.Logger().Errorf("Failed to add expense entry: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, entry)
}

// GetExpenses godoc
// @Summary      List expense entries
// @Produce      json
// @Tags         Expense
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Success      200            {object}  GetExpensesResponseBody
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/expenses [get]
// @Security     OAuth2Password
func (controller *ExpenseController) GetExpenses(c echo.Context) error {
	entries, err := controller.svc.Records.ExpenseEntries(c.Request().Context(), c.Param("restaurant_id"))
	if err != nil {
		c.Logger().Errorf("Failed to list expense entries: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetExpensesResponseBody{Success: true, Data: entries})
}
