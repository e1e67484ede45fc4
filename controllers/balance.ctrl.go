package controllers

import (
	"errors"
	"net/http"

	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.BackofficeService
}

func NewBalanceController(svc *service.BackofficeService) *BalanceController {
	return &BalanceController{svc: svc}
}

type SnapshotResponseBody struct {
	Success bool                     `json:"success"`
	Data    *service.BalanceSnapshot `json:"data"`
}

// Snapshot godoc
// @Summary      Compute the balance snapshot
// @Description  Reconciles register openings, income, expenses and paid orders into the cash and virtual running totals
// @Produce      json
// @Tags         Balance
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Success      200            {object}  SnapshotResponseBody
// @Failure      400            {object}  responses.ErrorResponse
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/balance [get]
// @Security     OAuth2Password
func (controller *BalanceController) Snapshot(c echo.Context) error {
	snapshot, err := controller.svc.ComputeSnapshot(c.Request().Context(), c.Param("restaurant_id"))
	if err != nil {
		if errors.Is(err, service.ErrMissingRestaurantId) {
			return c.JSON(http.StatusBadRequest, responses.MissingRestaurantIdError)
		}
		var fetchErr *service.FetchError
		if errors.As(err, &fetchErr) {
			c.Logger().Errorf("Failed to compute balance snapshot: %v", err)
			return c.JSON(http.StatusInternalServerError, responses.SnapshotComputationError.WithDetails(fetchErr.Error()))
		}
		c.Logger().Errorf("Failed to compute balance snapshot: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.SnapshotComputationError)
	}

	return c.JSON(http.StatusOK, &SnapshotResponseBody{
		Success: true,
		Data:    snapshot,
	})
}
