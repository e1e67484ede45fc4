package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/francoluca35/comandas-multiples-sub006/common"
	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// OrderController : order endpoints for the three sales channels
type OrderController struct {
	svc *service.BackofficeService
}

func NewOrderController(svc *service.BackofficeService) *OrderController {
	return &OrderController{svc: svc}
}

type CreateOrderRequestBody struct {
	Channel       string `json:"channel" validate:"required,oneof=table takeaway delivery"`
	TableNumber   int    `json:"table_number" validate:"gte=0"`
	Total         string `json:"total" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}

type GetOrdersResponseBody struct {
	Success bool           `json:"success"`
	Data    []models.Order `json:"data"`
}

// CreateOrder godoc
// @Summary      Create an order
// @Accept       json
// @Produce      json
// @Tags         Order
// @Param        restaurant_id  path      string                  True  "Restaurant ID"
// @Param        order          body      CreateOrderRequestBody  True  "Order"
// @Success      200            {object}  models.Order
// @Failure      400            {object}  responses.ErrorResponse
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/orders [post]
// @Security     OAuth2Password
func (controller *OrderController) CreateOrder(c echo.Context) error {
	restaurantId := c.Param("restaurant_id")
	if restaurantId == "" {
		return c.JSON(http.StatusBadRequest, responses.MissingRestaurantIdError)
	}

	var body CreateOrderRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load order request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	order, err := controller.svc.CreateOrder(c.Request().Context(), restaurantId, body.Channel, body.TableNumber, body.Total, body.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, responses.InvalidAmountError)
		case errors.Is(err, service.ErrUnknownChannel):
			return c.JSON(http.StatusBadRequest, responses.UnknownChannelError)
		}
		c.Logger().Errorf("Failed to create order: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, order)
}

// SettleOrder godoc
// @Summary      Settle an order
// @Description  Marks the order paid and writes its mirrored income entry and virtual credit in one transaction
// @Produce      json
// @Tags         Order
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Param        id             path      int     True  "Order ID"
// @Success      200            {object}  models.Order
// @Failure      400            {object}  responses.ErrorResponse
// @Failure      404            {object}  responses.ErrorResponse
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/orders/{id}/settle [post]
// @Security     OAuth2Password
func (controller *OrderController) SettleOrder(c echo.Context) error {
	restaurantId := c.Param("restaurant_id")
	if restaurantId == "" {
		return c.JSON(http.StatusBadRequest, responses.MissingRestaurantIdError)
	}
	orderId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	order, err := controller.svc.SettleOrder(c.Request().Context(), restaurantId, orderId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, responses.OrderNotFoundError)
		case errors.Is(err, service.ErrOrderAlreadySettled):
			return c.JSON(http.StatusBadRequest, responses.OrderAlreadySettledError)
		}
		c.Logger().Errorf("Failed to settle order: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, order)
}

// GetOrders godoc
// @Summary      List paid orders for one channel
// @Produce      json
// @Tags         Order
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Param        channel        query     string  false  "Channel (table, takeaway or delivery)"
// @Success      200            {object}  GetOrdersResponseBody
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/orders [get]
// @Security     OAuth2Password
func (controller *OrderController) GetOrders(c echo.Context) error {
	channel := c.QueryParam("channel")
	if channel == "" {
		channel = common.OrderChannelTable
	}
	orders, err := controller.svc.Records.PaidOrders(c.Request().Context(), c.Param("restaurant_id"), channel)
	if err != nil {
		c.Logger().Errorf("Failed to list orders: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetOrdersResponseBody{Success: true, Data: orders})
}
