package controllers

import (
	"errors"
	"net/http"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// RegisterController : register opening endpoints
type RegisterController struct {
	svc *service.BackofficeService
}

func NewRegisterController(svc *service.BackofficeService) *RegisterController {
	return &RegisterController{svc: svc}
}

type OpenRegisterRequestBody struct {
	OpeningAmount string `json:"opening_amount" validate:"required"`
	OpenedBy      string `json:"opened_by"`
}

type GetRegisterOpeningsResponseBody struct {
	Success bool                     `json:"success"`
	Data    []models.RegisterOpening `json:"data"`
}

// OpenRegister godoc
// @Summary      Open a register shift
// @Description  Records the cash float counted into the drawer for a new shift
// @Accept       json
// @Produce      json
// @Tags         Register
// @Param        restaurant_id  path      string                   True  "Restaurant ID"
// @Param        opening        body      OpenRegisterRequestBody  True  "Opening"
// @Success      200            {object}  models.RegisterOpening
// @Failure      400            {object}  responses.ErrorResponse
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/registers [post]
// @Security     OAuth2Password
func (controller *RegisterController) OpenRegister(c echo.Context) error {
	restaurantId := c.Param("restaurant_id")
	if restaurantId == "" {
		return c.JSON(http.StatusBadRequest, responses.MissingRestaurantIdError)
	}

	var body OpenRegisterRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load register opening request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	opening, err := controller.svc.OpenRegister(c.Request().Context(), restaurantId, body.OpeningAmount, body.OpenedBy)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, responses.InvalidAmountError)
		}
		c.Logger().Errorf("Failed to open register: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, opening)
}

// GetRegisterOpenings godoc
// @Summary      List register openings
// @Produce      json
// @Tags         Register
// @Param        restaurant_id  path      string  True  "Restaurant ID"
// @Success      200            {object}  GetRegisterOpeningsResponseBody
// @Failure      500            {object}  responses.ErrorResponse
// @Router       /v2/restaurants/{restaurant_id}/registers [get]
// @Security     OAuth2Password
func (controller *RegisterController) GetRegisterOpenings(c echo.Context) error {
	openings, err := controller.svc.Records.RegisterOpenings(c.Request().Context(), c.Param("restaurant_id"))
	if err != nil {
		c.Logger().Errorf("Failed to list register openings: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &GetRegisterOpeningsResponseBody{Success: true, Data: openings})
}
