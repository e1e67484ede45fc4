package controllers

import (
	"net/http"
	"strings"

	"github.com/francoluca35/comandas-multiples-sub006/lib/responses"
	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// CreateUserController : Create user controller struct
type CreateUserController struct {
	svc *service.BackofficeService
}

func NewCreateUserController(svc *service.BackofficeService) *CreateUserController {
	return &CreateUserController{svc: svc}
}

type CreateUserRequestBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
type CreateUserResponseBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CreateUser godoc
// @Summary      Create an account
// @Description  Create a new back-office account. Login and password are generated when omitted.
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        account  body      CreateUserRequestBody  false  "Create User"
// @Success      200      {object}  CreateUserResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/users [post]
func (controller *CreateUserController) CreateUser(c echo.Context) error {

	var body CreateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	user, err := controller.svc.CreateUser(c.Request().Context(), body.Login, body.Password)
	if err != nil {
		c.Logger().Errorf("Failed to create user: %v", err)
		if strings.Contains(err.Error(), "duplicate") && strings.Contains(err.Error(), "login") {
			return c.JSON(http.StatusBadRequest, responses.LoginTakenError)
		}
		if strings.Contains(err.Error(), "password entropy") {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError.WithDetails(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &CreateUserResponseBody{
		Login:    user.Login,
		Password: user.Password,
	})
}
