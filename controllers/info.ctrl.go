package controllers

import (
	"net/http"

	"github.com/francoluca35/comandas-multiples-sub006/lib/service"
	"github.com/labstack/echo/v4"
)

// InfoController : InfoController struct
type InfoController struct {
	svc *service.BackofficeService
}

func NewInfoController(svc *service.BackofficeService) *InfoController {
	return &InfoController{svc: svc}
}

type InfoResponseBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Url         string `json:"url"`
}

// GetInfo godoc
// @Summary      Service information
// @Description  Branding and deployment information for this instance
// @Produce      json
// @Tags         Info
// @Success      200  {object}  InfoResponseBody
// @Router       /v2/info [get]
func (controller *InfoController) GetInfo(c echo.Context) error {
	branding := controller.svc.Config.Branding
	return c.JSON(http.StatusOK, &InfoResponseBody{
		Title:       branding.Title,
		Description: branding.Desc,
		Url:         branding.Url,
	})
}

type HealthResponseBody struct {
	Result string `json:"result"`
}

// Health godoc
// @Summary      Check system health
// @Produce      json
// @Tags         Info
// @Success      200  {object}  HealthResponseBody
// @Router       /health [get]
func (controller *InfoController) Health(c echo.Context) error {
	if err := controller.svc.DB.PingContext(c.Request().Context()); err != nil {
		c.Logger().Errorf("Health check could not reach the database: %v", err)
		return c.JSON(http.StatusServiceUnavailable, &HealthResponseBody{Result: "DB_UNREACHABLE"})
	}
	return c.JSON(http.StatusOK, &HealthResponseBody{Result: "OK"})
}
