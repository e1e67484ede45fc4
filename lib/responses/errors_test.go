package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthErrorsNotAllowedForSentry(t *testing.T) {
	badAuthErrResponse := echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
		"success": false,
		"error":   "bad auth",
	})

	isAllowed := isErrAllowedForSentry(badAuthErrResponse)
	assert.False(t, isAllowed)
}

func TestNotAuthErrorsAllowedForSentry(t *testing.T) {
	badRequestErrResponse := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"success": false,
		"error":   "Bad arguments",
	})

	isAllowed := isErrAllowedForSentry(badRequestErrResponse)
	assert.True(t, isAllowed)
}

func TestNonHTTPErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}
