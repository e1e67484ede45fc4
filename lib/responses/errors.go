package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// ErrorResponse : the failure envelope every endpoint returns.
type ErrorResponse struct {
	Success        bool   `json:"success"`
	Error          string `json:"error"`
	Details        string `json:"details,omitempty"`
	HttpStatusCode int    `json:"-"`
}

func (e ErrorResponse) WithDetails(details string) ErrorResponse {
	e.Details = details
	return e
}

var GeneralServerError = ErrorResponse{
	Success:        false,
	Error:          "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Success:        false,
	Error:          "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Success:        false,
	Error:          "bad auth",
	HttpStatusCode: 401,
}

var MissingRestaurantIdError = ErrorResponse{
	Success:        false,
	Error:          "restaurant id is required",
	HttpStatusCode: 400,
}

var InvalidAmountError = ErrorResponse{
	Success:        false,
	Error:          "amount must be a decimal greater than zero",
	HttpStatusCode: 400,
}

var UnknownChannelError = ErrorResponse{
	Success:        false,
	Error:          "unknown sales channel",
	HttpStatusCode: 400,
}

var OrderNotFoundError = ErrorResponse{
	Success:        false,
	Error:          "order not found",
	HttpStatusCode: 404,
}

var OrderAlreadySettledError = ErrorResponse{
	Success:        false,
	Error:          "order is already settled",
	HttpStatusCode: 400,
}

var LoginTakenError = ErrorResponse{
	Success:        false,
	Error:          "login already exists",
	HttpStatusCode: 400,
}

// SnapshotComputationError : a record family failed to load, so no
// balance was published. Callers should show an explicit failure state
// instead of a stale or zeroed figure.
var SnapshotComputationError = ErrorResponse{
	Success:        false,
	Error:          "could not compute balances",
	HttpStatusCode: 500,
}

func isErrAllowedForSentry(err error) bool {
	// auth failures are user error, not ours
	if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusUnauthorized {
		return false
	}
	return true
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("UserID", c.Get("UserID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}
