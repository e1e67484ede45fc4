package tokens_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/francoluca35/comandas-multiples-sub006/db/models"
	"github.com/francoluca35/comandas-multiples-sub006/lib/tokens"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-secret")

func runProtected(t *testing.T, authHeader string) (*httptest.ResponseRecorder, interface{}) {
	t.Helper()
	e := echo.New()
	var capturedUserId interface{}
	handler := tokens.Middleware(testSecret)(func(c echo.Context) error {
		capturedUserId = c.Get("UserID")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	return rec, capturedUserId
}

func TestMiddlewareAcceptsAccessToken(t *testing.T) {
	token, err := tokens.GenerateAccessToken(testSecret, 3600, &models.User{ID: 42})
	assert.NoError(t, err)

	rec, userId := runProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), userId)
}

func TestMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	rec, _ := runProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runProtected(t, "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = runProtected(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsRefreshToken(t *testing.T) {
	token, err := tokens.GenerateRefreshToken(testSecret, 3600, &models.User{ID: 42})
	assert.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	token, err := tokens.GenerateAccessToken([]byte("other-secret"), 3600, &models.User{ID: 42})
	assert.NoError(t, err)

	rec, _ := runProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	refresh, err := tokens.GenerateRefreshToken(testSecret, 3600, &models.User{ID: 7})
	assert.NoError(t, err)

	userId, err := tokens.GetUserIdFromToken(testSecret, refresh)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userId)

	// an access token must not pass for a refresh token
	access, err := tokens.GenerateAccessToken(testSecret, 3600, &models.User{ID: 7})
	assert.NoError(t, err)
	_, err = tokens.GetUserIdFromToken(testSecret, access)
	assert.Error(t, err)
}
