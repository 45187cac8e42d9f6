package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"abacus/internal/delivery/http/response"
	domainerrors "abacus/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/calc/divide", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func testErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := testErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrDivisionByZero, "divide failed"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DIVISION_BY_ZERO", body.Error.Code)
}

func TestErrorMiddleware_PolicyErrorCarriesAllViolations(t *testing.T) {
	m := testErrorMiddleware()
	c, rec := newErrorTestContext()

	policyErr := &domainerrors.PasswordPolicyError{
		Violations: []*domainerrors.BaseError{
			domainerrors.ErrPasswordTooShort,
			domainerrors.ErrPasswordMissingDigit,
		},
	}
	m.HandleHTTPError(policyErr, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PASSWORD_POLICY", body.Error.Code)
	assert.Contains(t, body.Error.Details, domainerrors.ErrPasswordTooShort.Message())
	assert.Contains(t, body.Error.Details, domainerrors.ErrPasswordMissingDigit.Message())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := testErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	m := testErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("pq: connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeResponse(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	// Internal details never leak to the client.
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := testErrorMiddleware()
	c, rec := newErrorTestContext()

	require.NoError(t, c.NoContent(http.StatusNoContent))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
