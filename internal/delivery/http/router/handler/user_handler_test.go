package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"abacus/internal/delivery/http/validator"
	"abacus/internal/domain/entity"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase records inputs and returns canned results.
type stubUserUsecase struct {
	lastRegister *usecase.RegisterUserInput
	lastLogin    *usecase.LoginInput
	registerOut  *usecase.RegisterOutput
	loginOut     *usecase.LoginOutput
	err          error
}

func (s *stubUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	s.lastRegister = input
	if s.err != nil {
		return nil, s.err
	}

	return s.registerOut, nil
}

func (s *stubUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.lastLogin = input
	if s.err != nil {
		return nil, s.err
	}

	return s.loginOut, nil
}

func newUserTestContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testUserHandler(stub *stubUserUsecase) *UserHandler {
	return NewUserHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func publicUser() *entity.PublicUser {
	return &entity.PublicUser{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Username:  "testuser",
		FullName:  "Test User",
		CreatedAt: time.Now(),
	}
}

func TestUserHandler_RegisterUser_Success(t *testing.T) {
	stub := &stubUserUsecase{registerOut: &usecase.RegisterOutput{User: publicUser()}}
	handler := testUserHandler(stub)

	body := `{"email": "test@example.com", "username": "testuser", "full_name": "Test User", "password": "Password1"}`
	c, rec := newUserTestContext(t, "/auth/register", body)
	require.NoError(t, handler.RegisterUser(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.lastRegister)
	assert.Equal(t, "test@example.com", stub.lastRegister.Email)
	assert.Equal(t, "testuser", stub.lastRegister.Username)
	// The credential hash never appears in the response body.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_RegisterUser_MalformedEmail(t *testing.T) {
	stub := &stubUserUsecase{}
	handler := testUserHandler(stub)

	body := `{"email": "not-an-email", "username": "testuser", "password": "Password1"}`
	c, _ := newUserTestContext(t, "/auth/register", body)

	err := handler.RegisterUser(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Nil(t, stub.lastRegister)
}

func TestUserHandler_RegisterUser_MissingFields(t *testing.T) {
	stub := &stubUserUsecase{}
	handler := testUserHandler(stub)

	c, _ := newUserTestContext(t, "/auth/register", `{"email": "test@example.com"}`)

	err := handler.RegisterUser(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login_Success(t *testing.T) {
	stub := &stubUserUsecase{loginOut: &usecase.LoginOutput{User: publicUser()}}
	handler := testUserHandler(stub)

	body := `{"email": "test@example.com", "password": "Password1"}`
	c, rec := newUserTestContext(t, "/auth/login", body)
	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastLogin)
	assert.Equal(t, "test@example.com", stub.lastLogin.Email)
	assert.Contains(t, rec.Body.String(), "testuser")
}

func TestUserHandler_HealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
