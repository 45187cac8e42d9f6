package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"abacus/internal/domain/entity"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCalculatorUsecase records the last input and returns canned results.
type stubCalculatorUsecase struct {
	lastCalculate *usecase.CalculateInput
	lastHistory   *usecase.HistoryInput
	calculateOut  *usecase.CalculateOutput
	historyOut    *usecase.HistoryOutput
	err           error
}

func (s *stubCalculatorUsecase) Calculate(ctx context.Context, input *usecase.CalculateInput) (*usecase.CalculateOutput, error) {
	s.lastCalculate = input
	if s.err != nil {
		return nil, s.err
	}

	return s.calculateOut, nil
}

func (s *stubCalculatorUsecase) History(ctx context.Context, input *usecase.HistoryInput) (*usecase.HistoryOutput, error) {
	s.lastHistory = input
	if s.err != nil {
		return nil, s.err
	}

	return s.historyOut, nil
}

func newCalcTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testCalcHandler(stub *stubCalculatorUsecase) *CalcHandler {
	return NewCalcHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCalcHandler_Add(t *testing.T) {
	stub := &stubCalculatorUsecase{
		calculateOut: &usecase.CalculateOutput{
			Calculation: &entity.Calculation{
				Operation: entity.OperationAdd,
				OperandA:  2,
				OperandB:  3,
				Result:    5,
			},
		},
	}
	handler := testCalcHandler(stub)

	c, rec := newCalcTestContext(t, http.MethodPost, "/calc/add", `{"a": 2, "b": 3}`)
	require.NoError(t, handler.Add(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastCalculate)
	assert.Equal(t, entity.OperationAdd, stub.lastCalculate.Operation)
	assert.InDelta(t, 2.0, stub.lastCalculate.A, 1e-9)
	assert.InDelta(t, 3.0, stub.lastCalculate.B, 1e-9)
	assert.Nil(t, stub.lastCalculate.UserID)
	assert.Contains(t, rec.Body.String(), `"result":5`)
}

func TestCalcHandler_OperationPerRoute(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(h *CalcHandler, c echo.Context) error
		want   entity.Operation
	}{
		{name: "subtract", invoke: func(h *CalcHandler, c echo.Context) error { return h.Subtract(c) }, want: entity.OperationSubtract},
		{name: "multiply", invoke: func(h *CalcHandler, c echo.Context) error { return h.Multiply(c) }, want: entity.OperationMultiply},
		{name: "divide", invoke: func(h *CalcHandler, c echo.Context) error { return h.Divide(c) }, want: entity.OperationDivide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCalculatorUsecase{
				calculateOut: &usecase.CalculateOutput{Calculation: &entity.Calculation{Operation: tt.want}},
			}
			handler := testCalcHandler(stub)

			c, rec := newCalcTestContext(t, http.MethodPost, "/calc/"+tt.name, `{"a": 1, "b": 1}`)
			require.NoError(t, tt.invoke(handler, c))

			assert.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, stub.lastCalculate)
			assert.Equal(t, tt.want, stub.lastCalculate.Operation)
		})
	}
}

func TestCalcHandler_Calculate_UserHeader(t *testing.T) {
	stub := &stubCalculatorUsecase{
		calculateOut: &usecase.CalculateOutput{Calculation: &entity.Calculation{}},
	}
	handler := testCalcHandler(stub)
	userID := uuid.New()

	c, _ := newCalcTestContext(t, http.MethodPost, "/calc/add", `{"a": 1, "b": 2}`)
	c.Request().Header.Set("X-User-Id", userID.String())
	require.NoError(t, handler.Add(c))

	require.NotNil(t, stub.lastCalculate.UserID)
	assert.Equal(t, userID, *stub.lastCalculate.UserID)
}

func TestCalcHandler_Calculate_MalformedUserHeaderIsAnonymous(t *testing.T) {
	stub := &stubCalculatorUsecase{
		calculateOut: &usecase.CalculateOutput{Calculation: &entity.Calculation{}},
	}
	handler := testCalcHandler(stub)

	c, _ := newCalcTestContext(t, http.MethodPost, "/calc/add", `{"a": 1, "b": 2}`)
	c.Request().Header.Set("X-User-Id", "not-a-uuid")
	require.NoError(t, handler.Add(c))

	assert.Nil(t, stub.lastCalculate.UserID)
}

func TestCalcHandler_Calculate_InvalidBody(t *testing.T) {
	stub := &stubCalculatorUsecase{}
	handler := testCalcHandler(stub)

	c, rec := newCalcTestContext(t, http.MethodPost, "/calc/add", `{"a": "two"}`)
	require.NoError(t, handler.Add(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.lastCalculate)
}

func TestCalcHandler_History(t *testing.T) {
	stub := &stubCalculatorUsecase{
		historyOut: &usecase.HistoryOutput{
			Calculations: []*entity.Calculation{
				{ID: uuid.New(), Operation: entity.OperationDivide, OperandA: 9, OperandB: 2, Result: 4.5},
			},
		},
	}
	handler := testCalcHandler(stub)

	c, rec := newCalcTestContext(t, http.MethodGet, "/calc/history?limit=5", "")
	require.NoError(t, handler.History(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastHistory)
	assert.Equal(t, 5, stub.lastHistory.Limit)

	var envelope struct {
		Data usecase.HistoryOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Calculations, 1)
	assert.Equal(t, entity.OperationDivide, envelope.Data.Calculations[0].Operation)
}
