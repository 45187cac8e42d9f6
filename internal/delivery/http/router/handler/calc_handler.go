package handler

import (
	"log/slog"
	"net/http"

	"abacus/internal/delivery/http/response"
	"abacus/internal/domain/entity"
	"abacus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalcHandler holds dependencies for the arithmetic handlers.
type CalcHandler struct {
	uc     usecase.CalculatorUsecase
	logger *slog.Logger
}

// NewCalcHandler is the constructor for CalcHandler, injected by Fx.
func NewCalcHandler(uc usecase.CalculatorUsecase, logger *slog.Logger) *CalcHandler {
	return &CalcHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles POST /calc/add.
func (h *CalcHandler) Add(c echo.Context) error {
	return h.calculate(c, entity.OperationAdd)
}

// Subtract handles POST /calc/subtract.
func (h *CalcHandler) Subtract(c echo.Context) error {
	return h.calculate(c, entity.OperationSubtract)
}

// Multiply handles POST /calc/multiply.
func (h *CalcHandler) Multiply(c echo.Context) error {
	return h.calculate(c, entity.OperationMultiply)
}

// Divide handles POST /calc/divide.
func (h *CalcHandler) Divide(c echo.Context) error {
	return h.calculate(c, entity.OperationDivide)
}

func (h *CalcHandler) calculate(c echo.Context, op entity.Operation) error {
	var input usecase.CalculateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calculation input")
	}
	input.Operation = op
	input.UserID = optionalUserID(c)

	output, err := h.uc.Calculate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Calculation successful")
}

// History handles GET /calc/history.
func (h *CalcHandler) History(c echo.Context) error {
	var input usecase.HistoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history query")
	}
	input.UserID = optionalUserID(c)

	output, err := h.uc.History(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "History retrieved successfully")
}

// optionalUserID reads the X-User-Id header when the caller wants records
// attributed to an account. An absent or malformed header means anonymous.
func optionalUserID(c echo.Context) *uuid.UUID {
	raw := c.Request().Header.Get("X-User-Id")
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}
