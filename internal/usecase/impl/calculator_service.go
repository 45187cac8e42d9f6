// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"abacus/config"
	deliverycontext "abacus/internal/delivery/context"
	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// calculatorService implements the CalculatorUsecase interface.
type calculatorService struct {
	calcRepo     repository.CalculationRepository
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

// CalculatorServiceParams holds dependencies for calculatorService, injected by Fx.
type CalculatorServiceParams struct {
	fx.In

	Config   *config.Config
	CalcRepo repository.CalculationRepository
	Logger   *slog.Logger
}

// NewCalculatorService is the constructor for calculatorService.
func NewCalculatorService(params CalculatorServiceParams) usecase.CalculatorUsecase {
	srv := &calculatorService{
		calcRepo:     params.CalcRepo,
		logger:       params.Logger,
		defaultLimit: defaultHistoryLimit,
		maxLimit:     maxHistoryLimit,
	}
	if params.Config != nil && params.Config.Calc != nil {
		if params.Config.Calc.HistoryDefaultLimit > 0 {
			srv.defaultLimit = params.Config.Calc.HistoryDefaultLimit
		}
		if params.Config.Calc.HistoryMaxLimit > 0 {
			srv.maxLimit = params.Config.Calc.HistoryMaxLimit
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *calculatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Calculate performs one arithmetic operation and records it in the history.
func (srv *calculatorService) Calculate(ctx context.Context, input *usecase.CalculateInput) (*usecase.CalculateOutput, error) {
	if !input.Operation.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported operation " + input.Operation.String())
	}

	result, err := compute(input.Operation, input.A, input.B)
	if err != nil {
		return nil, err
	}

	calc := &entity.Calculation{
		UserID:    input.UserID,
		Operation: input.Operation,
		OperandA:  input.A,
		OperandB:  input.B,
		Result:    result,
	}

	// History is auxiliary: a failed insert must not discard a computed result.
	if err := srv.calcRepo.Create(ctx, calc); err != nil {
		srv.log(ctx).Warn("Failed to record calculation", slog.String("operation", input.Operation.String()), slog.Any("error", err))
	}

	return &usecase.CalculateOutput{Calculation: calc}, nil
}

// History retrieves recent calculations, scoped to one user when a user ID is given.
func (srv *calculatorService) History(ctx context.Context, input *usecase.HistoryInput) (*usecase.HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	var calcs []*entity.Calculation
	var err error
	if input.UserID != nil {
		calcs, err = srv.calcRepo.ListRecentByUserID(ctx, *input.UserID, limit)
	} else {
		calcs, err = srv.calcRepo.ListRecent(ctx, limit)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to list calculation history", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list calculation history")
	}

	return &usecase.HistoryOutput{Calculations: calcs}, nil
}

// compute applies the operation. Division by zero is a domain error, not a panic.
func compute(op entity.Operation, a, b float64) (float64, error) {
	switch op {
	case entity.OperationAdd:
		return a + b, nil
	case entity.OperationSubtract:
		return a - b, nil
	case entity.OperationMultiply:
		return a * b, nil
	case entity.OperationDivide:
		if b == 0 {
			return 0, domainerrors.ErrDivisionByZero.WrapMessage("divisor must be non-zero")
		}

		return a / b, nil
	default:
		return 0, domainerrors.ErrValidationFailed.WrapMessage("unsupported operation " + op.String())
	}
}
