// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
)

// CalculateInput defines one requested arithmetic operation.
type CalculateInput struct {
	Operation entity.Operation `json:"-"`
	A         float64          `json:"a"`
	B         float64          `json:"b"`
	UserID    *uuid.UUID       `json:"-"`
}

// CalculateOutput returns the computed calculation, including its recorded
// history entry when persistence succeeded.
type CalculateOutput struct {
	Calculation *entity.Calculation `json:"calculation"`
}

// HistoryInput defines a request for recent calculations.
type HistoryInput struct {
	UserID *uuid.UUID `json:"-" query:"-"`
	Limit  int        `json:"-" query:"limit"`
}

// HistoryOutput returns recent calculations, newest first.
type HistoryOutput struct {
	Calculations []*entity.Calculation `json:"calculations"`
}

// CalculatorUsecase defines the interface for arithmetic operations.
type CalculatorUsecase interface {
	Calculate(ctx context.Context, input *CalculateInput) (*CalculateOutput, error)
	History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error)
}
