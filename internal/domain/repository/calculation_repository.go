// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
)

// CalculationRepository defines the operations for calculation history persistence.
type CalculationRepository interface {
	// Create persists a performed calculation.
	Create(ctx context.Context, calc *entity.Calculation) error

	// ListRecent retrieves the most recent calculations, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Calculation, error)

	// ListRecentByUserID retrieves the most recent calculations for one user, newest first.
	ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Calculation, error)
}
