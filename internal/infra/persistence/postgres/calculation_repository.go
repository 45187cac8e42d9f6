// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/repository"
	"abacus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// calculationRepository implements the repository.CalculationRepository interface using GORM.
type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository is the constructor for calculationRepository.
func NewCalculationRepository(db *gorm.DB) repository.CalculationRepository {
	return &calculationRepository{db: db}
}

// Create persists a performed calculation.
func (repo *calculationRepository) Create(ctx context.Context, calc *entity.Calculation) error {
	calcM := fromCalculationDomain(calc)

	if err := repo.db.WithContext(ctx).Create(calcM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("calculation references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record calculation")
	}

	calc.ID = calcM.ID
	calc.CreatedAt = calcM.CreatedAt

	return nil
}

// ListRecent retrieves the most recent calculations, newest first.
func (repo *calculationRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Calculation, error) {
	var calcModels []*model.CalculationModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&calcModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list calculations")
	}

	return toCalculationDomainSlice(calcModels), nil
}

// ListRecentByUserID retrieves the most recent calculations for one user, newest first.
func (repo *calculationRepository) ListRecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Calculation, error) {
	var calcModels []*model.CalculationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&calcModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list calculations for user")
	}

	return toCalculationDomainSlice(calcModels), nil
}

// --- Mapper Functions ---

func toCalculationDomain(data *model.CalculationModel) *entity.Calculation {
	if data == nil {
		return nil
	}

	return &entity.Calculation{
		ID:        data.ID,
		UserID:    data.UserID,
		Operation: entity.Operation(data.Operation),
		OperandA:  data.OperandA,
		OperandB:  data.OperandB,
		Result:    data.Result,
		CreatedAt: data.CreatedAt,
	}
}

func toCalculationDomainSlice(models []*model.CalculationModel) []*entity.Calculation {
	calcs := make([]*entity.Calculation, 0, len(models))
	for _, m := range models {
		calcs = append(calcs, toCalculationDomain(m))
	}

	return calcs
}

func fromCalculationDomain(data *entity.Calculation) *model.CalculationModel {
	if data == nil {
		return nil
	}

	return &model.CalculationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Operation: data.Operation.String(),
		OperandA:  data.OperandA,
		OperandB:  data.OperandB,
		Result:    data.Result,
	}
}
